package repository

import (
	"context"

	"gorm.io/gorm"

	"rxinsight/internal/model"
)

// RegionalMedicineRepository defines read-only queries over the imported
// medicines_india table.
type RegionalMedicineRepository interface {
	Search(ctx context.Context, term string, limit int) ([]model.RegionalMedicine, error)
}

type regionalMedicineRepository struct {
	db *gorm.DB
}

// NewRegionalMedicineRepository builds a GORM-backed repository.
func NewRegionalMedicineRepository(db *gorm.DB) RegionalMedicineRepository {
	return &regionalMedicineRepository{db: db}
}

func (r *regionalMedicineRepository) Search(ctx context.Context, term string, limit int) ([]model.RegionalMedicine, error) {
	var medicines []model.RegionalMedicine
	pattern := contains(term)
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(manufacturer_name) LIKE ?", pattern, pattern).
		Order("price ASC").
		Limit(limit).
		Find(&medicines).Error
	return medicines, err
}
