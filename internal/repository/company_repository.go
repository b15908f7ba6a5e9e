package repository

import (
	"context"

	"gorm.io/gorm"

	"rxinsight/internal/model"
)

// CompanyRepository defines read-only queries over the imported
// pharma_companies table.
type CompanyRepository interface {
	List(ctx context.Context) ([]model.PharmaCompany, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository builds a GORM-backed repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) List(ctx context.Context) ([]model.PharmaCompany, error) {
	var companies []model.PharmaCompany
	err := r.db.WithContext(ctx).Order("company_name").Find(&companies).Error
	return companies, err
}
