package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"rxinsight/internal/model"
)

// DrugFilters holds the optional constraints of the advanced search. A nil or
// zero field imposes no constraint.
type DrugFilters struct {
	Name      string   `json:"name,omitempty"`
	Condition string   `json:"condition,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	RxOTC     string   `json:"rx_otc,omitempty"`
}

// DrugRepository defines read-only queries over the imported drugs table.
// Every filter value travels as a bound parameter.
type DrugRepository interface {
	SearchByNameOrCondition(ctx context.Context, term string, limit int) ([]model.Drug, error)
	SearchByCondition(ctx context.Context, condition string, limit int) ([]model.Drug, error)
	AdvancedSearch(ctx context.Context, filters DrugFilters, limit int) ([]model.Drug, error)
	TopRated(ctx context.Context, limit int) ([]model.Drug, error)
	FindByName(ctx context.Context, name string) ([]model.Drug, error)
}

type drugRepository struct {
	db *gorm.DB
}

// NewDrugRepository builds a GORM-backed drug repository.
func NewDrugRepository(db *gorm.DB) DrugRepository {
	return &drugRepository{db: db}
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

func (r *drugRepository) SearchByNameOrCondition(ctx context.Context, term string, limit int) ([]model.Drug, error) {
	var drugs []model.Drug
	pattern := contains(term)
	err := r.db.WithContext(ctx).
		Where("LOWER(drug_name) LIKE ? OR LOWER(medical_condition) LIKE ?", pattern, pattern).
		Order("drug_name").
		Limit(limit).
		Find(&drugs).Error
	return drugs, err
}

func (r *drugRepository) SearchByCondition(ctx context.Context, condition string, limit int) ([]model.Drug, error) {
	var drugs []model.Drug
	err := r.db.WithContext(ctx).
		Where("LOWER(medical_condition) LIKE ?", contains(condition)).
		Order("rating DESC, no_of_reviews DESC").
		Limit(limit).
		Find(&drugs).Error
	return drugs, err
}

// AdvancedSearch chains one Where per present filter so every combination
// stays fully parameterized.
func (r *drugRepository) AdvancedSearch(ctx context.Context, filters DrugFilters, limit int) ([]model.Drug, error) {
	q := r.db.WithContext(ctx).Model(&model.Drug{})
	if filters.Name != "" {
		q = q.Where("LOWER(drug_name) LIKE ?", contains(filters.Name))
	}
	if filters.Condition != "" {
		q = q.Where("LOWER(medical_condition) LIKE ?", contains(filters.Condition))
	}
	if filters.MinRating != nil {
		q = q.Where("rating >= ?", *filters.MinRating)
	}
	if filters.RxOTC != "" {
		q = q.Where("rx_otc = ?", filters.RxOTC)
	}

	var drugs []model.Drug
	err := q.Order("rating DESC").Limit(limit).Find(&drugs).Error
	return drugs, err
}

func (r *drugRepository) TopRated(ctx context.Context, limit int) ([]model.Drug, error) {
	var drugs []model.Drug
	err := r.db.WithContext(ctx).
		Where("rating IS NOT NULL AND rating > 0").
		Order("rating DESC, no_of_reviews DESC").
		Limit(limit).
		Find(&drugs).Error
	return drugs, err
}

func (r *drugRepository) FindByName(ctx context.Context, name string) ([]model.Drug, error) {
	var drugs []model.Drug
	err := r.db.WithContext(ctx).
		Where("LOWER(drug_name) = ?", strings.ToLower(name)).
		Order("rating DESC").
		Find(&drugs).Error
	return drugs, err
}
