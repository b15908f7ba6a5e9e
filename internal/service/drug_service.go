package service

import (
	"context"
	"fmt"

	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
	"rxinsight/internal/repository"
)

const (
	drugSearchLimit     = 50
	conditionLimit      = 100
	advancedSearchLimit = 100
	topRatedDefault     = 10
	topRatedMax         = 100
)

// NeedSearchTermMessage is returned instead of the full table when the search
// term is empty.
const NeedSearchTermMessage = "Please enter a search term"

// DrugDetail is the aggregate view for a single drug name across all of its
// condition rows.
type DrugDetail struct {
	Drug      model.Drug         `json:"drug"`
	Reviews   []model.DrugReview `json:"reviews"`
	AvgRating float64            `json:"avgRating"`
}

// DrugService exposes the read-only drug query operations.
type DrugService interface {
	SearchByName(ctx context.Context, term string) ([]model.Drug, string, error)
	SearchByCondition(ctx context.Context, condition string) ([]model.Drug, error)
	AdvancedSearch(ctx context.Context, filters repository.DrugFilters) ([]model.Drug, error)
	TopRated(ctx context.Context, limit int) ([]model.Drug, error)
	GetDrugDetail(ctx context.Context, name string) (*DrugDetail, error)
}

type drugService struct {
	repo repository.DrugRepository
}

// NewDrugService builds a DrugService. A nil repository means no relational
// store is configured; every operation then fails with ErrNotConfigured.
func NewDrugService(repo repository.DrugRepository) DrugService {
	return &drugService{repo: repo}
}

// SearchByName matches the term against drug name or condition. An empty term
// yields an explicit needs-input message rather than the full table.
func (s *drugService) SearchByName(ctx context.Context, term string) ([]model.Drug, string, error) {
	if s.repo == nil {
		return nil, "", apperrors.ErrNotConfigured
	}
	if term == "" {
		return []model.Drug{}, NeedSearchTermMessage, nil
	}
	drugs, err := s.repo.SearchByNameOrCondition(ctx, term, drugSearchLimit)
	if err != nil {
		return nil, "", fmt.Errorf("search drugs: %w", err)
	}
	return drugs, fmt.Sprintf("Found %d drugs matching %q", len(drugs), term), nil
}

func (s *drugService) SearchByCondition(ctx context.Context, condition string) ([]model.Drug, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	drugs, err := s.repo.SearchByCondition(ctx, condition, conditionLimit)
	if err != nil {
		return nil, fmt.Errorf("search drugs by condition: %w", err)
	}
	return drugs, nil
}

func (s *drugService) AdvancedSearch(ctx context.Context, filters repository.DrugFilters) ([]model.Drug, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	drugs, err := s.repo.AdvancedSearch(ctx, filters, advancedSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("advanced drug search: %w", err)
	}
	return drugs, nil
}

// TopRated returns up to limit drugs with a rating above zero, best first.
func (s *drugService) TopRated(ctx context.Context, limit int) ([]model.Drug, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	if limit <= 0 {
		limit = topRatedDefault
	}
	if limit > topRatedMax {
		limit = topRatedMax
	}
	drugs, err := s.repo.TopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top rated drugs: %w", err)
	}
	return drugs, nil
}

// GetDrugDetail aggregates every condition row sharing the drug name. The
// representative row is the highest rated one.
func (s *drugService) GetDrugDetail(ctx context.Context, name string) (*DrugDetail, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	rows, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find drug: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}

	reviews := make([]model.DrugReview, 0, len(rows))
	var sum float64
	var rated int
	for _, row := range rows {
		reviews = append(reviews, model.DrugReview{
			MedicalCondition: row.MedicalCondition,
			Rating:           row.Rating,
			NoOfReviews:      row.NoOfReviews,
		})
		if row.Rating != nil {
			sum += *row.Rating
			rated++
		}
	}

	detail := &DrugDetail{
		Drug:    rows[0],
		Reviews: reviews,
	}
	if rated > 0 {
		detail.AvgRating = sum / float64(rated)
	}
	return detail, nil
}
