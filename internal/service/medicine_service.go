package service

import (
	"context"
	"fmt"

	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
	"rxinsight/internal/repository"
)

const regionalSearchLimit = 50

// RegionalMedicineService exposes the regional medicine catalog search.
type RegionalMedicineService interface {
	Search(ctx context.Context, term string) ([]model.RegionalMedicine, string, error)
}

type regionalMedicineService struct {
	repo repository.RegionalMedicineRepository
}

// NewRegionalMedicineService builds a RegionalMedicineService. A nil
// repository means no relational store is configured.
func NewRegionalMedicineService(repo repository.RegionalMedicineRepository) RegionalMedicineService {
	return &regionalMedicineService{repo: repo}
}

// Search matches the term against medicine name or manufacturer, cheapest
// first. An empty term yields the needs-input message.
func (s *regionalMedicineService) Search(ctx context.Context, term string) ([]model.RegionalMedicine, string, error) {
	if s.repo == nil {
		return nil, "", apperrors.ErrNotConfigured
	}
	if term == "" {
		return []model.RegionalMedicine{}, NeedSearchTermMessage, nil
	}
	medicines, err := s.repo.Search(ctx, term, regionalSearchLimit)
	if err != nil {
		return nil, "", fmt.Errorf("search regional medicines: %w", err)
	}
	return medicines, fmt.Sprintf("Found %d medicines matching %q", len(medicines), term), nil
}
