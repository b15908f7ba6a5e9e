package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rxinsight/internal/cache"
	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
	"rxinsight/internal/repository"
)

const (
	companiesCacheKey = "pharma_companies"
	companiesCacheTTL = 5 * time.Minute
)

// CompanyService exposes the pharma company listing.
type CompanyService interface {
	List(ctx context.Context) ([]model.PharmaCompany, error)
}

type companyService struct {
	repo  repository.CompanyRepository
	cache *cache.Client
}

// NewCompanyService builds a CompanyService with repository and cache.
func NewCompanyService(repo repository.CompanyRepository, cache *cache.Client) CompanyService {
	return &companyService{repo: repo, cache: cache}
}

// List returns the full company table, served from redis when warm.
func (s *companyService) List(ctx context.Context) ([]model.PharmaCompany, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}

	if data, _ := s.cache.Get(ctx, companiesCacheKey); data != nil {
		var cached []model.PharmaCompany
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pharma companies: %w", err)
	}

	if data, err := json.Marshal(companies); err == nil {
		_ = s.cache.Set(ctx, companiesCacheKey, data, companiesCacheTTL)
	}
	return companies, nil
}
