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
	lowStockDefaultThreshold = 50
	expiringDefaultDays      = 30
	salesSummaryDays         = 30

	salesSummaryCacheKey = "sales_summary"
	salesSummaryCacheTTL = 5 * time.Minute
)

// InventoryService exposes the inventory listings and their derived analytics
// views. Low stock and expiring soon are computed per request, never stored.
type InventoryService interface {
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListSales(ctx context.Context) ([]model.Sale, error)

	LowStock(ctx context.Context, threshold int) ([]model.Medicine, int, error)
	ExpiringSoon(ctx context.Context, days int) ([]model.Medicine, int, error)
	SalesSummary(ctx context.Context) ([]model.SalesSummaryRow, error)
}

type inventoryService struct {
	repo  repository.InventoryRepository
	cache *cache.Client
	now   func() time.Time
}

// NewInventoryService builds an InventoryService with repository and cache.
func NewInventoryService(repo repository.InventoryRepository, cache *cache.Client) InventoryService {
	return &inventoryService{repo: repo, cache: cache, now: time.Now}
}

func (s *inventoryService) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	return s.repo.ListMedicines(ctx)
}

func (s *inventoryService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	return s.repo.ListSuppliers(ctx)
}

func (s *inventoryService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	return s.repo.ListCustomers(ctx)
}

func (s *inventoryService) ListSales(ctx context.Context) ([]model.Sale, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}
	return s.repo.ListSales(ctx)
}

// LowStock returns medicines with stock strictly below the threshold, lowest
// first. The effective threshold is returned for echoing in the response.
func (s *inventoryService) LowStock(ctx context.Context, threshold int) ([]model.Medicine, int, error) {
	if s.repo == nil {
		return nil, 0, apperrors.ErrNotConfigured
	}
	if threshold <= 0 {
		threshold = lowStockDefaultThreshold
	}
	medicines, err := s.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, 0, fmt.Errorf("low stock medicines: %w", err)
	}
	return medicines, threshold, nil
}

// ExpiringSoon returns medicines whose expiry date falls in [today, today+days].
func (s *inventoryService) ExpiringSoon(ctx context.Context, days int) ([]model.Medicine, int, error) {
	if s.repo == nil {
		return nil, 0, apperrors.ErrNotConfigured
	}
	if days <= 0 {
		days = expiringDefaultDays
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	until := today.AddDate(0, 0, days)

	medicines, err := s.repo.ExpiringBetween(ctx, today, until)
	if err != nil {
		return nil, 0, fmt.Errorf("expiring medicines: %w", err)
	}
	return medicines, days, nil
}

// SalesSummary returns the per-day aggregate for the most recent 30 sale
// dates, newest first, served from redis when warm.
func (s *inventoryService) SalesSummary(ctx context.Context) ([]model.SalesSummaryRow, error) {
	if s.repo == nil {
		return nil, apperrors.ErrNotConfigured
	}

	if data, _ := s.cache.Get(ctx, salesSummaryCacheKey); data != nil {
		var cached []model.SalesSummaryRow
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.repo.SalesSummary(ctx, salesSummaryDays)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	if data, err := json.Marshal(rows); err == nil {
		_ = s.cache.Set(ctx, salesSummaryCacheKey, data, salesSummaryCacheTTL)
	}
	return rows, nil
}
