package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rxinsight/internal/model"
)

// InventoryRepository defines read-only queries over the inventory dataset
// (medicines, suppliers, customers, sales) and its derived analytics views.
type InventoryRepository interface {
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListSales(ctx context.Context) ([]model.Sale, error)

	LowStock(ctx context.Context, threshold int) ([]model.Medicine, error)
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Medicine, error)
	SalesSummary(ctx context.Context, days int) ([]model.SalesSummaryRow, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository builds a GORM-backed inventory repository.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).Order("medicine_id").Find(&medicines).Error
	return medicines, err
}

func (r *inventoryRepository) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("supplier_id").Find(&suppliers).Error
	return suppliers, err
}

func (r *inventoryRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("customer_id").Find(&customers).Error
	return customers, err
}

func (r *inventoryRepository) ListSales(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("sale_id").Find(&sales).Error
	return sales, err
}

func (r *inventoryRepository) LowStock(ctx context.Context, threshold int) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock ASC").
		Find(&medicines).Error
	return medicines, err
}

func (r *inventoryRepository) ExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date >= ? AND expiry_date <= ?", from, to).
		Order("expiry_date ASC").
		Find(&medicines).Error
	return medicines, err
}

// salesSummaryScan matches the aggregate select below; the wire shape with a
// formatted date string is produced afterwards.
type salesSummaryScan struct {
	Date           time.Time
	TotalSales     int
	TotalRevenue   decimal.Decimal
	TotalItemsSold int
}

func (r *inventoryRepository) SalesSummary(ctx context.Context, days int) ([]model.SalesSummaryRow, error) {
	var scanned []salesSummaryScan
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("date, COUNT(*) AS total_sales, SUM(total_amount) AS total_revenue, SUM(quantity) AS total_items_sold").
		Group("date").
		Order("date DESC").
		Limit(days).
		Scan(&scanned).Error
	if err != nil {
		return nil, err
	}

	rows := make([]model.SalesSummaryRow, 0, len(scanned))
	for _, s := range scanned {
		rows = append(rows, model.SalesSummaryRow{
			Date:           s.Date.Format("2006-01-02"),
			TotalSales:     s.TotalSales,
			TotalRevenue:   s.TotalRevenue,
			TotalItemsSold: s.TotalItemsSold,
		})
	}
	return rows, nil
}
