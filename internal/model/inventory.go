package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier represents a medicine supplier in the inventory dataset.
type Supplier struct {
	SupplierID   string    `json:"supplier_id" gorm:"primaryKey;size:20"`
	SupplierName string    `json:"supplier_name" gorm:"size:255;not null;index"`
	Contact      string    `json:"contact" gorm:"size:20"`
	City         string    `json:"city" gorm:"size:100;index"`
	CreatedAt    time.Time `json:"created_at"`
}

// Customer represents a pharmacy customer in the inventory dataset.
type Customer struct {
	CustomerID string    `json:"customer_id" gorm:"primaryKey;size:20"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender" gorm:"size:20"`
	Phone      string    `json:"phone" gorm:"size:20;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Medicine represents a stocked inventory item. Supplier is the free-text
// supplier name as shipped in the source CSV, not a foreign key.
type Medicine struct {
	MedicineID string          `json:"medicine_id" gorm:"primaryKey;size:20"`
	Name       string          `json:"name" gorm:"size:255;not null;index"`
	Category   string          `json:"category" gorm:"size:100;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock      int             `json:"stock" gorm:"not null;default:0;index"`
	ExpiryDate *time.Time      `json:"expiry_date" gorm:"type:date;index"`
	Supplier   string          `json:"supplier" gorm:"size:100;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Sale represents a single point-of-sale transaction. CustomerID and
// MedicineID are expected to resolve to imported rows; the store's referential
// constraints are the only enforcement.
type Sale struct {
	SaleID      string          `json:"sale_id" gorm:"primaryKey;size:20"`
	Date        time.Time       `json:"date" gorm:"type:date;not null;index"`
	CustomerID  string          `json:"customer_id" gorm:"size:20;index"`
	MedicineID  string          `json:"medicine_id" gorm:"size:20;index"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentMode string          `json:"payment_mode" gorm:"size:50;index"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SalesSummaryRow is one calendar day of the aggregated sales view.
type SalesSummaryRow struct {
	Date           string          `json:"date"`
	TotalSales     int             `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalItemsSold int             `json:"total_items_sold"`
}
