package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegionalMedicine represents one imported row of the A-Z medicines dataset of
// India. Composition is pre-joined by the importer from the two source
// composition columns.
type RegionalMedicine struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Name             string          `json:"name" gorm:"size:255;not null;index"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	IsDiscontinued   bool            `json:"is_discontinued" gorm:"default:false"`
	ManufacturerName string          `json:"manufacturer_name" gorm:"size:255;index"`
	MedicineType     string          `json:"medicine_type" gorm:"size:100"`
	PackSizeLabel    string          `json:"pack_size_label" gorm:"size:100"`
	Composition      string          `json:"composition" gorm:"size:500"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TableName keeps the table the import tooling provisioned.
func (RegionalMedicine) TableName() string {
	return "medicines_india"
}
