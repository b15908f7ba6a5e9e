package model

import "time"

// PharmaCompany represents one imported row of the company / IPC subclass
// matrix. The importer records one filing per row, so PatentsCount starts at 1
// and is never aggregated.
type PharmaCompany struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyName  string    `json:"company_name" gorm:"size:255;not null;index"`
	IPCSubclass  string    `json:"ipc_subclass" gorm:"column:ipc_subclass;size:50"`
	PatentsCount int       `json:"patents_count" gorm:"default:1"`
	CreatedAt    time.Time `json:"created_at"`
}
