package model

import "time"

// Drug represents one imported row of the drugs-for-common-treatments dataset.
// A drug name may appear under several medical conditions, so the name is
// indexed but deliberately not unique.
type Drug struct {
	ID                          uint      `json:"id" gorm:"primaryKey"`
	DrugName                    string    `json:"drug_name" gorm:"size:255;not null;index"`
	MedicalCondition            string    `json:"medical_condition" gorm:"size:255;index"`
	MedicalConditionDescription string    `json:"medical_condition_description" gorm:"type:text"`
	Activity                    string    `json:"activity" gorm:"size:100"`
	RxOTC                       string    `json:"rx_otc" gorm:"column:rx_otc;size:50"`
	PregnancyCategory           string    `json:"pregnancy_category" gorm:"size:50"`
	Rating                      *float64  `json:"rating" gorm:"type:decimal(3,1)"`
	NoOfReviews                 int       `json:"no_of_reviews" gorm:"default:0"`
	MedicalConditionURL         string    `json:"medical_condition_url" gorm:"size:500"`
	DrugLink                    string    `json:"drug_link" gorm:"size:500"`
	CreatedAt                   time.Time `json:"created_at"`
}

// DrugReview is the per-condition view returned by the drug detail endpoint.
type DrugReview struct {
	MedicalCondition string   `json:"medical_condition"`
	Rating           *float64 `json:"rating"`
	NoOfReviews      int      `json:"no_of_reviews"`
}
