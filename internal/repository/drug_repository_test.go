package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rxinsight/internal/model"
)

func TestDrugRepository_TopRated(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewDrugRepository(gormDB)

	seed := []model.Drug{
		{DrugName: "Alpha", MedicalCondition: "Acne", Rating: ratingOf(9.1), NoOfReviews: 200},
		{DrugName: "Bravo", MedicalCondition: "Acne", Rating: ratingOf(8.7), NoOfReviews: 150},
		{DrugName: "Charlie", MedicalCondition: "Flu", Rating: ratingOf(9.1), NoOfReviews: 50},
		{DrugName: "Delta", MedicalCondition: "Flu", Rating: ratingOf(0), NoOfReviews: 10},
		{DrugName: "Echo", MedicalCondition: "Flu", Rating: nil, NoOfReviews: 5},
	}
	require.NoError(t, gormDB.Create(&seed).Error)

	drugs, err := repo.TopRated(context.Background(), 3)
	require.NoError(t, err)

	// Zero and null ratings are excluded; ties break on review count.
	require.Len(t, drugs, 3)
	assert.Equal(t, "Alpha", drugs[0].DrugName)
	assert.Equal(t, "Charlie", drugs[1].DrugName)
	assert.Equal(t, "Bravo", drugs[2].DrugName)

	limited, err := repo.TopRated(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDrugRepository_SearchByNameOrCondition(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewDrugRepository(gormDB)

	seed := []model.Drug{
		{DrugName: "Doxycycline", MedicalCondition: "Acne"},
		{DrugName: "Amoxicillin", MedicalCondition: "Pneumonia"},
		{DrugName: "Ibuprofen", MedicalCondition: "Pain"},
	}
	require.NoError(t, gormDB.Create(&seed).Error)

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"matches name case-insensitively", "DOXY", []string{"Doxycycline"}},
		{"matches condition", "pneumonia", []string{"Amoxicillin"}},
		{"substring match", "cillin", []string{"Amoxicillin"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drugs, err := repo.SearchByNameOrCondition(context.Background(), tt.term, 50)
			require.NoError(t, err)

			var names []string
			for _, d := range drugs {
				names = append(names, d.DrugName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestDrugRepository_SearchByCondition_Ordering(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewDrugRepository(gormDB)

	seed := []model.Drug{
		{DrugName: "Low", MedicalCondition: "Acne", Rating: ratingOf(5.0), NoOfReviews: 10},
		{DrugName: "HighFewReviews", MedicalCondition: "Acne", Rating: ratingOf(9.0), NoOfReviews: 10},
		{DrugName: "HighManyReviews", MedicalCondition: "Acne", Rating: ratingOf(9.0), NoOfReviews: 100},
	}
	require.NoError(t, gormDB.Create(&seed).Error)

	drugs, err := repo.SearchByCondition(context.Background(), "acne", 100)
	require.NoError(t, err)

	require.Len(t, drugs, 3)
	assert.Equal(t, "HighManyReviews", drugs[0].DrugName)
	assert.Equal(t, "HighFewReviews", drugs[1].DrugName)
	assert.Equal(t, "Low", drugs[2].DrugName)
}

func TestDrugRepository_AdvancedSearch(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewDrugRepository(gormDB)

	seed := []model.Drug{
		{DrugName: "Doxycycline", MedicalCondition: "Acne", Rating: ratingOf(9.0), RxOTC: "Rx"},
		{DrugName: "Benzoyl peroxide", MedicalCondition: "Acne", Rating: ratingOf(7.5), RxOTC: "OTC"},
		{DrugName: "Amoxicillin", MedicalCondition: "Pneumonia", Rating: ratingOf(8.0), RxOTC: "Rx"},
	}
	require.NoError(t, gormDB.Create(&seed).Error)

	tests := []struct {
		name     string
		filters  DrugFilters
		expected []string
	}{
		{
			"no filters returns everything rating-first",
			DrugFilters{},
			[]string{"Doxycycline", "Amoxicillin", "Benzoyl peroxide"},
		},
		{
			"condition and min rating combine",
			DrugFilters{Condition: "acne", MinRating: ratingOf(8.0)},
			[]string{"Doxycycline"},
		},
		{
			"rx/otc flag is exact",
			DrugFilters{RxOTC: "OTC"},
			[]string{"Benzoyl peroxide"},
		},
		{
			"name fragment",
			DrugFilters{Name: "oxy"},
			[]string{"Doxycycline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drugs, err := repo.AdvancedSearch(context.Background(), tt.filters, 100)
			require.NoError(t, err)

			var names []string
			for _, d := range drugs {
				names = append(names, d.DrugName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestDrugRepository_FindByName(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewDrugRepository(gormDB)

	seed := []model.Drug{
		{DrugName: "Doxycycline", MedicalCondition: "Acne", Rating: ratingOf(7.0)},
		{DrugName: "Doxycycline", MedicalCondition: "Pneumonia", Rating: ratingOf(9.0)},
		{DrugName: "Ibuprofen", MedicalCondition: "Pain"},
	}
	require.NoError(t, gormDB.Create(&seed).Error)

	drugs, err := repo.FindByName(context.Background(), "doxycycline")
	require.NoError(t, err)

	require.Len(t, drugs, 2)
	assert.Equal(t, "Pneumonia", drugs[0].MedicalCondition)

	none, err := repo.FindByName(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, none)
}
