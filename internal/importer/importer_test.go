package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rxinsight/internal/db"
	"rxinsight/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Drug{},
		&model.RegionalMedicine{},
		&model.PharmaCompany{},
		&model.Supplier{},
		&model.Customer{},
		&model.Medicine{},
		&model.Sale{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gormDB
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDrugs(t *testing.T) {
	gormDB := newTestDB(t)
	path := writeCSV(t, "drugs.csv",
		"drug_name,medical_condition,rx_otc,rating,no_of_reviews\n"+
			"Doxycycline,Acne,Rx,9.1,120\n"+
			"Ibuprofen,Pain,OTC,,0\n")

	res, err := LoadDrugs(context.Background(), gormDB, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 0, res.Failed)

	var drugs []model.Drug
	require.NoError(t, gormDB.Order("drug_name").Find(&drugs).Error)
	require.Len(t, drugs, 2)
	require.NotNil(t, drugs[0].Rating)
	assert.InDelta(t, 9.1, *drugs[0].Rating, 0.001)
	// Blank ratings stay null instead of becoming zero.
	assert.Nil(t, drugs[1].Rating)
}

func TestLoadMedicines_DuplicateIDCountedAsFailed(t *testing.T) {
	gormDB := newTestDB(t)
	path := writeCSV(t, "medicines.csv",
		"medicine_id,name,category,price,stock,expiry_date,supplier\n"+
			"M001,Paracetamol,Analgesic,12.50,100,2027-01-31,Acme\n"+
			"M001,Paracetamol,Analgesic,12.50,100,2027-01-31,Acme\n"+
			"M002,Cetirizine,Antihistamine,8.00,40,not-a-date,Acme\n")

	res, err := LoadMedicines(context.Background(), gormDB, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)

	var medicines []model.Medicine
	require.NoError(t, gormDB.Order("medicine_id").Find(&medicines).Error)
	require.Len(t, medicines, 2)
	require.NotNil(t, medicines[0].ExpiryDate)
	assert.Equal(t, "2027-01-31", medicines[0].ExpiryDate.Format("2006-01-02"))
	// An unparseable expiry date is tolerated: the row imports without one.
	assert.Nil(t, medicines[1].ExpiryDate)
}

func TestLoadRegionalMedicines_JoinsComposition(t *testing.T) {
	gormDB := newTestDB(t)
	path := writeCSV(t, "medicines_india.csv",
		"name,price(₹),Is_discontinued,manufacturer_name,type,pack_size_label,short_composition1,short_composition2\n"+
			"Azithral 500mg,132.36,Yes,Alembic,allopathy,strip of 5 tablets,Azithromycin (500mg),\n"+
			"Augmentin 625,223.42,no,GSK,allopathy,strip of 10 tablets,Amoxycillin (500mg),Clavulanic Acid (125mg)\n"+
			"Becosules,38.91,no,Pfizer,allopathy,strip of 20 capsules,,Vitamin B Complex\n")

	res, err := LoadRegionalMedicines(context.Background(), gormDB, path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)

	var medicines []model.RegionalMedicine
	require.NoError(t, gormDB.Order("name").Find(&medicines).Error)
	require.Len(t, medicines, 3)
	assert.Equal(t, "Amoxycillin (500mg) Clavulanic Acid (125mg)", medicines[0].Composition)
	assert.False(t, medicines[0].IsDiscontinued)
	assert.True(t, medicines[1].IsDiscontinued)
	// A lone second composition column never leaves a leading space.
	assert.Equal(t, "Vitamin B Complex", medicines[2].Composition)
}

func TestLoadSales_BadDateCountedAsFailed(t *testing.T) {
	gormDB := newTestDB(t)
	path := writeCSV(t, "sales.csv",
		"sale_id,date,customer_id,medicine_id,quantity,unit_price,total_amount,payment_mode\n"+
			"S001,2026-03-14,C001,M001,2,12.50,25.00,Cash\n"+
			"S002,14/03/2026,C001,M001,1,12.50,12.50,Card\n")

	res, err := LoadSales(context.Background(), gormDB, path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Failed)
}

func TestLoadPharmaCompanies_SkipsEmptyNames(t *testing.T) {
	gormDB := newTestDB(t)
	path := writeCSV(t, "companies.csv",
		"company,subclass\n"+
			"Pfizer,A61K\n"+
			",A61K\n"+
			"Novartis,C07D\n")

	res, err := LoadPharmaCompanies(context.Background(), gormDB, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)
}

func TestForEachRow_MissingFile(t *testing.T) {
	_, err := LoadDrugs(context.Background(), newTestDB(t), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestForEachRow_RaggedRows(t *testing.T) {
	gormDB := newTestDB(t)
	path := writeCSV(t, "suppliers.csv",
		"supplier_id,supplier_name,contact,city\n"+
			"SUP01,Acme Pharma,9876500001,Mumbai\n"+
			"SUP02,Short Row\n")

	res, err := LoadSuppliers(context.Background(), gormDB, path)
	require.NoError(t, err)
	// A short record still imports; absent columns read as empty strings.
	assert.Equal(t, 2, res.Imported)

	var suppliers []model.Supplier
	require.NoError(t, gormDB.Order("supplier_id").Find(&suppliers).Error)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "", suppliers[1].City)
}
