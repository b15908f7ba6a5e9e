package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"rxinsight/internal/config"
	"rxinsight/internal/db"
	"rxinsight/internal/importer"
	"rxinsight/internal/model"
)

// loader binds a dataset file name to its import function.
type loader struct {
	file string
	fn   func(ctx context.Context, db *gorm.DB, path string) (importer.Result, error)
}

var loaders = []loader{
	{"drugs_for_common_treatments.csv", importer.LoadDrugs},
	{"A_Z_medicines_dataset_of_India.csv", importer.LoadRegionalMedicines},
	{"pharma_company_ipc_subclass_matrix.csv", importer.LoadPharmaCompanies},
	{"suppliers.csv", importer.LoadSuppliers},
	{"medicines.csv", importer.LoadMedicines},
	{"customers.csv", importer.LoadCustomers},
	{"sales.csv", importer.LoadSales},
}

func main() {
	dir := flag.String("dir", "database", "directory containing the CSV datasets")
	flag.Parse()

	log.Println("Starting data import...")

	cfg := config.Load()

	// The importer writes the reference tables, so a relational store is
	// mandatory; there is no JSON fallback here.
	var gormDB *gorm.DB
	var err error
	switch {
	case cfg.HasMySQL():
		gormDB, err = db.NewMySQL(cfg.MySQLDSN())
	case cfg.HasSQLite():
		gormDB, err = db.NewSQLite(cfg.SQLitePath)
	default:
		log.Fatal("no relational store configured: set MYSQL_HOST, MYSQL_USER, MYSQL_DATABASE or SQLITE_PATH")
	}
	if err != nil {
		log.Fatalf("database init: %v", err)
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
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	var imported, failed, missing int
	for _, l := range loaders {
		path := filepath.Join(*dir, l.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("%s not found, skipping", path)
			missing++
			continue
		}

		res, err := l.fn(ctx, gormDB, path)
		if err != nil {
			log.Fatalf("import %s: %v", path, err)
		}
		log.Println(res.String())
		imported += res.Imported
		failed += res.Failed
	}

	log.Printf("Import completed: %d rows imported, %d rows failed, %d files missing", imported, failed, missing)
	if imported == 0 {
		log.Fatal("no rows imported")
	}
}
