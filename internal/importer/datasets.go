package importer

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"rxinsight/internal/model"
)

// LoadDrugs ingests the drugs-for-common-treatments dataset.
func LoadDrugs(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		drug := model.Drug{
			DrugName:                    r.get("drug_name"),
			MedicalCondition:            r.get("medical_condition"),
			MedicalConditionDescription: truncate(r.get("medical_condition_description"), 1000),
			Activity:                    r.get("activity"),
			RxOTC:                       r.get("rx_otc"),
			PregnancyCategory:           r.get("pregnancy_category"),
			Rating:                      parseFloat(r.get("rating")),
			NoOfReviews:                 parseInt(r.get("no_of_reviews")),
			MedicalConditionURL:         r.get("medical_condition_url"),
			DrugLink:                    r.get("drug_link"),
		}
		return insert(ctx, db, "drugs", &drug)
	})
}

// LoadRegionalMedicines ingests the A-Z medicines dataset of India. The two
// source composition columns are joined into one field.
func LoadRegionalMedicines(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		discontinued := r.get("Is_discontinued")
		composition := strings.TrimSpace(r.get("short_composition1") + " " + r.get("short_composition2"))
		medicine := model.RegionalMedicine{
			Name:             r.get("name"),
			Price:            parseDecimal(r.get("price(₹)")),
			IsDiscontinued:   discontinued == "yes" || discontinued == "Yes",
			ManufacturerName: r.get("manufacturer_name"),
			MedicineType:     r.get("type"),
			PackSizeLabel:    r.get("pack_size_label"),
			Composition:      truncate(composition, 500),
		}
		return insert(ctx, db, "medicines_india", &medicine)
	})
}

// LoadPharmaCompanies ingests the company / IPC subclass matrix. The source
// file has positional columns, one filing per row.
func LoadPharmaCompanies(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		name := r.column(0)
		if name == "" {
			return errEmptyRow
		}
		company := model.PharmaCompany{
			CompanyName:  name,
			IPCSubclass:  r.column(1),
			PatentsCount: 1,
		}
		return insert(ctx, db, "pharma_companies", &company)
	})
}

// LoadSuppliers ingests the inventory suppliers dataset.
func LoadSuppliers(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		supplier := model.Supplier{
			SupplierID:   r.get("supplier_id"),
			SupplierName: r.get("supplier_name"),
			Contact:      r.get("contact"),
			City:         r.get("city"),
		}
		return insert(ctx, db, "suppliers", &supplier)
	})
}

// LoadMedicines ingests the inventory medicines dataset.
func LoadMedicines(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		medicine := model.Medicine{
			MedicineID: r.get("medicine_id"),
			Name:       r.get("name"),
			Category:   r.get("category"),
			Price:      parseDecimal(r.get("price")),
			Stock:      parseInt(r.get("stock")),
			Supplier:   r.get("supplier"),
		}
		if expiry, err := parseDate(r.get("expiry_date")); err == nil {
			medicine.ExpiryDate = &expiry
		}
		return insert(ctx, db, "medicines", &medicine)
	})
}

// LoadCustomers ingests the inventory customers dataset.
func LoadCustomers(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		customer := model.Customer{
			CustomerID: r.get("customer_id"),
			Name:       r.get("name"),
			Age:        parseInt(r.get("age")),
			Gender:     r.get("gender"),
			Phone:      r.get("phone"),
		}
		return insert(ctx, db, "customers", &customer)
	})
}

// LoadSales ingests the sales dataset. Rows with an unparseable date are
// counted as failures; the store's referential constraints decide whether the
// customer and medicine references hold.
func LoadSales(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	return forEachRow(path, func(r row) error {
		date, err := parseDate(r.get("date"))
		if err != nil {
			return err
		}
		sale := model.Sale{
			SaleID:      r.get("sale_id"),
			Date:        date,
			CustomerID:  r.get("customer_id"),
			MedicineID:  r.get("medicine_id"),
			Quantity:    parseInt(r.get("quantity")),
			UnitPrice:   parseDecimal(r.get("unit_price")),
			TotalAmount: parseDecimal(r.get("total_amount")),
			PaymentMode: r.get("payment_mode"),
		}
		return insert(ctx, db, "sales", &sale)
	})
}
