// Package importer loads the offline CSV datasets into the relational store.
// It runs before the API serves and is the only writer of the reference
// tables. Rows that fail to insert are counted and logged rather than
// silently dropped; a file that cannot be opened or parsed fails the run.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errEmptyRow = fmt.Errorf("empty row")

// Result reports the outcome of one file load. Failed counts rows that parsed
// but could not be inserted (duplicates, constraint violations).
type Result struct {
	File     string
	Imported int
	Failed   int
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d imported, %d failed", r.File, r.Imported, r.Failed)
}

// row is one CSV record with access by header name.
type row struct {
	index  map[string]int
	fields []string
}

func (r row) get(key string) string {
	i, ok := r.index[key]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r row) column(i int) string {
	if i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// forEachRow streams records of the CSV at path through fn. Malformed records
// are skipped and counted as failures.
func forEachRow(path string, fn func(r row) error) (Result, error) {
	res := Result{File: path}

	file, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return res, fmt.Errorf("read header of %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Failed++
			continue
		}
		if err := fn(row{index: index, fields: fields}); err != nil {
			res.Failed++
			continue
		}
		res.Imported++
	}
	return res, nil
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// insert writes one model row, logging failures so import problems stay
// visible in the run output.
func insert(ctx context.Context, db *gorm.DB, label string, value interface{}) error {
	if err := db.WithContext(ctx).Create(value).Error; err != nil {
		log.Printf("import %s: skipping row: %v", label, err)
		return err
	}
	return nil
}
