// Package countyimport loads county assessor flat-file exports into the
// compliance schema. One driver per target table shares the encoding
// fallback, field cleaning, and batch load machinery.
package countyimport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/logger"
)

// Batch sizes: detail tables load in large batches, the small lookup-code
// tables in batches of 100.
const (
	DefaultBatchSize = 1000
	lookupBatchSize  = 100
)

// Importer runs per-table import drivers against the storage pool.
type Importer struct {
	db        database.Pool
	log       *logger.Logger
	dataDir   string
	batchSize int
	dryRun    bool
}

// Options configures an Importer.
type Options struct {
	// DataDir is the directory holding the county export files.
	DataDir string
	// BatchSize overrides the detail-table batch size when positive.
	BatchSize int
	// DryRun parses and validates files without touching storage.
	DryRun bool
}

// New creates an Importer.
func New(db database.Pool, log *logger.Logger, opts Options) *Importer {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Importer{
		db:        db,
		log:       log,
		dataDir:   opts.DataDir,
		batchSize: batchSize,
		dryRun:    opts.DryRun,
	}
}

// TableResult reports one source file's import outcome. Dropped counts
// rows excluded for a missing parcel id (or lookup code); Errors collects
// per-batch failures without aborting the run.
type TableResult struct {
	Table    string   `json:"table"`
	File     string   `json:"file"`
	Encoding string   `json:"encoding,omitempty"`
	Read     int      `json:"read"`
	Dropped  int      `json:"dropped"`
	Inserted int64    `json:"inserted"`
	Errors   []string `json:"errors,omitempty"`
	Skipped  bool     `json:"skipped"`
}

// Summary aggregates the results of an import run.
type Summary struct {
	Results []TableResult `json:"results"`
}

// TotalInserted sums inserted rows across all tables.
func (s *Summary) TotalInserted() int64 {
	var n int64
	for _, r := range s.Results {
		n += r.Inserted
	}
	return n
}

// HasErrors reports whether any table collected batch or decode errors.
func (s *Summary) HasErrors() bool {
	for _, r := range s.Results {
		if len(r.Errors) > 0 {
			return true
		}
	}
	return false
}

// tableDriver binds a source file to its target table: the column list,
// batch size, and the row-mapping function producing insert values.
type tableDriver struct {
	table     string
	file      string
	columns   []string
	batchSize int
	mapRow    func(f *sourceFile, row []string) ([]any, bool)
}

func adapt[T interface{ values() []any }](fn func(*sourceFile, []string) (T, bool)) func(*sourceFile, []string) ([]any, bool) {
	return func(f *sourceFile, row []string) ([]any, bool) {
		rec, ok := fn(f, row)
		if !ok {
			return nil, false
		}
		return rec.values(), true
	}
}

func lookupDriver(table, file string) tableDriver {
	return tableDriver{
		table:     table,
		file:      file,
		columns:   lookupColumns,
		batchSize: lookupBatchSize,
		mapRow:    adapt(newLookupRecord),
	}
}

// drivers maps a CLI table name to its drivers. "lookups" covers the four
// lookup-code files.
func (imp *Importer) drivers(name string) ([]tableDriver, bool) {
	switch name {
	case "lookups":
		return []tableDriver{
			lookupDriver("lookup_land_use_codes", "LookupLandUseCodes.txt"),
			lookupDriver("lookup_deed_types", "LookupDeedType.txt"),
			lookupDriver("lookup_neighborhood_codes", "LookupNeighborhoodCode.txt"),
			lookupDriver("lookup_exemption_codes", "LookupExemptionCode.txt"),
		}, true
	case "properties":
		return []tableDriver{{
			table:     "properties",
			file:      "PropertyOwnerLegal.txt",
			columns:   propertyColumns,
			batchSize: imp.batchSize,
			mapRow:    adapt(newPropertyRecord),
		}}, true
	case "sales":
		return []tableDriver{{
			table:     "sales",
			file:      "Sales.txt",
			columns:   saleColumns,
			batchSize: imp.batchSize,
			mapRow:    adapt(newSaleRecord),
		}}, true
	case "buildings":
		return []tableDriver{{
			table:     "buildings",
			file:      "Building.txt",
			columns:   buildingColumns,
			batchSize: imp.batchSize,
			mapRow:    adapt(newBuildingRecord),
		}}, true
	case "land":
		return []tableDriver{{
			table:     "land",
			file:      "Land.txt",
			columns:   landColumns,
			batchSize: imp.batchSize,
			mapRow:    adapt(newLandRecord),
		}}, true
	case "values":
		return []tableDriver{{
			table:     "property_values",
			file:      "Values.txt",
			columns:   valueColumns,
			batchSize: imp.batchSize,
			mapRow:    adapt(newValueRecord),
		}}, true
	case "exemptions":
		return []tableDriver{{
			table:     "exemptions",
			file:      "Exemptions.txt",
			columns:   exemptionColumns,
			batchSize: imp.batchSize,
			mapRow:    adapt(newExemptionRecord),
		}}, true
	}
	return nil, false
}

// TableNames returns the importable table names in load order: lookup
// codes first so downstream references resolve, then properties, then
// the detail tables.
func TableNames() []string {
	return []string{"lookups", "properties", "sales", "buildings", "land", "values", "exemptions"}
}

// Run imports the named tables in the given order.
// Returns an error only for unknown table names; per-table failures are
// collected in the summary.
func (imp *Importer) Run(ctx context.Context, tables []string) (*Summary, error) {
	summary := &Summary{}

	for _, name := range tables {
		drivers, ok := imp.drivers(name)
		if !ok {
			return nil, fmt.Errorf("unknown table %q (available: %v)", name, TableNames())
		}
		for _, d := range drivers {
			summary.Results = append(summary.Results, imp.importFile(ctx, d))
		}
	}

	return summary, nil
}

// RunAll imports every table in load order.
func (imp *Importer) RunAll(ctx context.Context) (*Summary, error) {
	return imp.Run(ctx, TableNames())
}

// importFile runs one driver end to end: decode, parse, map, batch load.
// A missing file skips the table; a decode failure fails the table but
// not the run.
func (imp *Importer) importFile(ctx context.Context, d tableDriver) TableResult {
	result := TableResult{Table: d.table, File: d.file}
	path := filepath.Join(imp.dataDir, d.file)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		imp.log.Warn("Source file not found, skipping table", map[string]interface{}{
			"table": d.table,
			"path":  path,
		})
		result.Skipped = true
		return result
	}

	data, encoding, err := ReadFileWithFallback(path)
	if err != nil {
		imp.log.Error("Failed to decode source file", err, map[string]interface{}{
			"table": d.table,
			"path":  path,
		})
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Encoding = encoding

	src, err := parseSource(data)
	if err != nil {
		imp.log.Error("Failed to parse source file", err, map[string]interface{}{
			"table": d.table,
			"path":  path,
		})
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Read = len(src.rows)

	var batchRows [][]any
	for _, row := range src.rows {
		values, ok := d.mapRow(src, row)
		if !ok {
			result.Dropped++
			continue
		}
		batchRows = append(batchRows, values)
	}

	imp.log.Info("Prepared records", map[string]interface{}{
		"table":    d.table,
		"encoding": encoding,
		"read":     result.Read,
		"valid":    len(batchRows),
		"dropped":  result.Dropped,
	})

	if imp.dryRun {
		imp.log.Info("Dry run, skipping insert", map[string]interface{}{
			"table": d.table,
			"rows":  len(batchRows),
		})
		return result
	}

	result.Inserted, result.Errors = imp.loadBatches(ctx, d, batchRows)

	imp.log.Info("Table import finished", map[string]interface{}{
		"table":    d.table,
		"inserted": result.Inserted,
		"errors":   len(result.Errors),
	})

	return result
}

// loadBatches copies rows into the target table in fixed-size batches.
// Each batch succeeds or fails independently: a failed batch's error is
// collected and the load continues with the next batch.
func (imp *Importer) loadBatches(ctx context.Context, d tableDriver, rows [][]any) (int64, []string) {
	var (
		inserted int64
		errs     []string
	)

	for start := 0; start < len(rows); start += d.batchSize {
		end := start + d.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		err := withRetry(ctx, func(ctx context.Context) error {
			n, err := imp.db.CopyFrom(ctx, pgx.Identifier{d.table}, d.columns, pgx.CopyFromRows(batch))
			if err == nil {
				inserted += n
			}
			return err
		})
		if err != nil {
			imp.log.Error("Batch insert failed", err, map[string]interface{}{
				"table": d.table,
				"batch": start / d.batchSize,
				"rows":  len(batch),
			})
			errs = append(errs, fmt.Sprintf("%s rows %d-%d: %v", d.table, start, end-1, err))
		}
	}

	return inserted, errs
}
