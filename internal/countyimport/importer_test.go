package countyimport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srqtax/tdt/internal/logger"
)

func newTestImporter(t *testing.T, dataDir string, opts Options) (*Importer, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	opts.DataDir = dataDir
	return New(mock, logger.New("test"), opts), mock
}

func writeSourceFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestImporterRunSingleTable(t *testing.T) {
	dir := t.TempDir()
	writeSourceFile(t, dir, "Exemptions.txt",
		"parcelid,exemptioncode,amountofftotalassessment,appcode\n"+
			"0001,HX,50000,A\n"+
			`"",HX,25000,A`+"\n"+
			"0002,WX,5000,B\n")

	imp, mock := newTestImporter(t, dir, Options{})
	mock.ExpectCopyFrom(pgx.Identifier{"exemptions"}, exemptionColumns).WillReturnResult(2)

	summary, err := imp.Run(context.Background(), []string{"exemptions"})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	result := summary.Results[0]
	assert.Equal(t, "exemptions", result.Table)
	assert.Equal(t, "utf-8", result.Encoding)
	assert.Equal(t, 3, result.Read)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, int64(2), result.Inserted)
	assert.Empty(t, result.Errors)
	assert.False(t, result.Skipped)
	assert.Equal(t, int64(2), summary.TotalInserted())
	assert.False(t, summary.HasErrors())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImporterMissingFileSkipsTable(t *testing.T) {
	imp, mock := newTestImporter(t, t.TempDir(), Options{})

	summary, err := imp.Run(context.Background(), []string{"sales"})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.True(t, summary.Results[0].Skipped)
	assert.Equal(t, int64(0), summary.TotalInserted())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImporterDryRun(t *testing.T) {
	dir := t.TempDir()
	writeSourceFile(t, dir, "Land.txt",
		"parcelid,seeqnumber,numofunits\n0001,1,2.5\n0002,1,1\n")

	imp, mock := newTestImporter(t, dir, Options{DryRun: true})

	summary, err := imp.Run(context.Background(), []string{"land"})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, 2, summary.Results[0].Read)
	assert.Equal(t, int64(0), summary.Results[0].Inserted)

	// Dry run touches no storage.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImporterBatchFailureContinues(t *testing.T) {
	dir := t.TempDir()
	writeSourceFile(t, dir, "Exemptions.txt",
		"parcelid,exemptioncode\n0001,HX\n0002,HX\n0003,WX\n0004,WX\n")

	imp, mock := newTestImporter(t, dir, Options{BatchSize: 2})
	// Integrity violations are permanent; the batch fails without retry
	// and the load continues with the next batch.
	mock.ExpectCopyFrom(pgx.Identifier{"exemptions"}, exemptionColumns).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})
	mock.ExpectCopyFrom(pgx.Identifier{"exemptions"}, exemptionColumns).WillReturnResult(2)

	summary, err := imp.Run(context.Background(), []string{"exemptions"})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	result := summary.Results[0]
	assert.Equal(t, int64(2), result.Inserted)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "rows 0-1")
	assert.True(t, summary.HasErrors())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImporterUnknownTable(t *testing.T) {
	imp, _ := newTestImporter(t, t.TempDir(), Options{})

	_, err := imp.Run(context.Background(), []string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown table")
}

func TestImporterLookupsCoverAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeSourceFile(t, dir, "LookupLandUseCodes.txt", "Code,Description\n0100,Single Family\n")
	writeSourceFile(t, dir, "LookupDeedType.txt", "Code,Description\nWD,Warranty Deed\n")

	imp, mock := newTestImporter(t, dir, Options{})
	mock.ExpectCopyFrom(pgx.Identifier{"lookup_land_use_codes"}, lookupColumns).WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"lookup_deed_types"}, lookupColumns).WillReturnResult(1)

	summary, err := imp.Run(context.Background(), []string{"lookups"})
	require.NoError(t, err)
	// All four lookup files report a result; the two absent ones skip.
	require.Len(t, summary.Results, 4)
	assert.Equal(t, int64(2), summary.TotalInserted())
	assert.True(t, summary.Results[2].Skipped)
	assert.True(t, summary.Results[3].Skipped)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableNamesOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"lookups", "properties", "sales", "buildings", "land", "values", "exemptions"},
		TableNames())
}
