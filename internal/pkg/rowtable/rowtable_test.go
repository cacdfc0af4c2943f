package rowtable

import (
	"context"
	"testing"

	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallback = []string{"Names", "EMP Code", "Email"}

func fetchFrom(t *testing.T, rows [][]string) (Table, error) {
	t.Helper()
	store := sheetdb.NewMemStore(map[string][][]string{"Sheet1": rows})
	return Fetch(context.Background(), store, "Sheet1!A:C", fallback)
}

func TestFetch_InfersTrimmedHeaders(t *testing.T) {
	table, err := fetchFrom(t, [][]string{
		{" Names ", "EMP Code", " Email"},
		{"Asha", "E-1", "asha@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Names", "EMP Code", "Email"}, table.Headers)
	assert.Equal(t, HeaderInferred, table.HeaderSource)
}

func TestFetch_FallbackOnBlankHeaderCell(t *testing.T) {
	table, err := fetchFrom(t, [][]string{
		{"Names", "", "Email"},
		{"Asha", "E-1", "asha@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, fallback, table.Headers)
	assert.Equal(t, HeaderFallback, table.HeaderSource)
}

func TestFetch_FallbackOnEmptyHeaderRow(t *testing.T) {
	store := sheetdb.NewMemStore(map[string][][]string{"Sheet1": {
		nil,
		{"Asha", "E-1", "asha@x.com"},
	}})
	table, err := Fetch(context.Background(), store, "Sheet1!A:C", fallback)
	require.NoError(t, err)
	assert.Equal(t, HeaderFallback, table.HeaderSource)
	assert.Equal(t, fallback, table.Headers)
}

func TestFetch_EmptyTable(t *testing.T) {
	_, err := fetchFrom(t, nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestFetch_TrimsValuesAndFillsMissingCells(t *testing.T) {
	table, err := fetchFrom(t, [][]string{
		{"Names", "EMP Code", "Email"},
		{"  Asha  ", "E-1"},
	})
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "Asha", table.Records[0]["Names"])
	assert.Equal(t, "", table.Records[0]["Email"])
}

func TestFetch_DropsAllEmptyRecords(t *testing.T) {
	table, err := fetchFrom(t, [][]string{
		{"Names", "EMP Code", "Email"},
		{"", "  ", ""},
		{"Ravi", "", ""},
		{},
	})
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "Ravi", table.Records[0]["Names"])
}

func TestFetch_PreservesRowOrder(t *testing.T) {
	table, err := fetchFrom(t, [][]string{
		{"Names", "EMP Code", "Email"},
		{"Asha", "E-1", ""},
		{"Ravi", "E-2", ""},
		{"Mira", "E-3", ""},
	})
	require.NoError(t, err)
	var names []string
	for _, rec := range table.Records {
		names = append(names, rec["Names"])
	}
	assert.Equal(t, []string{"Asha", "Ravi", "Mira"}, names)
}

func TestFetch_FieldSetEqualsHeaderSet(t *testing.T) {
	// Rows wider than the header set must not grow extra fields.
	table, err := fetchFrom(t, [][]string{
		{"Names", "EMP Code"},
		{"Asha", "E-1", "stray@x.com"},
	})
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Len(t, table.Records[0], 2)
}

func TestRequireColumns_CaseInsensitive(t *testing.T) {
	table := Table{Headers: []string{"Timestamp", "EMAIL", "entrytype", "Site"}}
	assert.NoError(t, table.RequireColumns("Email", "Timestamp", "EntryType", "Site"))
}

func TestRequireColumns_NamesMissing(t *testing.T) {
	table := Table{Headers: []string{"Timestamp", "Email"}}
	err := table.RequireColumns("Email", "EntryType", "Site")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"EntryType", "Site"}, schemaErr.Missing)
}

func TestColumn_ResolvesActualCasing(t *testing.T) {
	table := Table{Headers: []string{"TIMESTAMP", "Email"}}
	header, ok := table.Column("timestamp")
	require.True(t, ok)
	assert.Equal(t, "TIMESTAMP", header)
}
