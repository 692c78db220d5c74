package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscheck-io/crosscheck/pkg/dataset"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "East", dataset.Text("East").String())
	assert.Equal(t, "45", dataset.Number(45).String())
	assert.Equal(t, "4.5", dataset.Number(4.5).String())
	assert.Equal(t, "", dataset.Missing.String())
}

func TestAppendRowLengthMismatch(t *testing.T) {
	d := dataset.New("Cognos", []string{"A", "B"})
	err := d.AppendRow(dataset.Text("only one"))
	assert.Error(t, err)
	assert.Equal(t, 0, d.Rows())
}

func TestColumnKind(t *testing.T) {
	d := dataset.New("Cognos", []string{"Region", "Sales", "Empty"})
	require.NoError(t, d.AppendRow(dataset.Text("East"), dataset.Number(100), dataset.Missing))
	require.NoError(t, d.AppendRow(dataset.Missing, dataset.Number(50), dataset.Missing))

	assert.Equal(t, dataset.KindText, d.ColumnKind("Region"))
	assert.Equal(t, dataset.KindNumber, d.ColumnKind("Sales"))
	// All-missing columns count as numeric, like an empty spreadsheet column.
	assert.Equal(t, dataset.KindNumber, d.ColumnKind("Empty"))
	assert.Equal(t, dataset.KindMissing, d.ColumnKind("Nope"))
}

func TestSharedColumns(t *testing.T) {
	a := dataset.New("Cognos", []string{"Region", "Sales", "Margin"})
	b := dataset.New("PBI", []string{"Sales", "Region", "Units"})

	assert.Equal(t, []string{"Region", "Sales"}, a.SharedColumns(b))
	assert.Equal(t, []string{"Sales", "Region"}, b.SharedColumns(a))
}

func TestClean(t *testing.T) {
	d := dataset.New("PBI", []string{"Region", "Sales"})
	require.NoError(t, d.AppendRow(dataset.Text("  east "), dataset.Number(90)))

	c := d.Clean()
	assert.Equal(t, dataset.Text("EAST"), c.Cell("Region", 0))
	// Clean is pure.
	assert.Equal(t, dataset.Text("  east "), d.Cell("Region", 0))
}
