package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscheck-io/crosscheck/pkg/dataset"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   dataset.Value
		want dataset.Value
	}{
		{"leading zeros stripped", dataset.Text("00045"), dataset.Number(45)},
		{"all zeros becomes zero", dataset.Text("000"), dataset.Number(0)},
		{"single zero", dataset.Text("0"), dataset.Number(0)},
		{"plain digits", dataset.Text("12345"), dataset.Number(12345)},
		{"mixed alphanumeric unchanged", dataset.Text("12A3"), dataset.Text("12A3")},
		{"decimal text unchanged", dataset.Text("3.14"), dataset.Text("3.14")},
		{"negative text unchanged", dataset.Text("-45"), dataset.Text("-45")},
		{"empty text unchanged", dataset.Text(""), dataset.Text("")},
		{"whitespace only unchanged", dataset.Text("  "), dataset.Text("  ")},
		{"surrounding whitespace trimmed", dataset.Text(" 007 "), dataset.Number(7)},
		{"number unchanged", dataset.Number(45), dataset.Number(45)},
		{"missing unchanged", dataset.Missing, dataset.Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataset.NormalizeValue(tt.in))
		})
	}
}

func TestDatasetNormalize(t *testing.T) {
	d := dataset.New("Cognos", []string{"Code", "Sales"})
	require.NoError(t, d.AppendRow(dataset.Text("007"), dataset.Number(10)))
	require.NoError(t, d.AppendRow(dataset.Text("ABC"), dataset.Number(20)))

	n := d.Normalize()

	// Normalization is pure: the input dataset is untouched.
	assert.Equal(t, dataset.Text("007"), d.Cell("Code", 0))

	got, ok := n.Cell("Code", 0).Float()
	require.True(t, ok)
	assert.Equal(t, 7.0, got)
	assert.Equal(t, dataset.Text("ABC"), n.Cell("Code", 1))
}
