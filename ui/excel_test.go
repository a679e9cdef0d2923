package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketeda/models"
)

func TestBuildTableWorkbook(t *testing.T) {
	table := &models.Table{
		Title:   "Summary statistics of time gaps",
		Headers: []string{"Metric", "Value (Seconds)", "Interpretation"},
		Rows: [][]string{
			{"25th %ile", "38", "dense browsing"},
			{"Median", "136", "short gaps"},
		},
	}

	f, err := buildTableWorkbook(table)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, table.Headers, rows[0])
	assert.Equal(t, table.Rows[0], rows[1])
	assert.Equal(t, table.Rows[1], rows[2])
}
