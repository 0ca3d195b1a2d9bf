package export

import (
	"strings"
	"testing"

	"github.com/platewatch/platewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	records := []model.Record{
		{
			Name:              "Rise & Shine",
			Category:          "Bakery",
			AddressLine1:      "123 Main St",
			InspectionDate:    "2024-03-15T00:00:00.000",
			InspectionResults: "Compliant - No Health Risk",
		},
		{Name: `The "Best" Diner`},
	}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "name,date,result,location,category", lines[0])
	assert.Equal(t, `"Rise & Shine","2024-03-15","Compliant - No Health Risk","123 Main St","Bakery"`, lines[1])

	// Embedded quotes are doubled; absent fields degrade to N/A.
	assert.Equal(t, `"The ""Best"" Diner","N/A","N/A","N/A","N/A"`, lines[2])
}

func TestWriteCSVNoRecords(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "name,date,result,location,category\n", buf.String())
}
