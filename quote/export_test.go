package quote_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/quote"
)

func TestWriteWorkbook(t *testing.T) {
	req := quote.Request{
		Contact: models.QuoteContact{
			FullName: "Jo Carpenter",
			Email:    "jo@example.com",
			Phone:    "555-0101",
			Message:  "Two doors for the workshop.",
		},
		Quote: quote.Build([]models.ProductCustomization{item("a", 100.00), item("b", 250.50)}),
	}

	path := filepath.Join(t.TempDir(), "quote.xlsx")
	require.NoError(t, quote.WriteWorkbook(path, req))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)

	assert.Equal(t, "Quote Request", rows[0][0])
	assert.Equal(t, []string{"Name", "Jo Carpenter"}, rows[1][:2])

	// header sits two rows below the contact block
	require.GreaterOrEqual(t, len(rows), 10)
	assert.Equal(t, "Product", rows[6][0])
	assert.Equal(t, "Price", rows[6][7])

	assert.Equal(t, "Door a", rows[7][0])
	assert.Equal(t, "Door b", rows[8][0])
	assert.Equal(t, "Total", rows[9][0])
	assert.Equal(t, "350.5", rows[9][7])
}
