package exporter

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tgfriperie/xmlsheets/internal/nfe"
)

func sampleRecords() []nfe.LineRecord {
	base := nfe.LineRecord{
		NFNumber:      "12345",
		IssuedAt:      "2024-05-10T14:32:00-03:00",
		BuyerName:     "Maria da Silva",
		BuyerDocument: "12345678909",
		BuyerAddress:  "Rua das Flores, 100 - Centro, São Paulo/SP - CEP: 01001000",
		BuyerPhone:    nfe.NotInformed,
		BuyerEmail:    "maria@example.com",
		TotalProducts: 17.0,
		TotalFreight:  5.5,
		TotalInvoice:  22.5,
	}

	first := base
	first.ProductCode = "SKU-1"
	first.ProductName = "Caneta Azul"
	first.Quantity = 2
	first.UnitValue = 3.5

	second := base
	second.ProductCode = "SKU-2"
	second.ProductName = "Caderno"
	second.Quantity = 1
	second.UnitValue = 12.9

	return []nfe.LineRecord{first, second}
}

func TestToSpreadsheetRoundTrip(t *testing.T) {
	records := sampleRecords()

	blob, err := ToSpreadsheet(records)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)

	assert.Equal(t, Headers, rows[0])

	for i, rec := range records {
		row := rows[i+1]
		require.Len(t, row, len(Headers))

		assert.Equal(t, rec.NFNumber, row[0])
		assert.Equal(t, rec.IssuedAt, row[1])
		assert.Equal(t, rec.BuyerName, row[2])
		assert.Equal(t, rec.BuyerDocument, row[3])
		assert.Equal(t, rec.BuyerAddress, row[4])
		assert.Equal(t, rec.BuyerPhone, row[5])
		assert.Equal(t, rec.BuyerEmail, row[6])
		assert.Equal(t, rec.ProductCode, row[7])
		assert.Equal(t, rec.ProductName, row[8])

		numeric := []struct {
			col  int
			want float64
		}{
			{9, rec.Quantity},
			{10, rec.UnitValue},
			{11, rec.TotalProducts},
			{12, rec.TotalFreight},
			{13, rec.TotalInvoice},
		}
		for _, n := range numeric {
			got, err := strconv.ParseFloat(row[n.col], 64)
			require.NoError(t, err, "column %d", n.col)
			assert.InDelta(t, n.want, got, 1e-9, "column %d", n.col)
		}
	}
}

func TestToSpreadsheetEmptyRecordSet(t *testing.T) {
	blob, err := ToSpreadsheet(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Headers, rows[0])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "dados_nfe_12345.xlsx", Filename("12345"))
}
