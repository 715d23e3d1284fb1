// =============================================================================
// xmlsheets - Spreadsheet Exporter
// =============================================================================
//
// This module serializes extracted invoice records into an XLSX workbook
// held fully in memory. The workbook layout is fixed:
//
//   - Single worksheet named "Dados NFe"
//   - Header row with the 14 field labels, in the order of Headers
//   - One data row per record, no index column
//   - Numeric fields written as numbers (never through locale formatting;
//     currency display strings are a presentation concern and must not feed
//     back into exported values)
//
// =============================================================================

package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tgfriperie/xmlsheets/internal/nfe"
)

// SheetName is the single worksheet of every exported workbook.
const SheetName = "Dados NFe"

// ContentType is the MIME type exported workbooks are served with.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Headers lists the column labels in export order. The order matches the
// field order of nfe.LineRecord rows written by ToSpreadsheet.
var Headers = []string{
	"NF Nº",
	"Data Emissão",
	"Nome do Consumidor",
	"Documento (CPF/CNPJ)",
	"Endereço",
	"Telefone",
	"Email",
	"Código Produto",
	"Produto Comprado",
	"Quantidade",
	"Valor Unitário",
	"Valor Total Produtos",
	"Valor Frete",
	"Valor Total da Nota",
}

// Filename returns the download file name for an invoice number, following
// the fixed "dados_nfe_<NF number>.xlsx" pattern.
func Filename(nfNumber string) string {
	return fmt.Sprintf("dados_nfe_%s.xlsx", nfNumber)
}

// ToSpreadsheet serializes the record set into XLSX bytes. The full content
// is returned at once; nothing is streamed.
func ToSpreadsheet(records []nfe.LineRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// A fresh workbook starts with a default sheet; rename it instead of
	// juggling a second one.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{
			rec.NFNumber,
			rec.IssuedAt,
			rec.BuyerName,
			rec.BuyerDocument,
			rec.BuyerAddress,
			rec.BuyerPhone,
			rec.BuyerEmail,
			rec.ProductCode,
			rec.ProductName,
			rec.Quantity,
			rec.UnitValue,
			rec.TotalProducts,
			rec.TotalFreight,
			rec.TotalInvoice,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
