package quote

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook renders a quote request as an .xlsx summary: contact
// block, one row per line item, total row.
func WriteWorkbook(path string, req Request) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	contact := [][]any{
		{"Quote Request"},
		{"Name", req.Contact.FullName},
		{"Email", req.Contact.Email},
		{"Phone", req.Contact.Phone},
		{"Message", req.Contact.Message},
	}
	for i, row := range contact {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write contact row: %w", err)
		}
	}

	header := []any{"Product", "Material", "Finish", "Glass", "Width", "Height", "Custom Size", "Price"}
	startRow := len(contact) + 2
	cell, err := excelize.CoordinatesToCellName(1, startRow)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, item := range req.Quote.LineItems {
		row := []any{
			item.ProductName,
			item.MaterialType,
			item.ColorFinish,
			item.GlassPanel,
			item.Dimensions.Width,
			item.Dimensions.Height,
			item.Dimensions.IsCustom,
			item.TotalPrice,
		}
		cell, err := excelize.CoordinatesToCellName(1, startRow+1+i)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write line item: %w", err)
		}
	}

	totalRow := []any{"Total", "", "", "", "", "", "", req.Quote.Total}
	cell, err = excelize.CoordinatesToCellName(1, startRow+1+len(req.Quote.LineItems))
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeOutbox(dir, referenceID string, req Request) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("quote-%s.xlsx", referenceID))
	if err := WriteWorkbook(path, req); err != nil {
		return "", err
	}
	return path, nil
}
