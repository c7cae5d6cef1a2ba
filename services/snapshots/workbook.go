package snapshots

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"coinwatch/lib/scrapers/coinmarketcap"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const SheetName = "Crypto Data"

const headerFillColor = "4F81BD"

var workbookHeader = []interface{}{"Timestamp", "Name", "Price", "24h Change", "Market Cap"}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
}

func newDataStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
}

// AppendWorkbook appends one batch to the styled workbook, creating it
// with a styled header row when absent. Only the newly appended rows
// are styled; rows from earlier runs keep their content untouched.
// Column widths are recomputed over the entire sheet afterwards since
// they must fit the longest value across the store's whole history.
// An empty batch leaves the filesystem untouched.
func AppendWorkbook(ctx context.Context, path string, listings []coinmarketcap.Listing) error {
	ctx, span := tracer.Start(ctx, "AppendWorkbook")
	defer span.End()
	span.SetAttributes(
		attribute.String("path", path),
		attribute.Int("records", len(listings)),
	)

	if len(listings) == 0 {
		slog.InfoContext(ctx, "no records to append to workbook", "path", path)
		return nil
	}

	create := false
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		create = true
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to stat workbook")
		return err
	}

	var f *excelize.File
	var sheet string
	var startRow int

	if create {
		f = excelize.NewFile()
		sheet = SheetName
		err = f.SetSheetName("Sheet1", sheet)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to name sheet")
			return err
		}
		err = f.SetSheetRow(sheet, "A1", &workbookHeader)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write workbook header")
			return err
		}
		startRow = 2
	} else {
		f, err = excelize.OpenFile(path)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to open workbook")
			return err
		}
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
		rows, err := f.GetRows(sheet)
		if err != nil {
			f.Close()
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to read workbook rows")
			return err
		}
		startRow = len(rows) + 1
	}
	defer f.Close()

	row := startRow
	for _, listing := range listings {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to compute cell name")
			return err
		}
		err = f.SetSheetRow(sheet, cell, &[]interface{}{
			listing.CapturedAt,
			listing.Name,
			listing.Price,
			listing.Change24h,
			listing.MarketCap,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write workbook row")
			return err
		}
		row++
	}
	lastRow := row - 1

	if create {
		style, err := newHeaderStyle(f)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to build header style")
			return err
		}
		lastHeaderCell, err := excelize.CoordinatesToCellName(len(workbookHeader), 1)
		if err != nil {
			return err
		}
		err = f.SetCellStyle(sheet, "A1", lastHeaderCell, style)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to style header row")
			return err
		}
	}

	style, err := newDataStyle(f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build data style")
		return err
	}
	firstCell, err := excelize.CoordinatesToCellName(1, startRow)
	if err != nil {
		return err
	}
	lastCell, err := excelize.CoordinatesToCellName(len(workbookHeader), lastRow)
	if err != nil {
		return err
	}
	err = f.SetCellStyle(sheet, firstCell, lastCell, style)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to style appended rows")
		return err
	}

	err = fitColumnWidths(f, sheet)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fit column widths")
		return err
	}

	if create {
		err = f.SaveAs(path)
	} else {
		err = f.Save()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save workbook")
		return err
	}

	slog.InfoContext(ctx, "appended records to workbook",
		"path", path,
		"records", len(listings),
		"created", create,
	)
	return nil
}

// fitColumnWidths sizes each column to its longest rendered value plus
// two characters, header included, scanning every row because history
// from prior runs counts too.
func fitColumnWidths(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	widths := make([]int, len(workbookHeader))
	for _, row := range rows {
		for i, value := range row {
			if i >= len(widths) {
				break
			}
			length := utf8.RuneCountInString(value)
			if length > widths[i] {
				widths[i] = length
			}
		}
	}

	for i, width := range widths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		err = f.SetColWidth(sheet, column, column, float64(width+2))
		if err != nil {
			return err
		}
	}
	return nil
}
