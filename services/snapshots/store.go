package snapshots

import (
	"context"

	"coinwatch/lib/scrapers/coinmarketcap"
)

// Store bundles the two historical stores one capture run appends to.
type Store struct {
	CsvPath      string
	WorkbookPath string
}

// Record appends the batch to the csv log first, then the workbook. A
// csv failure stops the workbook append; lines already flushed stay.
func (s Store) Record(ctx context.Context, listings []coinmarketcap.Listing) error {
	ctx, span := tracer.Start(ctx, "Record")
	defer span.End()

	err := AppendCsv(ctx, s.CsvPath, listings)
	if err != nil {
		return err
	}
	return AppendWorkbook(ctx, s.WorkbookPath, listings)
}
