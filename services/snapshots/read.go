package snapshots

import (
	"context"
	"encoding/csv"
	"os"

	"coinwatch/lib/scrapers/coinmarketcap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ReadCsv loads the whole csv log back into memory so filters can run
// over accumulated history. The header row and any row too short to
// hold every column are skipped. Never writes.
func ReadCsv(ctx context.Context, path string) ([]coinmarketcap.Listing, error) {
	ctx, span := tracer.Start(ctx, "ReadCsv")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open csv log")
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse csv log")
		return nil, err
	}

	var listings []coinmarketcap.Listing
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == csvHeader[0] {
			continue
		}
		if len(record) < len(csvHeader) {
			continue
		}
		listings = append(listings, coinmarketcap.Listing{
			CapturedAt: record[0],
			Name:       record[1],
			Price:      record[2],
			Change24h:  record[3],
			MarketCap:  record[4],
		})
	}

	span.SetAttributes(attribute.Int("records", len(listings)))
	return listings, nil
}
