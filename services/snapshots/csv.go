// Package snapshots persists capture batches to the two historical
// stores: an append-only csv log and a styled workbook. Neither store
// ever mutates rows written by earlier runs.
package snapshots

import (
	"context"
	"encoding/csv"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"coinwatch/lib/scrapers/coinmarketcap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// column order shared by the csv log, its reader and the workbook
var csvHeader = []string{"timestamp", "name", "price", "change_24h", "market_cap"}

// AppendCsv appends one batch to the csv log, writing the header row
// only when it creates the file. Existing content is never read,
// validated or rewritten. An empty batch leaves the filesystem
// untouched.
func AppendCsv(ctx context.Context, path string, listings []coinmarketcap.Listing) error {
	ctx, span := tracer.Start(ctx, "AppendCsv")
	defer span.End()
	span.SetAttributes(
		attribute.String("path", path),
		attribute.Int("records", len(listings)),
	)

	if len(listings) == 0 {
		slog.InfoContext(ctx, "no records to append to csv log", "path", path)
		return nil
	}

	exists := true
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		exists = false
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to stat csv log")
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open csv log")
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if !exists {
		err = writer.Write(csvHeader)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write csv header")
			return err
		}
	}
	for _, listing := range listings {
		err = writer.Write([]string{
			listing.CapturedAt,
			listing.Name,
			listing.Price,
			listing.Change24h,
			listing.MarketCap,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write csv record")
			return err
		}
	}
	writer.Flush()
	err = writer.Error()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to flush csv log")
		return err
	}

	slog.InfoContext(ctx, "appended records to csv log", "path", path, "records", len(listings))
	return nil
}
