package snapshots

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coinwatch/lib/scrapers/coinmarketcap"
	"coinwatch/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var batchA = []coinmarketcap.Listing{
	{
		CapturedAt: "2024-06-01 09:30:00",
		Name:       "Bitcoin",
		Price:      "$43,250.12",
		Change24h:  "-2.45%",
		MarketCap:  "$845,123,456,789",
	},
	{
		CapturedAt: "2024-06-01 09:30:00",
		Name:       "Ethereum",
		Price:      "$2,310.55",
		Change24h:  "1.12%",
		MarketCap:  "$277,654,321,098",
	},
	{
		CapturedAt: "2024-06-01 09:30:00",
		Name:       "Solana",
		Price:      "$98.77",
		Change24h:  "5.91%",
		MarketCap:  "$42,987,654,321",
	},
}

var batchB = []coinmarketcap.Listing{
	{
		CapturedAt: "2024-06-01 10:30:00",
		Name:       "Bitcoin",
		Price:      "$43,911.08",
		Change24h:  "-0.92%",
		MarketCap:  "$858,321,000,456",
	},
	{
		CapturedAt: "2024-06-01 10:30:00",
		Name:       "Dogecoin",
		Price:      "$0.08123",
		Change24h:  "3.47%",
		MarketCap:  "$11,567,890,123",
	},
}

func TestAppendCsvHeaderOnce(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/snapshots")
	defer cleanup()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "crypto_prices.csv")

	err := AppendCsv(ctx, path, batchA)
	require.NoError(t, err)
	err = AppendCsv(ctx, path, batchB)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(contents), "\n"), "\n")
	require.Len(t, lines, 1+len(batchA)+len(batchB))
	require.Equal(t, "timestamp,name,price,change_24h,market_cap", lines[0])
	require.Equal(t, 1, strings.Count(string(contents), "timestamp,name"))

	read, err := ReadCsv(ctx, path)
	require.NoError(t, err)

	var expect []coinmarketcap.Listing
	expect = append(expect, batchA...)
	expect = append(expect, batchB...)
	diff := cmp.Diff(expect, read)
	require.Empty(t, diff)
}

func TestAppendCsvEmptyBatch(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/snapshots")
	defer cleanup()

	path := filepath.Join(t.TempDir(), "crypto_prices.csv")
	err := AppendCsv(context.Background(), path, nil)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestReadCsvSkipsShortRows(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/snapshots")
	defer cleanup()

	path := filepath.Join(t.TempDir(), "crypto_prices.csv")
	log := "timestamp,name,price,change_24h,market_cap\n" +
		"2024-06-01 09:30:00,Bitcoin\n" +
		"2024-06-01 09:30:00,Ethereum,\"$2,310.55\",1.12%,\"$277,654,321,098\"\n"
	err := os.WriteFile(path, []byte(log), 0644)
	require.NoError(t, err)

	read, err := ReadCsv(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, read, 1)
	require.Equal(t, "Ethereum", read[0].Name)
	require.Equal(t, "$2,310.55", read[0].Price)
}

func TestReadCsvMissingFile(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/snapshots")
	defer cleanup()

	_, err := ReadCsv(context.Background(), filepath.Join(t.TempDir(), "nonexistent.csv"))
	require.Error(t, err)
}
