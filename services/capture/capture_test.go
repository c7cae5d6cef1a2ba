package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coinwatch/lib/telemetry"
	"coinwatch/services/snapshots"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const pageHtml = `<html><body><table>
<tbody>
<tr>
  <td>1</td>
  <td><div><p>Bitcoin</p><p>BTC</p></div></td>
  <td><span>$43,250.12</span></td>
  <td><span>-0.39%</span></td>
  <td><span>-2.45%</span></td>
  <td><span>-6.80%</span></td>
  <td><span>$845,123,456,789</span></td>
  <td><span>$22,841,174,507</span></td>
  <td><span>19,540,300 BTC</span></td>
</tr>
<tr class="ad-slot"><td colspan="9">Sponsored</td></tr>
<tr>
  <td>2</td>
  <td><div><p>Ethereum</p><p>ETH</p></div></td>
  <td><span>$2,310.55</span></td>
  <td><span>-0.26%</span></td>
  <td><span>1.12%</span></td>
  <td><span>-5.10%</span></td>
  <td><span>$277,654,321,098</span></td>
  <td><span>$7,504,170,840</span></td>
  <td><span>120,168,000 ETH</span></td>
</tr>
<tr>
  <td>3</td>
  <td><div><p>Solana</p><p>SOL</p></div></td>
  <td><span>$98.77</span></td>
  <td><span>0.95%</span></td>
  <td><span>5.91%</span></td>
  <td><span>3.40%</span></td>
  <td><span>$42,987,654,321</span></td>
  <td><span>$1,161,828,495</span></td>
  <td><span>435,230,000 SOL</span></td>
</tr>
</tbody>
</table></body></html>`

type staticRenderer struct {
	html      string
	failOnNav bool
	closed    bool
}

func (r *staticRenderer) Navigate(ctx context.Context, url string) error {
	if r.failOnNav {
		return fmt.Errorf("navigate %s: connection refused", url)
	}
	return nil
}

func (r *staticRenderer) WaitForRender(ctx context.Context, d time.Duration) error {
	return nil
}

func (r *staticRenderer) Document() (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(r.html))
}

func (r *staticRenderer) Close() error {
	r.closed = true
	return nil
}

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.RenderWaitSeconds = 0
	cfg.CsvPath = filepath.Join(dir, "crypto_prices.csv")
	cfg.WorkbookPath = filepath.Join(dir, "crypto_prices.xlsx")
	return cfg
}

func TestRunPersistsToBothStores(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/capture")
	defer cleanup()

	ctx := context.Background()
	cfg := testConfig(t)
	renderer := &staticRenderer{html: pageHtml}

	listings, err := Run(ctx, cfg.Scraper(renderer), cfg.Store())
	require.NoError(t, err)
	require.Len(t, listings, 3)
	require.Equal(t, "Bitcoin", listings[0].Name)
	require.Equal(t, "Ethereum", listings[1].Name)
	require.Equal(t, "Solana", listings[2].Name)

	// second run appends to both stores instead of rewriting them
	_, err = Run(ctx, cfg.Scraper(renderer), cfg.Store())
	require.NoError(t, err)

	read, err := snapshots.ReadCsv(ctx, cfg.CsvPath)
	require.NoError(t, err)
	require.Len(t, read, 6)

	f, err := excelize.OpenFile(cfg.WorkbookPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(snapshots.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1+6)
}

func TestRunRendererFailureWritesNothing(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/capture")
	defer cleanup()

	cfg := testConfig(t)
	renderer := &staticRenderer{failOnNav: true}

	_, err := Run(context.Background(), cfg.Scraper(renderer), cfg.Store())
	require.Error(t, err)

	_, err = os.Stat(cfg.CsvPath)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(cfg.WorkbookPath)
	require.True(t, os.IsNotExist(err))
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{max_rows: 10, screener: {min_price: 500}}`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.MaxRows)
	require.Equal(t, 500.0, cfg.Screener.MinPrice)
	require.Equal(t, DefaultConfig().Url, cfg.Url)
	require.Equal(t, DefaultConfig().CsvPath, cfg.CsvPath)
	require.Equal(t, DefaultConfig().Screener.MinChange24h, cfg.Screener.MinChange24h)
}
