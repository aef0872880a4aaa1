package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/errors"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
)

// RawSheet is the unparsed tabular content of one spreadsheet tab.
type RawSheet struct {
	Header []string
	Rows   [][]string
}

type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Default().WithPrefix("sheets"),
	}
}

// FetchSheet downloads one tab of a public Google Sheet through the CSV
// export endpoint. The sheet must be readable by anyone with the link.
func (c *Client) FetchSheet(ctx context.Context, sheetID, sheetName string) (*RawSheet, error) {
	log := logger.FromContext(ctx).WithPrefix("sheets").WithField("sheet", sheetName)
	exportURL := fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		url.PathEscape(sheetID), url.QueryEscape(sheetName),
	)

	log.Debug("fetching sheet from: %s", exportURL)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch sheet: %v", err)
		return nil, errors.NewUpstreamError("failed to reach Google Sheets", err)
	}
	defer resp.Body.Close()

	log.Debug("sheet response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("sheet request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, errors.NewUpstreamError(
			fmt.Sprintf("sheet export status %d", resp.StatusCode), nil)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		log.Error("failed to parse sheet CSV: %v", err)
		return nil, errors.NewUpstreamError("failed to parse sheet CSV", err)
	}
	if len(records) == 0 {
		log.Error("sheet is empty")
		return nil, errors.NewUpstreamError("sheet is empty", nil)
	}

	sheet := &RawSheet{Header: records[0], Rows: records[1:]}
	log.Info("fetched %d rows from sheet %s", len(sheet.Rows), sheetName)
	return sheet, nil
}
