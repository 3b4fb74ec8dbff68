package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLTable scrapes the first matching table of a published sheet page
// ("File → Publish to web" in most spreadsheet tools). The first row with
// any text is the header.
type HTMLTable struct {
	URL      string
	Selector string // defaults to "table"
	Client   *http.Client
}

func (h HTMLTable) Rows(ctx context.Context) ([]map[string]string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "horarios/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetching %s: status %d: %s", h.URL, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return h.parse(doc)
}

func (h HTMLTable) parse(doc *goquery.Document) ([]map[string]string, error) {
	sel := h.Selector
	if sel == "" {
		sel = "table"
	}
	tbl := doc.Find(sel).First()
	if tbl.Length() == 0 {
		return nil, fmt.Errorf("no element matches %q: %w", sel, ErrNoRows)
	}

	var table [][]string
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(table) == 0 && blankLine(cells) {
			return
		}
		table = append(table, cells)
	})
	return fromTable(table)
}
