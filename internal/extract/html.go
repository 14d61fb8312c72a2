package extract

import (
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// marketplaceCardSelector matches the supplier/product card elements used
// by IndiaMART-style listing pages.
const marketplaceCardSelector = "[class*=prod], [class*=card], [class*=cmpny], [class*=supplier]"

// snippetLimit caps how much card text is carried into notes.
const snippetLimit = 140

// HTMLOptions configures marketplace page parsing.
type HTMLOptions struct {
	// Charset names the page encoding when it is not UTF-8 (e.g.
	// "windows-1252"). Empty means the bytes are already UTF-8.
	Charset string
	// Country is stamped on every extracted row; marketplace listings
	// carry no per-card location. Defaults to "India".
	Country string
}

// ReadMarketplaceHTML scrapes supplier cards from a saved marketplace page.
// Pages without recognizable cards fall back to scanning anchors, the same
// rows just carry less signal: a website link (http(s) only) and a text
// snippet in notes.
func ReadMarketplaceHTML(r io.Reader, opts HTMLOptions) ([]model.RawRow, error) {
	if opts.Charset != "" {
		enc, err := htmlindex.Get(opts.Charset)
		if err != nil {
			return nil, eris.Wrapf(err, "html: unknown charset %q", opts.Charset)
		}
		r = enc.NewDecoder().Reader(r)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "html: parse document")
	}

	country := opts.Country
	if country == "" {
		country = "India"
	}

	cards := doc.Find(marketplaceCardSelector)
	if cards.Length() == 0 {
		cards = doc.Find("a")
	}

	var rows []model.RawRow
	cards.Each(func(_ int, sel *goquery.Selection) {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			return
		}
		if len(text) > snippetLimit {
			text = text[:snippetLimit]
		}
		link, ok := sel.Attr("href")
		if !ok {
			link, _ = sel.Find("a[href]").First().Attr("href")
		}
		row := model.RawRow{
			"country": country,
			"notes":   "indiamart_html:" + text,
		}
		if strings.HasPrefix(link, "http") {
			row["website"] = link
		}
		rows = append(rows, row)
	})
	return rows, nil
}

// ReadMarketplaceFile parses a saved marketplace HTML file with defaults.
func ReadMarketplaceFile(path string) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "html: open file")
	}
	defer f.Close()
	return ReadMarketplaceHTML(f, HTMLOptions{})
}
