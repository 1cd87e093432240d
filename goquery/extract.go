// Package goquery implements the league page extractors on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/captaingang"
)

// Selectors is the content-selection strategy of the extractors: where on a
// page to look for names, links and table cells, and how to read ids out of
// link addresses.
type Selectors struct {
	// BaseURL resolves relative links.
	BaseURL string

	// Headings holds heading-like elements that may carry the captain name.
	Headings string
	// Tables selects rendered tables.
	Tables string
	// Cells selects the cells within a table.
	Cells string
	// Links selects candidate hyperlinks.
	Links string

	// TeamHref matches links to team roster pages.
	TeamHref *regexp.Regexp
	// PlayerHref matches links to player profile pages.
	PlayerHref *regexp.Regexp
	// ID captures the numeric id from a link address.
	ID *regexp.Regexp

	// CaptainMarker appears in the text of links to captained teams.
	CaptainMarker string
}

// DefaultSelectors returns the selectors for leagues.ustanorcal.com.
func DefaultSelectors() Selectors {
	return Selectors{
		BaseURL:       captaingang.DefaultBaseURL,
		Headings:      "h1, h2, h3, b",
		Tables:        "table",
		Cells:         "td, th",
		Links:         "a[href]",
		TeamHref:      regexp.MustCompile(`teaminfo\.asp\?id=\d+`),
		PlayerHref:    regexp.MustCompile(`playermatches\.asp\?id=\d+`),
		ID:            regexp.MustCompile(`id=(\d+)`),
		CaptainMarker: "Captain",
	}
}

// WithBaseURL returns a copy of s resolving links against baseURL.
func (s Selectors) WithBaseURL(baseURL string) Selectors {
	s.BaseURL = baseURL
	return s
}

// link is an anchor matched by a href pattern.
type link struct {
	href string
	id   string
	text string
}

// parse reads html into a document. Markup the parser rejects is treated
// as an empty page.
func parse(html string) *goquery.Document {
	if strings.TrimSpace(html) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// findLinks returns, in document order, the anchors whose href matches
// pattern and carries a numeric id. Anchors without an id are dropped.
func findLinks(doc *goquery.Document, s Selectors, pattern *regexp.Regexp) []link {
	var links []link
	doc.Find(s.Links).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if !pattern.MatchString(href) {
			return
		}
		m := s.ID.FindStringSubmatch(href)
		if m == nil {
			return
		}
		links = append(links, link{
			href: href,
			id:   m[1],
			text: text(sel),
		})
	})
	return links
}

// text returns the whitespace-normalized text of a selection.
func text(sel *goquery.Selection) string {
	return captaingang.NormalizeName(sel.Text())
}

// resolveURL resolves a relative URL against a base URL.
// The href is returned unchanged if either cannot be parsed.
func resolveURL(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
