package usecase

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wraplens/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
)

// Markup landmarks on Amazon product pages. Two detail containers exist
// because Amazon ships both a spec table and a legacy bullet table depending
// on category; the primary one wins on duplicate headings.
const (
	titleSelector         = "#productTitle"
	priceSelector         = "#corePrice_feature_div"
	priceFallbackSelector = ".a-price"
	bulletsSelector       = "#feature-bullets"
	detailTableSelector   = "#productDetails_techSpec_section_1"
	detailLegacySelector  = "#productDetails_detailBullets_sections1"
	thumbnailSelector     = "#landingImage"
)

// ExtractSections scans raw product page HTML for known landmarks and returns
// the plain-text sections. It never fails: malformed or partial markup just
// yields fewer populated fields, and each landmark is probed independently.
func ExtractSections(html string) *domain.ExtractedText {
	extracted := &domain.ExtractedText{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return extracted
	}

	extracted.Title = strings.TrimSpace(doc.Find(titleSelector).First().Text())
	extracted.Price = extractPrice(doc)
	extracted.Description = extractBullets(doc)
	extracted.ProductDetails = extractDetails(doc)

	if src, ok := doc.Find(thumbnailSelector).First().Attr("src"); ok {
		extracted.Thumbnail = strings.TrimSpace(src)
	}

	return extracted
}

// extractPrice returns the raw price phrase, not a number. Numeric
// conversion happens later, per the prompt rules.
func extractPrice(doc *goquery.Document) string {
	container := doc.Find(priceSelector).First()
	if container.Length() == 0 {
		container = doc.Find(priceFallbackSelector).First()
	}
	if container.Length() == 0 {
		return ""
	}
	return collapseWhitespace(container.Text())
}

// extractBullets joins the feature-bullet lines with newlines, preserving
// document order. Each list item prefers its first inline-text span; items
// without one fall back to their own tag-stripped text.
func extractBullets(doc *goquery.Document) string {
	container := doc.Find(bulletsSelector).First()
	if container.Length() == 0 {
		return ""
	}

	list := container.Find("ul").First()
	if list.Length() == 0 {
		return ""
	}

	var lines []string
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		text := ""
		if span := item.Find("span.a-list-item").First(); span.Length() > 0 {
			text = span.Text()
		} else {
			text = item.Text()
		}
		text = collapseWhitespace(text)
		if text != "" {
			lines = append(lines, text)
		}
	})

	return strings.Join(lines, "\n")
}

// extractDetails reads heading/value rows from the spec table and the legacy
// fallback table. First-source-wins: a heading from the fallback table never
// overwrites one the primary table already supplied.
func extractDetails(doc *goquery.Document) []domain.DetailField {
	var details []domain.DetailField
	seen := make(map[string]bool)

	for _, selector := range []string{detailTableSelector, detailLegacySelector} {
		doc.Find(selector).First().Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("th, td")
			if cells.Length() < 2 {
				return
			}

			heading := collapseWhitespace(cells.Eq(0).Text())
			value := collapseWhitespace(cells.Eq(1).Text())
			if heading == "" || value == "" || seen[heading] {
				return
			}

			seen[heading] = true
			details = append(details, domain.DetailField{Heading: heading, Value: value})
		})
	}

	return details
}

// collapseWhitespace trims and collapses whitespace runs to single spaces
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(s, " "))
}
