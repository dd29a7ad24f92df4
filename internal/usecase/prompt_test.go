package usecase

import (
	"strings"
	"testing"

	"github.com/wraplens/backend/internal/domain"
)

func TestComposePrompt(t *testing.T) {
	extracted := &domain.ExtractedText{
		Title:       "Reversible Wrapping Paper, 4 Rolls",
		Price:       "$19.99",
		Description: "4 designs\nEach roll is 30\" x 8.8'",
		ProductDetails: []domain.DetailField{
			{Heading: "Brand", Value: "Hallmark"},
		},
		Thumbnail: "https://images.example.com/thumb.jpg",
	}

	t.Run("renders extracted fields in order", func(t *testing.T) {
		prompt := ComposePrompt(extracted, "B08XYZ1234", "https://www.amazon.com/dp/B08XYZ1234")

		for _, want := range []string{
			"Title: Reversible Wrapping Paper, 4 Rolls",
			"Price: $19.99",
			"- Brand: Hallmark",
			"Thumbnail: https://images.example.com/thumb.jpg",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
		if strings.Contains(prompt, noDataSentinel) {
			t.Error("sentinel should not appear when fields are present")
		}
	})

	t.Run("fills asin and url into the schema skeleton", func(t *testing.T) {
		prompt := ComposePrompt(extracted, "B08XYZ1234", "https://www.amazon.com/dp/B08XYZ1234")

		if !strings.Contains(prompt, `"asin": "B08XYZ1234"`) {
			t.Error("asin not filled into skeleton")
		}
		if !strings.Contains(prompt, `"url": "https://www.amazon.com/dp/B08XYZ1234"`) {
			t.Error("url not filled into skeleton")
		}
	})

	t.Run("uses placeholders when asin and url unknown", func(t *testing.T) {
		prompt := ComposePrompt(extracted, "", "")

		if !strings.Contains(prompt, asinPlaceholder) {
			t.Error("asin placeholder missing")
		}
		if !strings.Contains(prompt, urlPlaceholder) {
			t.Error("url placeholder missing")
		}
	})

	t.Run("substitutes sentinel when nothing extracted", func(t *testing.T) {
		prompt := ComposePrompt(&domain.ExtractedText{}, "", "")

		if !strings.Contains(prompt, noDataSentinel) {
			t.Error("sentinel missing for empty extraction")
		}
		if strings.Contains(prompt, "Title:") {
			t.Error("no field labels should render for empty extraction")
		}
	})

	t.Run("carries the extraction rules", func(t *testing.T) {
		prompt := ComposePrompt(extracted, "", "")

		for _, want := range []string{
			"wrapping_paper",
			"reversible",
			"forward slashes",
			"i mod length of printNames",
			"single raw JSON object",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt rules missing %q", want)
			}
		}
	})
}
