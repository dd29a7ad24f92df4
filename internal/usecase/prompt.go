package usecase

import (
	"fmt"
	"strings"

	"github.com/wraplens/backend/internal/domain"
)

// noDataSentinel is emitted when every extracted section is absent, so the
// model still receives a well-formed document instead of an empty block.
const noDataSentinel = "(no data extracted from the product page)"

// asinPlaceholder and urlPlaceholder appear in the schema skeleton when the
// caller has no value to fill in.
const (
	asinPlaceholder = "the 10-character ASIN if stated in the page data, else null"
	urlPlaceholder  = "the product page URL if known, else null"
)

const promptRules = `Follow these rules, in order:

1. "type": infer from keywords in the title or description. "wrap",
   "wrapping" or "paper" means "wrapping_paper"; "ribbon" means "ribbon";
   "box" means "box"; "tag" means "tag"; "bow" means "bow". If none match,
   use null.
2. "price": a plain non-negative number parsed from the price text, without
   currency symbols. Null if no price is shown.
3. "quantity": the number of physical items in the pack (for wrapping paper,
   the number of rolls). Null if not determinable.
4. "rollWidth" and "rollLength": numbers parsed with their units. "30 inches"
   or 30" gives rollWidth=30. "8.8 feet" or 8.8' gives rollLength=8.8. A
   combined token like 30" x 8.8' maps width first, then length, in that
   order.
5. "printNames": split the design text on forward slashes first; each
   slash-delimited segment is one candidate group. Within a segment, if the
   description mentions "reversible" or "both sides" anywhere, a comma does
   NOT split the segment (the whole segment, commas included, is one design
   name covering two sides); otherwise a comma DOES split it into separate
   design names. Quoted substrings and "X on Y" phrasings are single
   contiguous names; never split inside them, not even on commas or slashes.
   If the page states an explicit count of designs, your list must have
   exactly that many entries. Example: with "reversible" present, the
   segment "Skiing Santa, zebras and penguins /" is the single name
   "Skiing Santa, zebras and penguins". Without any reversible mention,
   "Bold plaid, stripes, dots" is three names: "Bold plaid", "Stripes",
   "Dots". Use null or an empty list when no design names are explicitly
   stated; never invent names.
6. "rolls": only when type is "wrapping_paper" and quantity is determinable.
   Produce exactly quantity entries, numbered 1 through quantity with no
   gaps. Set "onHand" and "maxArea" both to the stated per-roll size, or to
   (total size / quantity) when only a total is given. Assign "printName"
   by position, cycling through printNames: roll i (counting from 0) gets
   printNames[i mod length of printNames], or null when printNames is empty.
   Set "hasReverseSide" true only if the description mentions a reverse or
   second printed side. Leave "pairedRollNumber" null.
7. Respond with a single raw JSON object only. No surrounding prose, no
   markdown, no code fences.`

// ComposePrompt renders the extraction instruction document for one product
// page: the labeled extracted sections, the exact output schema skeleton, and
// the ordered field rules the completion service must follow.
func ComposePrompt(extracted *domain.ExtractedText, asin, url string) string {
	var b strings.Builder

	b.WriteString("You are extracting a structured gift-wrap product record from Amazon product page data.\n\n")
	b.WriteString("## Extracted page data\n\n")
	writeExtracted(&b, extracted)

	b.WriteString("\n## Output schema (use these exact keys)\n\n")
	b.WriteString(schemaSkeleton(asin, url))

	b.WriteString("\n\n## Extraction rules\n\n")
	b.WriteString(promptRules)
	b.WriteString("\n")

	return b.String()
}

// writeExtracted renders the field-labeled section block, omitting absent
// fields and substituting the sentinel when nothing was extracted.
func writeExtracted(b *strings.Builder, extracted *domain.ExtractedText) {
	if extracted == nil || extracted.IsEmpty() {
		b.WriteString(noDataSentinel)
		b.WriteString("\n")
		return
	}

	if extracted.Title != "" {
		fmt.Fprintf(b, "Title: %s\n", extracted.Title)
	}
	if extracted.Price != "" {
		fmt.Fprintf(b, "Price: %s\n", extracted.Price)
	}
	if extracted.Description != "" {
		fmt.Fprintf(b, "Description:\n%s\n", extracted.Description)
	}
	if len(extracted.ProductDetails) > 0 {
		b.WriteString("Product details:\n")
		for _, field := range extracted.ProductDetails {
			fmt.Fprintf(b, "- %s: %s\n", field.Heading, field.Value)
		}
	}
	if extracted.Thumbnail != "" {
		fmt.Fprintf(b, "Thumbnail: %s\n", extracted.Thumbnail)
	}
}

// schemaSkeleton returns the literal JSON skeleton with the ASIN and URL
// filled in when known, or instructive placeholders when not.
func schemaSkeleton(asin, url string) string {
	asinValue := asinPlaceholder
	if asin != "" {
		asinValue = asin
	}
	urlValue := urlPlaceholder
	if url != "" {
		urlValue = url
	}

	return fmt.Sprintf(`{
  "asin": "%s",
  "type": "one of: wrapping_paper, ribbon, box, tag, bow, or null",
  "title": "string or null",
  "price": "number or null",
  "brand": "string or null",
  "description": "string or null",
  "size": "string or null",
  "quantity": "number or null",
  "dimensions": "WxLxH string or null",
  "rollLength": "number (feet) or null",
  "rollWidth": "number (inches) or null",
  "printNames": ["ordered design names, or null when none stated"],
  "rolls": [
    {
      "rollNumber": "1-based number",
      "onHand": "number",
      "maxArea": "number",
      "image": "string or null",
      "printName": "string or null",
      "hasReverseSide": "boolean",
      "pairedRollNumber": "number or null"
    }
  ],
  "thumbnail": "string or null",
  "images": ["image URLs, may be empty"],
  "url": "%s"
}`, asinValue, urlValue)
}
