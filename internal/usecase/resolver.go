package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wraplens/backend/internal/domain"
)

// ResolveCompletion turns raw completion text into a normalized
// ProductRecord. It tolerates schema-adjacent responses: every field is
// coerced independently and shape mismatches default rather than fail. The
// only fatal outcomes are a completion with no JSON object at all
// (domain.ErrNoJSONFound) and an object span that is not valid JSON
// (domain.ErrMalformedJSON, carrying the parser diagnostic). Neither is
// retried here; retry policy belongs to the caller.
func ResolveCompletion(completionText, fallbackASIN, fallbackURL string) (*domain.ProductRecord, error) {
	text := stripCodeFence(strings.TrimSpace(completionText))

	span, ok := jsonObjectSpan(text)
	if !ok {
		return nil, domain.ErrNoJSONFound
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedJSON, err)
	}

	record := &domain.ProductRecord{
		ASIN:        asString(raw["asin"]),
		Type:        asString(raw["type"]),
		Title:       asString(raw["title"]),
		Price:       asNumber(raw["price"]),
		Brand:       asString(raw["brand"]),
		Description: asString(raw["description"]),
		Size:        asString(raw["size"]),
		Quantity:    asNumber(raw["quantity"]),
		Dimensions:  asString(raw["dimensions"]),
		RollLength:  asNumber(raw["rollLength"]),
		RollWidth:   asNumber(raw["rollWidth"]),
		Thumbnail:   asString(raw["thumbnail"]),
		URL:         asString(raw["url"]),
	}

	// Back-fill identity from the caller when the model dropped it.
	if record.ASIN == nil && fallbackASIN != "" {
		record.ASIN = &fallbackASIN
	}
	if record.URL == nil {
		if fallbackURL != "" {
			record.URL = &fallbackURL
		} else if record.ASIN != nil {
			url := CanonicalProductURL(*record.ASIN)
			record.URL = &url
		}
	}

	record.Images = asStringSlice(raw["images"])
	record.PrintNames = resolvePrintNames(raw, stringOrEmpty(record.Description))
	record.Rolls = resolveRolls(raw)

	backfillRolls(record)

	return record, nil
}

// CanonicalProductURL synthesizes the canonical product page URL for an ASIN.
func CanonicalProductURL(asin string) string {
	return "https://www.amazon.com/dp/" + asin
}

// stripCodeFence removes one surrounding triple-backtick fence, with or
// without a language tag.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// jsonObjectSpan returns the greedy first-"{" to last-"}" span.
func jsonObjectSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// resolvePrintNames applies the three-way rule: a real sequence is kept
// as-is, an explicit null stays null ("no designs" as an affirmative fact),
// and anything else normalizes to an empty sequence. A bare string is the
// one drift common enough to repair: it gets segmented instead of dropped.
func resolvePrintNames(raw map[string]interface{}, description string) []string {
	value, present := raw["printNames"]
	if present && value == nil {
		return nil
	}

	switch v := value.(type) {
	case []interface{}:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return names
	case string:
		if names := SegmentPrintNames(v, description); names != nil {
			return names
		}
		return []string{}
	default:
		return []string{}
	}
}

// resolveRolls applies the same three-way rule to the rolls sequence, then
// coerces each element independently.
func resolveRolls(raw map[string]interface{}) []domain.Roll {
	value, present := raw["rolls"]
	if present && value == nil {
		return nil
	}

	items, ok := value.([]interface{})
	if !ok {
		return []domain.Roll{}
	}

	rolls := make([]domain.Roll, 0, len(items))
	for i, item := range items {
		rolls = append(rolls, coerceRoll(item, i))
	}
	return rolls
}

// coerceRoll normalizes one roll element. Tolerates anything: a non-object
// element still yields a positioned roll with defaults.
func coerceRoll(item interface{}, index int) domain.Roll {
	roll := domain.Roll{RollNumber: index + 1}

	m, ok := item.(map[string]interface{})
	if !ok {
		return roll
	}

	if n := asNumber(m["rollNumber"]); n != nil {
		roll.RollNumber = int(*n)
	}
	if n := asNumber(m["onHand"]); n != nil {
		roll.OnHand = *n
	}
	if n := asNumber(m["maxArea"]); n != nil {
		roll.MaxArea = *n
	} else {
		roll.MaxArea = roll.OnHand
	}
	roll.Image = asString(m["image"])
	roll.PrintName = asString(m["printName"])
	if b, ok := m["hasReverseSide"].(bool); ok {
		roll.HasReverseSide = b
	}
	roll.PairedRollNumber = asNumber(m["pairedRollNumber"])

	return roll
}

// backfillRolls expands rolls locally when the completion announced a
// wrapping-paper pack with a quantity but omitted the rolls themselves.
// An explicit null rolls value is respected and never expanded.
func backfillRolls(record *domain.ProductRecord) {
	if record.Rolls == nil || len(record.Rolls) > 0 {
		return
	}
	if record.Type == nil || *record.Type != domain.TypeWrappingPaper {
		return
	}
	if record.Quantity == nil {
		return
	}
	quantity := int(*record.Quantity)
	if quantity <= 0 {
		return
	}

	perRoll := 0.0
	if record.RollWidth != nil && record.RollLength != nil {
		perRoll = *record.RollWidth * *record.RollLength
	}

	hasReverse := reversibleRegex.MatchString(stringOrEmpty(record.Description))
	record.Rolls = ExpandRolls(quantity, perRoll, record.PrintNames, hasReverse)
}

func asString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func asNumber(v interface{}) *float64 {
	if n, ok := v.(float64); ok {
		return &n
	}
	return nil
}

func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
