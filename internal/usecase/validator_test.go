package usecase

import (
	"strings"
	"testing"

	"github.com/wraplens/backend/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func TestValidateRecord(t *testing.T) {
	t.Run("nil record has no violations", func(t *testing.T) {
		if violations := ValidateRecord(nil); violations != nil {
			t.Errorf("violations = %v, want nil", violations)
		}
	})

	t.Run("all-null record is valid", func(t *testing.T) {
		if violations := ValidateRecord(&domain.ProductRecord{}); len(violations) != 0 {
			t.Errorf("violations = %v, want none", violations)
		}
	})

	t.Run("negative price is exactly one violation", func(t *testing.T) {
		record := &domain.ProductRecord{Price: floatPtr(-5)}

		violations := ValidateRecord(record)
		if len(violations) != 1 {
			t.Fatalf("violations = %v, want exactly 1", violations)
		}
		if !strings.Contains(violations[0], "price") {
			t.Errorf("violation %q should name the price field", violations[0])
		}
	})

	t.Run("null price is zero violations", func(t *testing.T) {
		record := &domain.ProductRecord{Price: nil}

		if violations := ValidateRecord(record); len(violations) != 0 {
			t.Errorf("violations = %v, want none", violations)
		}
	})

	t.Run("asin shape", func(t *testing.T) {
		good := &domain.ProductRecord{ASIN: strPtr("B08XYZ1234")}
		if violations := ValidateRecord(good); len(violations) != 0 {
			t.Errorf("violations = %v, want none", violations)
		}

		bad := &domain.ProductRecord{ASIN: strPtr("short")}
		if violations := ValidateRecord(bad); len(violations) != 1 {
			t.Errorf("violations = %v, want exactly 1", violations)
		}
	})

	t.Run("type enumeration", func(t *testing.T) {
		for _, valid := range domain.ProductTypes {
			record := &domain.ProductRecord{Type: strPtr(valid)}
			if violations := ValidateRecord(record); len(violations) != 0 {
				t.Errorf("type %q: violations = %v, want none", valid, violations)
			}
		}

		record := &domain.ProductRecord{Type: strPtr("gift_bag")}
		if violations := ValidateRecord(record); len(violations) != 1 {
			t.Errorf("violations = %v, want exactly 1", violations)
		}
	})

	t.Run("roll dimension ranges", func(t *testing.T) {
		record := &domain.ProductRecord{
			RollWidth:  floatPtr(150),
			RollLength: floatPtr(8.8),
		}

		violations := ValidateRecord(record)
		if len(violations) != 1 {
			t.Fatalf("violations = %v, want exactly 1", violations)
		}
		if !strings.Contains(violations[0], "rollWidth") {
			t.Errorf("violation %q should name rollWidth", violations[0])
		}
	})

	t.Run("violations accumulate per field", func(t *testing.T) {
		record := &domain.ProductRecord{
			Price:    floatPtr(-5),
			Quantity: floatPtr(200000),
			ASIN:     strPtr("nope"),
		}

		if violations := ValidateRecord(record); len(violations) != 3 {
			t.Errorf("violations = %v, want 3", violations)
		}
	})

	t.Run("does not mutate the record", func(t *testing.T) {
		record := &domain.ProductRecord{Price: floatPtr(-5)}
		before := *record

		ValidateRecord(record)

		if *record.Price != *before.Price {
			t.Error("record was mutated")
		}
	})
}
