package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wraplens/backend/internal/domain"
)

// recordSchema holds the advisory consistency checks: ASIN shape, the type
// enumeration, and the numeric ranges. Fields outside these checks are
// intentionally unconstrained.
const recordSchema = `{
  "type": "object",
  "properties": {
    "asin": {
      "type": ["string", "null"],
      "pattern": "^[A-Za-z0-9]{10}$"
    },
    "type": {
      "enum": ["wrapping_paper", "ribbon", "box", "tag", "bow", null]
    },
    "price": {
      "type": ["number", "null"],
      "minimum": 0,
      "maximum": 100000
    },
    "quantity": {
      "type": ["number", "null"],
      "minimum": 0,
      "maximum": 100000
    },
    "rollWidth": {
      "type": ["number", "null"],
      "minimum": 0,
      "maximum": 100
    },
    "rollLength": {
      "type": ["number", "null"],
      "minimum": 0,
      "maximum": 100
    }
  }
}`

var compiledRecordSchema = jsonschema.MustCompileString("product_record.json", recordSchema)

// ValidateRecord runs the post-hoc consistency checks and returns one string
// per violation. Violations are advisory only: they are logged by the caller,
// never enforced. The record is not mutated and the function never fails; a
// record that cannot even be serialized reports that as its one violation.
func ValidateRecord(record *domain.ProductRecord) []string {
	if record == nil {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		return []string{fmt.Sprintf("record not serializable: %v", err)}
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return []string{fmt.Sprintf("record not serializable: %v", err)}
	}

	err = compiledRecordSchema.Validate(value)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var violations []string
	collectLeafCauses(ve, &violations)
	return violations
}

// collectLeafCauses flattens a validation error tree into one message per
// leaf cause.
func collectLeafCauses(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			field = "record"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", field, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectLeafCauses(cause, out)
	}
}
