package validation

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Kind is the per-field type constraint. Every check is evaluated
// independently; there are no cross-field rules.
type Kind int

const (
	String Kind = iota
	Integer
	Email
	Date
)

type Field struct {
	Name     string
	Required bool
	Kind     Kind
}

// Errors maps a field name to its human-readable error messages.
// An empty map means the payload passed.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var validate = validator.New()

var dateLayouts = []string{"2006-01-02", "02.01.2006"}

// Validate checks payload against the rule set, field by field. It fails
// closed: a missing required field or a type mismatch blocks processing.
func Validate(payload map[string]any, fields []Field) Errors {
	errs := Errors{}

	for _, f := range fields {
		value, present := payload[f.Name]
		if !present || value == nil || value == "" {
			if f.Required {
				errs.Add(f.Name, fmt.Sprintf("The %s field is required.", f.Name))
			}
			continue
		}

		switch f.Kind {
		case Integer:
			if !isInteger(value) {
				errs.Add(f.Name, fmt.Sprintf("The %s must be an integer.", f.Name))
			}
		case Email:
			s, ok := value.(string)
			if !ok || validate.Var(s, "email") != nil {
				errs.Add(f.Name, fmt.Sprintf("The %s format is invalid.", f.Name))
			}
		case Date:
			s, ok := value.(string)
			if !ok || !isDate(s) {
				errs.Add(f.Name, fmt.Sprintf("The %s is not a valid date.", f.Name))
			}
		case String:
			if _, ok := value.(string); !ok {
				errs.Add(f.Name, fmt.Sprintf("The %s must be a string.", f.Name))
			}
		}
	}

	return errs
}

// isInteger accepts JSON numbers without a fractional part and numeric
// strings, matching the loose typing of the inbound payloads.
func isInteger(value any) bool {
	switch v := value.(type) {
	case float64:
		return v == math.Trunc(v)
	case int, int64, uint64:
		return true
	case string:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	default:
		return false
	}
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// ToUint64 coerces a validated integer field to its numeric value.
func ToUint64(value any) uint64 {
	switch v := value.(type) {
	case float64:
		return uint64(v)
	case int:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint64:
		return v
	case string:
		n, _ := strconv.ParseUint(v, 10, 64)
		return n
	default:
		return 0
	}
}

// ToString coerces any validated field to its text form, the shape every
// order/payment column is stored in.
func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
