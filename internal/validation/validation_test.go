package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOrderPayload() map[string]any {
	return map[string]any{
		"flight_id":       float64(1),
		"firstname":       "Anna",
		"lastname":        "Smith",
		"surname":         "Maria",
		"email":           "anna@example.com",
		"phone":           "+4915112345678",
		"gender":          "female",
		"date_of_birth":   "1990-04-12",
		"document":        "passport",
		"document_number": "C01X00T47",
		"nationality":     "DE",
		"date":            "2024-08-01",
		"payment_method":  "card",
	}
}

func TestValidate_OrderRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		field   string
		message string
	}{
		{name: "valid payload passes", mutate: func(p map[string]any) {}},
		{
			name:    "missing required field",
			mutate:  func(p map[string]any) { delete(p, "firstname") },
			field:   "firstname",
			message: "The firstname field is required.",
		},
		{
			name:    "empty string counts as missing",
			mutate:  func(p map[string]any) { p["phone"] = "" },
			field:   "phone",
			message: "The phone field is required.",
		},
		{
			name:    "invalid email",
			mutate:  func(p map[string]any) { p["email"] = "not-an-email" },
			field:   "email",
			message: "The email format is invalid.",
		},
		{
			name:    "non-integer flight id",
			mutate:  func(p map[string]any) { p["flight_id"] = "abc" },
			field:   "flight_id",
			message: "The flight_id must be an integer.",
		},
		{
			name:    "fractional flight id",
			mutate:  func(p map[string]any) { p["flight_id"] = 1.5 },
			field:   "flight_id",
			message: "The flight_id must be an integer.",
		},
		{
			name:    "invalid date",
			mutate:  func(p map[string]any) { p["date_of_birth"] = "April 12" },
			field:   "date_of_birth",
			message: "The date_of_birth is not a valid date.",
		},
		{
			name:    "non-string passenger field",
			mutate:  func(p map[string]any) { p["nationality"] = float64(7) },
			field:   "nationality",
			message: "The nationality must be a string.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validOrderPayload()
			tt.mutate(payload)

			errs := Validate(payload, OrderRules)

			if tt.field == "" {
				assert.Empty(t, errs)
			} else {
				assert.Len(t, errs, 1)
				assert.Contains(t, errs[tt.field], tt.message)
			}
		})
	}
}

func TestValidate_AcceptsNumericStringsAndDottedDates(t *testing.T) {
	payload := validOrderPayload()
	payload["flight_id"] = "12"
	payload["date_of_birth"] = "12.04.1990"

	errs := Validate(payload, OrderRules)
	assert.Empty(t, errs)
}

func TestValidate_PaymentRules(t *testing.T) {
	payload := map[string]any{
		"order_id": float64(42),
		"pan":      "4111111111111111",
		"expiry":   "12/27",
		"cvc":      "123",
	}
	assert.Empty(t, Validate(payload, PaymentRules))

	delete(payload, "cvc")
	payload["order_id"] = "x"

	errs := Validate(payload, PaymentRules)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs["cvc"], "The cvc field is required.")
	assert.Contains(t, errs["order_id"], "The order_id must be an integer.")
}

func TestValidate_SmsCodeRules(t *testing.T) {
	errs := Validate(map[string]any{"order_id": float64(1), "sms_code": "0954"}, SmsCodeRules)
	assert.Empty(t, errs)

	errs = Validate(map[string]any{}, SmsCodeRules)
	assert.Len(t, errs, 2)
}

func TestToUint64(t *testing.T) {
	assert.Equal(t, uint64(42), ToUint64(float64(42)))
	assert.Equal(t, uint64(42), ToUint64("42"))
	assert.Equal(t, uint64(0), ToUint64(nil))
	assert.Equal(t, uint64(0), ToUint64("abc"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "42", ToString(float64(42)))
	assert.Equal(t, "4.5", ToString(4.5))
	assert.Equal(t, "", ToString(nil))
}
