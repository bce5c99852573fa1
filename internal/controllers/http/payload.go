package http

import (
	"booking-service/internal/domain"
	"booking-service/internal/validation"
)

// The legacy schema stores every passenger and card field as text, so the
// validated payload is coerced field by field.

func orderFromPayload(payload map[string]any) *domain.Order {
	return &domain.Order{
		FlightID:       validation.ToUint64(payload["flight_id"]),
		Firstname:      validation.ToString(payload["firstname"]),
		Lastname:       validation.ToString(payload["lastname"]),
		Surname:        validation.ToString(payload["surname"]),
		Email:          validation.ToString(payload["email"]),
		Phone:          validation.ToString(payload["phone"]),
		Gender:         validation.ToString(payload["gender"]),
		DateOfBirth:    validation.ToString(payload["date_of_birth"]),
		Document:       validation.ToString(payload["document"]),
		DocumentNumber: validation.ToString(payload["document_number"]),
		Nationality:    validation.ToString(payload["nationality"]),
		Date:           validation.ToString(payload["date"]),
		PaymentMethod:  validation.ToString(payload["payment_method"]),
	}
}

func paymentFromPayload(payload map[string]any) *domain.Payment {
	return &domain.Payment{
		OrderID: validation.ToUint64(payload["order_id"]),
		Pan:     validation.ToString(payload["pan"]),
		Expiry:  validation.ToString(payload["expiry"]),
		Cvc:     validation.ToString(payload["cvc"]),
	}
}
