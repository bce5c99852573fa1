package validation

// Per-endpoint rule sets for the booking workflow.

var OrderRules = []Field{
	{Name: "flight_id", Required: true, Kind: Integer},
	{Name: "firstname", Required: true, Kind: String},
	{Name: "lastname", Required: true, Kind: String},
	{Name: "surname", Required: true, Kind: String},
	{Name: "email", Required: true, Kind: Email},
	{Name: "phone", Required: true, Kind: String},
	{Name: "gender", Required: true, Kind: String},
	{Name: "date_of_birth", Required: true, Kind: Date},
	{Name: "document", Required: true, Kind: String},
	{Name: "document_number", Required: true, Kind: String},
	{Name: "nationality", Required: true, Kind: String},
	{Name: "date", Required: true, Kind: Date},
	{Name: "payment_method", Required: true, Kind: String},
}

var PaymentRules = []Field{
	{Name: "order_id", Required: true, Kind: Integer},
	{Name: "pan", Required: true, Kind: String},
	{Name: "expiry", Required: true, Kind: String},
	{Name: "cvc", Required: true, Kind: String},
}

var SmsCodeRules = []Field{
	{Name: "order_id", Required: true, Kind: Integer},
	{Name: "sms_code", Required: true, Kind: String},
}
