package http

// OrderSummary is the projection returned by GET /orders/:id: just enough
// for the payment page to show who is paying and how much.
type OrderSummary struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Price string `json:"price"`
}
