package http

// CreateOrderRequest is the request body for placing an order. Unit prices
// are supplied in integer minor units and become the immutable price
// snapshot stored on each line.
type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name"`
	CustomerEmail string                   `json:"customer_email,omitempty"`
	CustomerPhone string                   `json:"customer_phone,omitempty"`
	TableNumber   string                   `json:"table_number,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	Items         []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested line.
type CreateOrderItemRequest struct {
	ItemID         string `json:"item_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Notes          string `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest is the request body for a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the full order representation returned by the single
// order endpoint and by order creation.
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	CustomerPhone   string              `json:"customer_phone,omitempty"`
	TableNumber     string              `json:"table_number,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Status          string              `json:"status"`
	TotalPriceCents int64               `json:"total_price_cents"`
	Lines           []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is one line of a full order representation.
type OrderLineResponse struct {
	ItemID         string `json:"item_id"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
	Notes          string `json:"notes,omitempty"`
}

// OrderSummaryResponse is one entry of the order list endpoint.
type OrderSummaryResponse struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	TableNumber     string `json:"table_number,omitempty"`
	Status          string `json:"status"`
	TotalPriceCents int64  `json:"total_price_cents"`
	LineCount       int    `json:"line_count"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
