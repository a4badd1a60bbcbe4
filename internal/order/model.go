package order

import "time"

// GenerateRequest is the wire payload of POST /api/generate-order.
type GenerateRequest struct {
	ListMenu      string `json:"listMenu"`
	CurrentOrders string `json:"currentOrders"`
	Mode          Mode   `json:"mode"`
}

// GenerateResponse carries either the generated message or an error reason.
type GenerateResponse struct {
	GeneratedMessage string `json:"generatedMessage,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Record is one successful generation, kept for the recent-orders view.
type Record struct {
	ID               string    `json:"id"`
	Mode             Mode      `json:"mode"`
	ListMenu         string    `json:"listMenu"`
	CurrentOrders    string    `json:"currentOrders"`
	GeneratedMessage string    `json:"generatedMessage"`
	CreatedAt        time.Time `json:"createdAt"`
}
