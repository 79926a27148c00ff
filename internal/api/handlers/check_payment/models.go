package check_payment

// CheckPaymentRequest HTTP request model
type CheckPaymentRequest struct {
	InvoiceID string `json:"invoiceId"`
}

// CheckPaymentResponse HTTP response model
type CheckPaymentResponse struct {
	InvoiceID string `json:"invoiceId"`
	Status    string `json:"status"`
	BookingID string `json:"bookingId,omitempty"`
	Updated   bool   `json:"updated"`
	Message   string `json:"message"`
}
