package create_invoice

// CreateInvoiceRequest HTTP request model
// Amount в основных единицах валюты; 0 - взять стоимость бронирования
type CreateInvoiceRequest struct {
	Amount      float64 `json:"amount"`
	BookingID   string  `json:"bookingId"`
	Description string  `json:"description,omitempty"`
}

// CreateInvoiceResponse HTTP response model
type CreateInvoiceResponse struct {
	InvoiceID string `json:"invoiceId"`
	PageURL   string `json:"pageUrl"`
}
