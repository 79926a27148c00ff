package create_booking

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	createBooking "github.com/murlyka/CatCafe-BookingService/internal/usecase/create_booking"
	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// Стоимость и название услуги клиент не передает - они вычисляются на сервере
type CreateBookingRequest struct {
	ServiceID     int64   `json:"service_id"`
	Date          string  `json:"booking_date"` // "2025-10-15"
	StartTime     string  `json:"booking_time"` // "10:00"
	GuestsCount   int     `json:"guests_count"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Comment       *string `json:"comment,omitempty"`
}

// CreateBookingResponse HTTP response model
// InvoiceID и PageURL отсутствуют, если инвойс не был создан -
// бронирование при этом сохранено и ждёт оплаты
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	InvoiceID string `json:"invoiceId,omitempty"`
	PageURL   string `json:"pageUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Date:          bookingDate,
		StartTime:     startTime,
		GuestsCount:   r.GuestsCount,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Comment:       r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:   true,
		BookingID: resp.ID,
		Status:    resp.Status,
		InvoiceID: resp.InvoiceID,
		PageURL:   resp.PageURL,
	}
}
