package get_available_slots

import (
	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	getSlots "github.com/murlyka/CatCafe-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
// Каждое окно в формате "HH:MM-HH:MM"
type SlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID int64    `json:"serviceId"`
	Slots     []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, window := range resp.Slots {
		slots[i] = window.Window()
	}

	return &SlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
