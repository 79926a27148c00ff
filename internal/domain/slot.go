package domain

import (
	"fmt"

	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// SlotWindow represents a bookable time window within one day
type SlotWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Window returns the window in "HH:MM-HH:MM" form
func (s SlotWindow) Window() string {
	return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
}
