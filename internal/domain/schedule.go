package domain

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// DaySchedule represents working hours for one weekday
// Weekday uses time.Weekday numbering (Sunday = 0)
type DaySchedule struct {
	Weekday    int
	IsOpen     bool
	OpenTime   *types.TimeString
	CloseTime  *types.TimeString
	BreakStart *types.TimeString // Перерыв (опционально, оба поля либо заданы, либо нет)
	BreakEnd   *types.TimeString
	UpdatedAt  time.Time
}

// HasBreak returns true if a break is configured for the day
func (d *DaySchedule) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}

// IsWorkable returns true if slots can be generated for the day
func (d *DaySchedule) IsWorkable() bool {
	return d.IsOpen && d.OpenTime != nil && d.CloseTime != nil
}
