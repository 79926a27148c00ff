package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/ptr"
	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

func openDay(open, close string) *domain.DaySchedule {
	return &domain.DaySchedule{
		Weekday:   2,
		IsOpen:    true,
		OpenTime:  ptr.Ptr(types.TimeString(open)),
		CloseTime: ptr.Ptr(types.TimeString(close)),
	}
}

func windowStrings(windows []domain.SlotWindow) []string {
	result := make([]string, len(windows))
	for i, w := range windows {
		result[i] = w.Window()
	}
	return result
}

func TestGenerateSlotWindows_HourlyGrid(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	windows, err := generateSlotWindows(openDay("10:00", "14:00"), 60, 60, date, now, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:00-11:00",
		"11:00-12:00",
		"12:00-13:00",
		"13:00-14:00",
	}, windowStrings(windows))
}

func TestGenerateSlotWindows_WindowMustFitBeforeClosing(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	// Услуга 90 минут: последнее окно должно целиком уместиться до 14:00
	windows, err := generateSlotWindows(openDay("10:00", "14:00"), 90, 60, date, now, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:00-11:30",
		"11:00-12:30",
		"12:00-13:30",
	}, windowStrings(windows))
}

func TestGenerateSlotWindows_ClosedDay(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	closed := &domain.DaySchedule{Weekday: 1, IsOpen: false}

	windows, err := generateSlotWindows(closed, 60, 60, date, now, 0)
	require.NoError(t, err)
	assert.Empty(t, windows)

	// Открытый день без времени открытия тоже считается закрытым
	broken := &domain.DaySchedule{Weekday: 1, IsOpen: true}
	windows, err = generateSlotWindows(broken, 60, 60, date, now, 0)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestGenerateSlotWindows_SkipsBreak(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	day := openDay("10:00", "17:00")
	day.BreakStart = ptr.Ptr(types.TimeString("13:00"))
	day.BreakEnd = ptr.Ptr(types.TimeString("14:00"))

	windows, err := generateSlotWindows(day, 60, 60, date, now, 0)
	require.NoError(t, err)

	// Окно 13:00-14:00 выпадает; граничащие с перерывом окна остаются
	assert.Equal(t, []string{
		"10:00-11:00",
		"11:00-12:00",
		"12:00-13:00",
		"14:00-15:00",
		"15:00-16:00",
		"16:00-17:00",
	}, windowStrings(windows))
}

func TestGenerateSlotWindows_BreakOverlapWithLongService(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	day := openDay("10:00", "17:00")
	day.BreakStart = ptr.Ptr(types.TimeString("13:00"))
	day.BreakEnd = ptr.Ptr(types.TimeString("14:00"))

	// Услуга 120 минут: окна 12:00-14:00 и 13:00-15:00 пересекают перерыв
	windows, err := generateSlotWindows(day, 120, 60, date, now, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:00-12:00",
		"11:00-13:00",
		"14:00-16:00",
		"15:00-17:00",
	}, windowStrings(windows))
}

func TestGenerateSlotWindows_PastDate(t *testing.T) {
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	windows, err := generateSlotWindows(openDay("10:00", "20:00"), 60, 60, date, now, 0)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestGenerateSlotWindows_TodayFiltersByNotice(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)

	// Сейчас 11:30, минимальное уведомление 60 минут: первое доступное окно 13:00
	windows, err := generateSlotWindows(openDay("10:00", "16:00"), 60, 60, date, now, 60)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"13:00-14:00",
		"14:00-15:00",
		"15:00-16:00",
	}, windowStrings(windows))
}

func TestGenerateSlotWindows_CustomStep(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	windows, err := generateSlotWindows(openDay("10:00", "12:00"), 60, 30, date, now, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:00-11:00",
		"10:30-11:30",
		"11:00-12:00",
	}, windowStrings(windows))
}
