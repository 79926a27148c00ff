package get_available_slots

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// generateSlotWindows строит сетку окон визита на день
// Окна генерируются от времени открытия с фиксированным шагом stepMinutes,
// каждое окно длится durationMinutes; окно попадает в выдачу, только если
// целиком умещается до закрытия и не пересекается с перерывом
func generateSlotWindows(
	day *domain.DaySchedule,
	durationMinutes int,
	stepMinutes int,
	requestDate time.Time,
	now time.Time,
	minNoticeMinutes int,
) ([]domain.SlotWindow, error) {
	// Дата в прошлом - окон нет
	if isDateInPast(requestDate, now) {
		return []domain.SlotWindow{}, nil
	}

	// Кафе закрыто в этот день или расписание не задано
	if day == nil || !day.IsWorkable() {
		return []domain.SlotWindow{}, nil
	}

	openTime := *day.OpenTime
	closeTime := *day.CloseTime

	// Шаг 1: Генерируем все окна от открытия до закрытия с фиксированным шагом
	allWindows := make([]domain.SlotWindow, 0)
	currentStart := openTime

	for currentStart.IsBefore(closeTime) {
		windowEnd, err := currentStart.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		// Окно должно целиком умещаться до закрытия
		if windowEnd.IsAfter(closeTime) {
			break
		}

		// Пропускаем окна, пересекающиеся с перерывом
		if !overlapsBreak(day, currentStart, windowEnd) {
			allWindows = append(allWindows, domain.SlotWindow{
				StartTime: currentStart,
				EndTime:   windowEnd,
			})
		}

		currentStart, err = currentStart.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
	}

	// Шаг 2: Если дата НЕ сегодня - возвращаем все окна
	if !isSameDay(requestDate, now) {
		return allWindows, nil
	}

	// Шаг 3: На сегодня оставляем только окна, начинающиеся не раньше now + minNotice
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		return nil, err
	}

	availableWindows := make([]domain.SlotWindow, 0)
	for _, window := range allWindows {
		if !window.StartTime.IsBefore(minAllowedTime) {
			availableWindows = append(availableWindows, window)
		}
	}

	return availableWindows, nil
}

// overlapsBreak проверяет, пересекается ли окно с перерывом
// Граничные случаи (окно заканчивается ровно в начале перерыва
// или начинается ровно в его конце) пересечением НЕ считаются
func overlapsBreak(day *domain.DaySchedule, windowStart, windowEnd types.TimeString) bool {
	if !day.HasBreak() {
		return false
	}

	breakStart := *day.BreakStart
	breakEnd := *day.BreakEnd

	return windowStart.IsBefore(breakEnd) && windowEnd.IsAfter(breakStart)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
