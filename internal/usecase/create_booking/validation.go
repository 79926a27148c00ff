package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.GuestsCount < domain.MinGuestsPerBooking || req.GuestsCount > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: guestsCount must be between %d and %d",
			ErrInvalidInput, domain.MinGuestsPerBooking, domain.MaxGuestsPerBooking)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is too long (max %d characters)", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// validateWindow проверяет, что окно визита умещается в рабочие часы
// и не пересекается с перерывом
func validateWindow(day *domain.DaySchedule, startTime types.TimeString, durationMinutes int) error {
	if day == nil || !day.IsWorkable() {
		return ErrCafeClosed
	}

	openTime := *day.OpenTime
	closeTime := *day.CloseTime

	if startTime.IsBefore(openTime) {
		return fmt.Errorf("%w: starts before opening", ErrInvalidTimeSlot)
	}

	windowEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate window end: %v", ErrInternal, err)
	}

	if windowEnd.IsAfter(closeTime) {
		return fmt.Errorf("%w: ends after closing", ErrInvalidTimeSlot)
	}

	// Пересечение с перерывом (граничные случаи пересечением не считаются)
	if day.HasBreak() {
		breakStart := *day.BreakStart
		breakEnd := *day.BreakEnd
		if startTime.IsBefore(breakEnd) && windowEnd.IsAfter(breakStart) {
			return fmt.Errorf("%w: overlaps the break", ErrInvalidTimeSlot)
		}
	}

	return nil
}

// validateBookingTime проверяет, что бронирование на сегодня не нарушает minNoticeMinutes
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	// Если дата визита не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	// Вычисляем минимальное допустимое время
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	// Проверяем, что время начала не раньше минимального
	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// countOverlappingGuests подсчитывает количество гостей в активных бронированиях,
// пересекающихся с указанным окном визита
func countOverlappingGuests(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) (int, error) {
	windowEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}

	guests := 0

	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		// Проверяем пересечение (строгие неравенства, граничные случаи не считаются)
		if bookingStart.IsBefore(windowEnd) && bookingEnd.IsAfter(startTime) {
			guests += booking.GuestsCount
		}
	}

	return guests, nil
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
