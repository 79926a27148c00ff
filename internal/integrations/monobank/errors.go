package monobank

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда инвойс не найден у провайдера
	ErrInvoiceNotFound = errors.New("monobank client: invoice not found")

	// ErrJarNotFound возвращается, когда банка не найдена среди счетов клиента
	ErrJarNotFound = errors.New("monobank client: jar not found")

	// ErrUnauthorized возвращается при некорректном или отозванном токене
	ErrUnauthorized = errors.New("monobank client: unauthorized")

	// ErrProvider возвращается, когда провайдер ответил ошибкой
	// Текст ошибки провайдера (errText) включается в сообщение
	ErrProvider = errors.New("monobank client: provider error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("monobank client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("monobank client: invalid response")
)
