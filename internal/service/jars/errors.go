package jars

import "errors"

var (
	// ErrJarNotFound возвращается, когда банка не найдена
	ErrJarNotFound = errors.New("jar not found")

	// ErrProviderDisabled возвращается, когда платёжный провайдер не сконфигурирован
	ErrProviderDisabled = errors.New("payment provider is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
