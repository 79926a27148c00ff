package jar

import "errors"

var (
	// ErrJarNotFound возвращается, когда банка не найдена
	ErrJarNotFound = errors.New("jar.repository: jar not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("jar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("jar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("jar.repository: failed to scan row")
)
