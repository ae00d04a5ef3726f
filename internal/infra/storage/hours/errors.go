package hours

import "errors"

var (
	// ErrHoursNotConfigured возвращается, когда для мастера нет расписания
	// на указанный день недели. Потребители трактуют это как закрытый день,
	// а не как сбой.
	ErrHoursNotConfigured = errors.New("hours.repository: operating hours not configured")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("hours.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hours.repository: failed to scan row")
)
