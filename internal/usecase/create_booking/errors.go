package create_booking

import "errors"

// Ошибки usecase создания бронирования
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrTherapistNotFound возвращается, если мастер не найден или неактивен
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrServiceNotFound возвращается, если услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotTaken возвращается, если слот недоступен: занят, вне рабочих
	// часов, в прошлом или раньше минимального времени до записи
	ErrSlotTaken = errors.New("slot is not available")

	// ErrDateTooFarInFuture возвращается, если дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInternal возвращается при внутренних ошибках (БД, интеграции)
	ErrInternal = errors.New("internal error")
)
