package get_available_slots

import "errors"

// Ошибки usecase получения доступных слотов
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrTherapistNotFound возвращается, если мастер не найден или неактивен
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrServiceNotFound возвращается, если услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidServiceDuration возвращается, если длительность услуги вне допустимых границ
	ErrInvalidServiceDuration = errors.New("invalid service duration")

	// ErrDateTooFarInFuture возвращается, если дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInternal возвращается при внутренних ошибках (БД, интеграции)
	ErrInternal = errors.New("internal error")
)
