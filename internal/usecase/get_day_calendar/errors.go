package get_day_calendar

import "errors"

// Ошибки usecase календаря мастера на день
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied возвращается, если пользователь не менеджер салона
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSalonNotFound возвращается, если салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrTherapistNotFound возвращается, если мастер не найден или
	// принадлежит другому салону
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrInternal возвращается при внутренних ошибках (БД, интеграции)
	ErrInternal = errors.New("internal error")
)
