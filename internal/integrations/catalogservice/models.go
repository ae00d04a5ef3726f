package catalogservice

// Therapist модель мастера из CatalogService
type Therapist struct {
	ID       int64  `json:"id"`
	SalonID  int64  `json:"salon_id"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

// Service модель услуги из CatalogService
type Service struct {
	ID              int64    `json:"id"`
	SalonID         int64    `json:"salon_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	IsActive        bool     `json:"is_active"`
}

// Salon модель салона из CatalogService
type Salon struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	TimeZone   string  `json:"time_zone"`
	ManagerIDs []int64 `json:"manager_ids"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
