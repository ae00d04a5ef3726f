package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM (24 часа, локальное время салона)
const TimeFormat = "15:04"

const minutesPerDay = 24 * 60

// endOfDay специальное значение для конца интервала, упирающегося в полночь
const endOfDay = TimeString("24:00")

// TimeString время в формате "HH:MM" без секунд и таймзоны.
// Сравнивается по количеству минут с начала дня.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала дня
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("minutes out of day range: %d", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// MinutesSinceMidnight возвращает количество минут с начала дня.
// Специальное значение "24:00" (конец дня) дает 1440 минут.
func (t TimeString) MinutesSinceMidnight() (int, error) {
	if t == endOfDay {
		return minutesPerDay, nil
	}
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Возвращает ошибку, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.MinutesSinceMidnight()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("time out of day range: %s + %d minutes", t, minutes)
	}

	if total == minutesPerDay {
		return endOfDay, nil
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.compare(other) < 0
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.compare(other) > 0
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return t.compare(other) == 0
}

// compare сравнивает значения по минутам с начала дня.
// Значение "24:00" (конец дня) считается позже любого времени суток.
// Некорректные значения сравниваются лексикографически (не должно происходить
// после Validate).
func (t TimeString) compare(other TimeString) int {
	tm, errT := t.MinutesSinceMidnight()
	om, errO := other.MinutesSinceMidnight()
	if errT != nil || errO != nil {
		switch {
		case t < other:
			return -1
		case t > other:
			return 1
		default:
			return 0
		}
	}

	switch {
	case tm < om:
		return -1
	case tm > om:
		return 1
	default:
		return 0
	}
}

// MarshalJSON сериализует время в JSON строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует время из JSON строки с валидацией формата
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}

	*t = ts
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres TIME приходит как строка "HH:MM:SS", time.Time или []byte.
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

func (t *TimeString) scanString(s string) error {
	// Сначала пробуем формат с секундами (Postgres TIME), потом без
	if parsed, err := time.Parse("15:04:05", s); err == nil {
		*t = NewTimeString(parsed)
		return nil
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into TimeString: %v", s, err)
	}

	*t = ts
	return nil
}
