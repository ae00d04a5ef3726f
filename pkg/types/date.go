package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// CalendarDate календарная дата (год, месяц, день) в локальном календаре салона.
// Не является моментом времени: конструируется только из явных (Y, M, D),
// никогда из усечения UTC timestamp - это защита от сдвига даты на день
// при работе клиентов из разных таймзон.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate создает дату из явных года, месяца и дня
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// ParseCalendarDate парсит дату из строки "YYYY-MM-DD"
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date format: %v", err)
	}
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}, nil
}

// DateOf возвращает календарную дату момента t.
// t обязан быть в локальной таймзоне салона - дата берётся из его полей напрямую.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// IsZero возвращает true, если дата не задана
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String возвращает дату в формате "YYYY-MM-DD"
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday возвращает день недели для даты
func (d CalendarDate) Weekday() time.Weekday {
	return d.midnightUTC().Weekday()
}

// AddDays возвращает дату, сдвинутую на days дней (days может быть отрицательным)
func (d CalendarDate) AddDays(days int) CalendarDate {
	return DateOf(d.midnightUTC().AddDate(0, 0, days))
}

// Before возвращает true, если d строго раньше other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.ordinal() < other.ordinal()
}

// After возвращает true, если d строго позже other
func (d CalendarDate) After(other CalendarDate) bool {
	return d.ordinal() > other.ordinal()
}

// Equal возвращает true, если даты совпадают
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Time возвращает полночь этой даты в указанной таймзоне.
// Используется только на границе с хранилищем (колонка DATE).
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// midnightUTC служебное представление для календарной арифметики.
// Таймзона здесь не имеет значения: и вход, и выход - только (Y, M, D).
func (d CalendarDate) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) ordinal() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// MarshalJSON сериализует дату в JSON строку "YYYY-MM-DD"
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON десериализует дату из JSON строки с валидацией формата
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку DATE
func (d CalendarDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner для чтения из колонки DATE
func (d *CalendarDate) Scan(value interface{}) error {
	if value == nil {
		*d = CalendarDate{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", value)
	}
}
