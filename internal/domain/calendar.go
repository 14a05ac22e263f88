package domain

import "time"

// CalendarWeek конкретные даты текущей рабочей недели,
// индексы совпадают с порядком Weekdays() (понедельник = 0)
// Не персистится - пересчитывается от текущего момента
type CalendarWeek []time.Time

// CurrentWeek возвращает даты рабочей недели, содержащей now
// Понедельник вычисляется как дата now минус (номер дня недели - 1),
// где воскресенье = 0: воскресное now дает понедельник следующей недели,
// то есть воскресенье показывает неделю, которая вот-вот начнется
func CurrentWeek(now time.Time) CalendarWeek {
	today := DateOnly(now)
	monday := today.AddDate(0, 0, -(int(now.Weekday()) - 1))

	week := make(CalendarWeek, len(weekdays))
	for i := range weekdays {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// DateOf возвращает дату указанного дня недели
func (w CalendarWeek) DateOf(day Weekday) time.Time {
	return w[day.Index()]
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
