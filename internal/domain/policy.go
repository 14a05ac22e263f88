package domain

import "time"

// CanModify решает, разрешена ли сейчас любая мутация (создание или отмена)
// брони на указанную дату. Чистая функция от (дата, текущий момент, роль).
//
// Правила в порядке применения:
//  1. Администратор обходит все ограничения по датам
//  2. Сегодняшний день - только строго до открытия рабочего окна (17:00)
//  3. Прошедшие дни заморожены
//  4. Завтрашний день заморожен полностью - окно подготовки персонала
//  5. Даты от послезавтра и дальше всегда доступны
func CanModify(targetDate time.Time, now time.Time, isAdmin bool) bool {
	if isAdmin {
		return true
	}

	today := DateOnly(now)
	tomorrow := today.AddDate(0, 0, 1)
	target := DateOnly(targetDate)

	switch {
	case target.Equal(today):
		return now.Hour() < ServiceWindowOpenHour
	case target.Before(today):
		return false
	case target.Equal(tomorrow):
		return false
	}
	return true
}
