package utils

import "time"

// SochiTime возвращает текущее время в часовом поясе Сочи (московское время)
func SochiTime() time.Time {
	moscowLocation, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		// Если не удалось загрузить часовой пояс, используем UTC+3
		return time.Now().UTC().Add(3 * time.Hour)
	}
	return time.Now().In(moscowLocation)
}
