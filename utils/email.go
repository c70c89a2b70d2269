package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	port := ParseIntSafe(smtpPort)
	if port == 0 {
		port = 587
	}
	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// BookingEmailBody собирает текст письма-подтверждения брони
func BookingEmailBody(bookingID, hotelName string, nights, totalPrice int) string {
	return fmt.Sprintf(
		"Сочи Гид: бронирование %s подтверждено.\nОтель: %s\nНочей: %d\nИтого: %s",
		bookingID, hotelName, nights, FormatRUB(totalPrice),
	)
}
