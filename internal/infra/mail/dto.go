package mail

import "gopkg.in/gomail.v2"

type EnrolmentNoticeData struct {
	Student     string
	Program     string
	EnrolmentID string
	NextPayment string
}

// dialer is satisfied by *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Office   string

	dialer dialer
}
