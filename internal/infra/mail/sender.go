package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
)

//go:embed templates/*.html
var templates embed.FS

var enrolmentNotice = template.Must(template.ParseFS(templates, "templates/enrolment_notice.html"))

func NewEmailSender(host string, port int, user, password, from, office string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		Office:   office,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// SendEnrolmentNotice tells the office a follow-up turned into a Pending
// Payment enrolment so a payment link can be sent.
func (s *EmailSender) SendEnrolmentNotice(student, program, enrolmentID string) error {
	if s.Office == "" {
		return nil
	}

	data := EnrolmentNoticeData{
		Student:     student,
		Program:     program,
		EnrolmentID: enrolmentID,
		NextPayment: entity.DefaultNextPayment,
	}

	var body bytes.Buffer
	if err := enrolmentNotice.Execute(&body, data); err != nil {
		return fmt.Errorf("render enrolment notice: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.Office)
	m.SetHeader("Subject", fmt.Sprintf("New enrolment: %s · %s", student, program))
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send enrolment notice via SMTP: %w", err)
	}
	return nil
}
