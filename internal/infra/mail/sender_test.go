package mail

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func newTestSender(office string) (*EmailSender, *fakeDialer) {
	s := NewEmailSender("smtp.local", 587, "u", "p", "console@cirkidz.test", office)
	d := &fakeDialer{}
	s.dialer = d
	return s, d
}

func TestSendEnrolmentNotice(t *testing.T) {
	s, d := newTestSender("office@cirkidz.test")

	err := s.SendEnrolmentNotice("Mia <Jenkins>", "Youth Circus Foundation", "en-42")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"office@cirkidz.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"console@cirkidz.test"}, m.GetHeader("From"))

	var raw bytes.Buffer
	_, err = m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "en-42")
	assert.Contains(t, raw.String(), "To be scheduled")
}

func TestEnrolmentNoticeEscapesNames(t *testing.T) {
	var body bytes.Buffer
	require.NoError(t, enrolmentNotice.Execute(&body, EnrolmentNoticeData{Student: "Mia <Jenkins>"}))
	assert.Contains(t, body.String(), "Mia &lt;Jenkins&gt;")
}

func TestSendEnrolmentNoticeWithoutOfficeIsNoop(t *testing.T) {
	s, d := newTestSender("")
	require.NoError(t, s.SendEnrolmentNotice("Mia", "Kids Intro Circus", "en-1"))
	assert.Empty(t, d.sent)
}

func TestSendEnrolmentNoticeWrapsSMTPError(t *testing.T) {
	s, d := newTestSender("office@cirkidz.test")
	d.err = errors.New("connection refused")

	err := s.SendEnrolmentNotice("Mia", "Kids Intro Circus", "en-1")
	assert.ErrorContains(t, err, "connection refused")
}
