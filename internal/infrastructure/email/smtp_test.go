package email

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSMTPEmailService_SendAllocationEmail(t *testing.T) {
	var sent []*gomail.Message
	svc := NewSMTPEmailService(SMTPConfig{FromAddress: "noreply@art.local", FromName: "ART"})
	svc.send = func(m ...*gomail.Message) error {
		sent = append(sent, m...)
		return nil
	}

	require.NoError(t, svc.SendAllocationEmail("jane@example.com", "IC001", true))
	require.Len(t, sent, 1)

	msg := sent[0]
	assert.Equal(t, []string{"jane@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Asset allocated to you"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "IC001 has been allocated to you")
}

func TestSMTPEmailService_ReleaseSubject(t *testing.T) {
	var subject []string
	svc := NewSMTPEmailService(SMTPConfig{FromAddress: "noreply@art.local"})
	svc.send = func(m ...*gomail.Message) error {
		subject = m[0].GetHeader("Subject")
		return nil
	}

	require.NoError(t, svc.SendAllocationEmail("jane@example.com", "IC001", false))
	assert.Equal(t, []string{"Asset returned"}, subject)
}

func TestSMTPEmailService_WrapsSendFailure(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{FromAddress: "noreply@art.local"})
	svc.send = func(...*gomail.Message) error { return errors.New("dial tcp: refused") }

	err := svc.SendAllocationEmail("jane@example.com", "IC001", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
