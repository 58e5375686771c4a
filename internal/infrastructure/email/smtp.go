package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	sharedConfig "art/internal/shared/config"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func ConfigFrom(c sharedConfig.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        c.SMTPHost,
		Port:        c.SMTPPort,
		Username:    c.SMTPUser,
		Password:    c.SMTPPassword,
		FromAddress: c.FromAddress,
		FromName:    c.FromName,
	}
}

// SMTPEmailService sends allocation notices to asset holders.
type SMTPEmailService struct {
	config SMTPConfig
	send   func(m ...*gomail.Message) error
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		send:   dialer.DialAndSend,
	}
}

// SendAllocationEmail tells a user an asset was assigned to or taken from
// them.
func (s *SMTPEmailService) SendAllocationEmail(to, assetLabel string, allocated bool) error {
	subject := "Asset allocated to you"
	line := fmt.Sprintf("The asset %s has been allocated to you.", assetLabel)
	if !allocated {
		subject = "Asset returned"
		line = fmt.Sprintf("The asset %s is no longer allocated to you.", assetLabel)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<p>Contact the IT team if this looks wrong.</p>
		</body>
		</html>
	`, html.EscapeString(subject), html.EscapeString(line))

	plainBody := fmt.Sprintf(`
%s

%s

Contact the IT team if this looks wrong.
	`, subject, line)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
