// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/pawanbishnoiii/shineveda-backend/internal/config"
	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

var inquiryEmailTemplate = template.Must(template.New("inquiry").Parse(`
<h2>New inquiry from {{.Name}}</h2>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
{{if .Country}}<p><strong>Country:</strong> {{.Country}}</p>{{end}}
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Type:</strong> {{.InquiryType}}</p>
{{if .ProductName}}<p><strong>Product:</strong> {{.ProductName}}</p>{{end}}
<p><strong>Message:</strong></p>
<blockquote>{{.Message}}</blockquote>
`))

// SendInquiryNotification mails a new storefront inquiry to the export
// team's inbox.
func (s *NotificationService) SendInquiryNotification(inquiry *models.Inquiry) error {
	if s.config.Email.SMTPUsername == "" {
		// SMTP not configured (local development)
		return nil
	}

	data := map[string]interface{}{
		"Name":        inquiry.Name,
		"Email":       inquiry.Email,
		"Company":     inquiry.Company,
		"Country":     inquiry.Country,
		"Phone":       inquiry.Phone,
		"InquiryType": string(inquiry.InquiryType),
		"Message":     inquiry.Message,
	}
	if inquiry.Product != nil {
		data["ProductName"] = inquiry.Product.Name
	}

	var body bytes.Buffer
	if err := inquiryEmailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render inquiry email: %w", err)
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	return s.sendEmail(s.config.Email.InquiryInbox, subject, body.String())
}

func (s *NotificationService) sendEmail(to, subject, htmlBody string) error {
	addr := s.config.Email.SMTPHost + ":" + s.config.Email.SMTPPort
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.Email.FromName, s.config.Email.FromEmail))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
