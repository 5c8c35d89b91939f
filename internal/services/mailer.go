package services

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"sync"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/mapperpro/kwify-provisioner/internal/config"
	"github.com/mapperpro/kwify-provisioner/internal/dto"
)

// CredentialMailer delivers generated credentials to the purchaser.
// SendCredentials never returns an error: transport failures are
// reported through the DeliveryResult and the pipeline keeps going.
type CredentialMailer interface {
	SendCredentials(email, password, displayName string, purchase dto.PurchaseContext) dto.DeliveryResult
	Verify() error
}

const credentialSubject = "Your Login Credentials - Purchase Confirmed"

type credentialEmailData struct {
	DisplayName string
	Email       string
	Password    string
	LoginURL    string
	ProductName string
	Amount      string
	Date        string
	Year        int
}

var credentialHTMLTemplate = htmltemplate.Must(htmltemplate.New("credentials").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Your Login Credentials</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .credentials { background-color: #e8f5e8; padding: 15px; border-radius: 5px; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; color: #666; }
    .button { display: inline-block; padding: 10px 20px; background-color: #4CAF50; color: white; text-decoration: none; border-radius: 5px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome, {{.DisplayName}}!</h1>
    </div>
    <div class="content">
      <h2>Your purchase was processed successfully!</h2>
      <p>Thank you for your purchase! Your login credentials were created automatically.</p>

      <div class="credentials">
        <h3>Your Login Credentials:</h3>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Password:</strong> {{.Password}}</p>
      </div>

      <p><strong>Important:</strong></p>
      <ul>
        <li>Keep these credentials in a safe place</li>
        <li>We recommend changing your password on first login</li>
        <li>Never share your credentials with anyone</li>
      </ul>

      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.LoginURL}}" class="button">Log In Now</a>
      </div>

      <h3>Purchase Details:</h3>
      <p><strong>Product:</strong> {{.ProductName}}</p>
      <p><strong>Amount:</strong> {{.Amount}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
    </div>
    <div class="footer">
      <p>If you did not make this purchase, please contact us immediately.</p>
      <p>&copy; {{.Year}} - All rights reserved</p>
    </div>
  </div>
</body>
</html>
`))

var credentialTextTemplate = texttemplate.Must(texttemplate.New("credentials").Parse(`Hello {{.DisplayName}}!

Your purchase was processed successfully!

Your login credentials:
Email: {{.Email}}
Password: {{.Password}}

Keep this information in a safe place.

Purchase details:
Product: {{.ProductName}}
Amount: {{.Amount}}
Date: {{.Date}}
`))

// SMTPMailer renders the credentials email (HTML with a plaintext
// alternative) and dispatches it through a gomail dialer.
type SMTPMailer struct {
	cfg    *config.Config
	dialer *gomail.Dialer

	mu       sync.Mutex
	verified bool
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.SSL = cfg.SMTPSecure

	return &SMTPMailer{cfg: cfg, dialer: dialer}
}

func (m *SMTPMailer) SendCredentials(email, password, displayName string, purchase dto.PurchaseContext) dto.DeliveryResult {
	html, text, err := renderCredentialEmail(credentialEmailData{
		DisplayName: displayName,
		Email:       email,
		Password:    password,
		LoginURL:    m.cfg.LoginURL,
		ProductName: orNA(purchase.ProductName),
		Amount:      orNA(purchase.Amount),
		Date:        time.Now().Format("02/01/2006"),
		Year:        time.Now().Year(),
	})
	if err != nil {
		slog.Error("failed to render credentials email", "email", email, "error", err)
		return dto.DeliveryResult{Delivered: false, ErrorDetail: err.Error()}
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.SMTPHost)

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.FromEmail, m.cfg.FromName))
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", credentialSubject)
	msg.SetHeader("Message-Id", messageID)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		slog.Error("failed to send credentials email", "email", email, "error", err)
		return dto.DeliveryResult{Delivered: false, ErrorDetail: err.Error()}
	}

	return dto.DeliveryResult{Delivered: true, MessageID: messageID}
}

// Verify dials the SMTP server once to validate the configuration.
// A successful check is cached for the lifetime of the process.
func (m *SMTPMailer) Verify() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.verified {
		return nil
	}

	conn, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}
	conn.Close()

	m.verified = true
	return nil
}

func renderCredentialEmail(data credentialEmailData) (html, text string, err error) {
	var htmlBuf, textBuf bytes.Buffer

	if err := credentialHTMLTemplate.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("html template: %w", err)
	}
	if err := credentialTextTemplate.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("text template: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
