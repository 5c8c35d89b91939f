package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapperpro/kwify-provisioner/internal/config"
	"github.com/mapperpro/kwify-provisioner/internal/dto"
)

func TestRenderCredentialEmail(t *testing.T) {
	html, text, err := renderCredentialEmail(credentialEmailData{
		DisplayName: "Joao Silva",
		Email:       "joao@example.com",
		Password:    "s3cret!Pass",
		LoginURL:    "https://app.example.com/login",
		ProductName: "Curso Completo",
		Amount:      "99.90",
		Date:        "28/08/2026",
		Year:        2026,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome, Joao Silva!")
	assert.Contains(t, html, "joao@example.com")
	assert.Contains(t, html, "s3cret!Pass")
	assert.Contains(t, html, `href="https://app.example.com/login"`)
	assert.Contains(t, html, "Curso Completo")
	assert.Contains(t, html, "99.90")
	assert.Contains(t, html, "28/08/2026")

	assert.Contains(t, text, "Hello Joao Silva!")
	assert.Contains(t, text, "Email: joao@example.com")
	assert.Contains(t, text, "Password: s3cret!Pass")
	assert.Contains(t, text, "Product: Curso Completo")
}

func TestRenderCredentialEmailEscapesHTML(t *testing.T) {
	html, _, err := renderCredentialEmail(credentialEmailData{
		DisplayName: "<script>alert(1)</script>",
		Email:       "x@example.com",
		Password:    "p",
		LoginURL:    "#",
		ProductName: "N/A",
		Amount:      "N/A",
		Date:        "28/08/2026",
		Year:        2026,
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestSendCredentialsSubstitutesNAForMissingFields(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "99.90", orNA("99.90"))
}

func TestSendCredentialsTransportFailureIsSwallowed(t *testing.T) {
	// Nothing listens on port 1; the dial fails immediately and must
	// come back as a result, never as an error or panic.
	mailer := NewSMTPMailer(&config.Config{
		SMTPHost:  "127.0.0.1",
		SMTPPort:  1,
		FromEmail: "noreply@example.com",
		FromName:  "Sistema",
		LoginURL:  "#",
	})

	result := mailer.SendCredentials("to@example.com", "password", "Customer", dto.PurchaseContext{})

	assert.False(t, result.Delivered)
	assert.NotEmpty(t, result.ErrorDetail)
	assert.Empty(t, result.MessageID)
}

func TestVerifyFailsWhenServerUnreachable(t *testing.T) {
	mailer := NewSMTPMailer(&config.Config{
		SMTPHost: "127.0.0.1",
		SMTPPort: 1,
	})

	assert.Error(t, mailer.Verify())
}
