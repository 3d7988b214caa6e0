package validators

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPasswordResetEmail mails the reset link for token to the given address.
func SendPasswordResetEmail(toEmail, token string) error {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}
	fromEmail := os.Getenv("EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "no-reply@hms.local"
	}

	from := mail.NewEmail("Hospital Management", fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "Password Reset"
	body := fmt.Sprintf("Click to reset your password: %s/reset.html?token=%s\nThis link expires in 1 hour.", appURL, token)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
