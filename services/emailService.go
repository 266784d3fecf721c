package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/FaithPortal/models"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SendPrayerRequestAlert notifies the ministry inbox that a new prayer or
// counselling request was submitted.
func (s *EmailService) SendPrayerRequestAlert(request models.PrayerRequest) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	toEmail := os.Getenv("MINISTRY_NOTIFY_EMAIL")
	if toEmail == "" {
		return fmt.Errorf("MINISTRY_NOTIFY_EMAIL not set")
	}

	subject := "New Prayer Request"
	if request.Request_Type == models.RequestTypeCounselling {
		subject = "New Counselling Request"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
        }
        .detail {
            background-color: #f7f7f7;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            font-size: 12px;
            color: #888;
            padding-top: 24px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h2>%s</h2>
    </div>

    <div class="detail">
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Request Type:</strong> %s</p>
    </div>

    <div class="detail">
        <p>%s</p>
    </div>

    <div class="footer">
        <p>Sent automatically from the FaithPortal admin backend.</p>
    </div>
</body>
</html>
`, subject, request.Name, request.Email, request.Request_Type, request.Message)

	textBody := fmt.Sprintf(`
%s
--------------------------
Name: %s
Email: %s
Request Type: %s
--------------------------
Message:
%s
`, subject, request.Name, request.Email, request.Request_Type, request.Message)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send prayer request alert to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent prayer request alert to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}

// SendSubscriberWelcome greets a new newsletter subscriber.
func (s *EmailService) SendSubscriberWelcome(toEmail string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := `
<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 20px 0;
        }
        .footer {
            text-align: center;
            font-size: 12px;
            color: #888;
            padding-top: 24px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h2>Welcome to the FaithPortal newsletter</h2>
    </div>

    <p>Thank you for subscribing. You will receive new articles, teachings,
    and live meeting announcements as they are published.</p>

    <p>Blessings,<br>The FaithPortal Team</p>

    <div class="footer">
        <p>If you did not subscribe, you can safely ignore this email.</p>
    </div>
</body>
</html>
`

	textBody := `
Welcome to the FaithPortal newsletter

Thank you for subscribing. You will receive new articles, teachings, and
live meeting announcements as they are published.

Blessings,
The FaithPortal Team

If you did not subscribe, you can safely ignore this email.
`

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: "Welcome to the FaithPortal newsletter",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send welcome email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent welcome email to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}
