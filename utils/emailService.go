package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid. Skipped with a log
// line when no API key is configured, so local setups work without one.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("SendGrid not configured, skipping email %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Course Platform", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", getEmailTemplate(subject, htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE PLATFORM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Course Platform. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome aboard! Your account has been created successfully.</p>
		<p>Browse the catalog, pick a course and start earning EXP as you learn.</p>
	`, name)

	if err := SendEmail(email, name, "Welcome to Course Platform", body); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendPurchaseConfirmationEmail confirms a completed course purchase
func SendPurchaseConfirmationEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment for <strong>%s</strong> has been received.</p>
		<p>The full course is now unlocked. Completed units can be delivered for EXP from today on.</p>
	`, name, courseTitle)

	if err := SendEmail(email, name, "Purchase Confirmed", body); err != nil {
		log.Printf("Failed to send purchase confirmation to %s: %v", email, err)
	}
}
