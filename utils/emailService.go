package utils

import (
	"fmt"

	"architect/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single HTML email through SendGrid
func SendEmail(toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail("Curriculum Architect", config.AppConfig.FromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

// HTML wrapper shared by all outgoing emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1E3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E3A5F; line-height: 1.6; }
			.content h2 { color: #1E3A5F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.stat-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4C9AFF; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CURRICULUM ARCHITECT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Curriculum Architect. Keep learning!
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendProgressDigestEmail sends the weekly learning progress digest
func SendProgressDigestEmail(email string, summary ProgressSummary, completedThisWeek int) error {
	subject := "Your Weekly Learning Progress"
	body := fmt.Sprintf(`
		<p>Hello! Here's your learning progress summary:</p>
		<div class="stat-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Total Resources:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>Completed:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>In Progress:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>Completed This Week:</strong> %d</li>
				<li><strong>Completion Rate:</strong> %.2f%%</li>
			</ul>
		</div>
		<p>Keep up the great work! Continue with your learning journey.</p>
	`, summary.TotalResources, summary.CompletedResources, summary.InProgressResources,
		completedThisWeek, summary.CompletionPercentage)

	return SendEmail(email, subject, getEmailTemplate("Weekly Learning Progress", body))
}
