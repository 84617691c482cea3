package utils

import (
	"fmt"
	"log"

	"skillflow/config"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends one HTML mail through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("SendGrid not configured, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("SkillFlowAI", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}

	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F4F6FB; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B1F4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B1F4B; line-height: 1.6; }
			.content h2 { color: #1B1F4B; margin-top: 0; }
			.footer { background-color: #F4F6FB; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #6C63FF; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #EEF0FF; padding: 15px; border-radius: 4px; border-left: 4px solid #6C63FF; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLFLOW AI</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillFlowAI. All rights reserved.<br>
				Keep learning, one module at a time.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a fresh signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to SkillFlowAI! Your account is ready.</p>
		<p>Create a course on any topic and we will generate the modules, lessons, and quizzes for you.</p>
	`, name)

	if err := SendEmail(email, name, "Welcome to SkillFlowAI", getEmailTemplate("Welcome aboard", body)); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendPasswordResetOTP mails a reset code
func SendPasswordResetOTP(email, name, otp string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Use this code to reset your password. It expires in 10 minutes.</p>
		<div class="info-box"><b>%s</b></div>
		<p>If you did not request a reset, you can ignore this mail.</p>
	`, name, otp)

	if err := SendEmail(email, name, "Your SkillFlowAI reset code", getEmailTemplate("Password reset", body)); err != nil {
		log.Printf("Failed to send reset email to %s: %v", email, err)
	}
}

// SendCourseCompletionEmail congratulates a learner on finishing a course
func SendCourseCompletionEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You completed <b>%s</b>. Nice work!</p>
		<p>You can request your certificate from the course page.</p>
	`, name, courseTitle)

	if err := SendEmail(email, name, "Course completed!", getEmailTemplate("Congratulations", body)); err != nil {
		log.Printf("Failed to send completion email to %s: %v", email, err)
	}
}

// SendWeeklyDigest nudges an active learner with their open courses
func SendWeeklyDigest(email, name string, openCourses []string) {
	if len(openCourses) == 0 {
		return
	}

	list := ""
	for _, title := range openCourses {
		list += fmt.Sprintf("<li>%s</li>", title)
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have courses waiting for you this week:</p>
		<ul>%s</ul>
		<p>A little progress every day adds up.</p>
	`, name, list)

	if err := SendEmail(email, name, "Your week on SkillFlowAI", getEmailTemplate("Keep it going", body)); err != nil {
		log.Printf("Failed to send digest email to %s: %v", email, err)
	}
}
