package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendVerificationEmail delivers the claim verification link to the work
// address the claimant provided. The raw token only ever travels here and in
// the link itself.
func (s *SMTPEmailService) SendVerificationEmail(ctx context.Context, to, companyName, token string) error {
	verificationURL := fmt.Sprintf("%s/claims/verify/%s", s.config.BaseURL, token)

	subject := fmt.Sprintf("Verify your claim for %s", companyName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Confirm your company claim</h2>
			<p>You requested to claim the profile for <strong>%s</strong>. Click the link below to verify that you control this email address:</p>
			<p><a href="%s">Verify Claim</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't request this claim, please ignore this email.</p>
		</body>
		</html>
	`, companyName, verificationURL, verificationURL)

	plainBody := fmt.Sprintf(`
Confirm your company claim

You requested to claim the profile for %s. Visit the following URL to verify that you control this email address:
%s

This link will expire in 24 hours.

If you didn't request this claim, please ignore this email.
	`, companyName, verificationURL)

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

// SendDecisionEmail notifies the claimant of an admin decision on a manual
// verification claim.
func (s *SMTPEmailService) SendDecisionEmail(ctx context.Context, to, companyName string, approved bool, notes string) error {
	var subject, headline, outcome string
	if approved {
		subject = fmt.Sprintf("Your claim for %s has been approved", companyName)
		headline = "Claim approved"
		outcome = fmt.Sprintf("Your claim for %s has been approved. You can now manage the company profile and respond to reviews.", companyName)
	} else {
		subject = fmt.Sprintf("Your claim for %s has been rejected", companyName)
		headline = "Claim rejected"
		outcome = fmt.Sprintf("Your claim for %s has been rejected.", companyName)
	}

	notesSection := ""
	if notes != "" {
		notesSection = fmt.Sprintf("<p>Reviewer notes: %s</p>", notes)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			%s
		</body>
		</html>
	`, headline, outcome, notesSection)

	plainBody := fmt.Sprintf(`
%s

%s
`, headline, outcome)
	if notes != "" {
		plainBody += fmt.Sprintf("\nReviewer notes: %s\n", notes)
	}

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
