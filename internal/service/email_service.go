package service

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	texttemplate "text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"versekids/internal/models"
)

// sesAPI is the part of the SES client the email service uses
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     sesAPI
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	logger     *slog.Logger
}

// NewEmailService creates a new email service. An empty fromEmail yields a
// disabled service that skips every send.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName, appBaseURL string, logger *slog.Logger) (*EmailService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if fromEmail == "" {
		logger.Info("email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, logger: logger}, nil
	}

	logger.Debug("initializing email service with AWS SES", "region", awsRegion, "from", fromEmail, "app_base_url", appBaseURL)

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("email service enabled", "from", fromEmail, "region", awsRegion)
	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		logger:     logger,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendYearCompleteEmail congratulates a parent when a learner finishes a program year
func (s *EmailService) SendYearCompleteEmail(ctx context.Context, toEmail, toName, learnerName string, completedYear int) error {
	subject := fmt.Sprintf("%s finished year %d of VerseKids!", learnerName, completedYear)
	paragraphs := []string{
		fmt.Sprintf("%s has completed every week of year %d and starts year %d today.", learnerName, completedYear, completedYear+1),
		"The new year brings fresh verses and devotionals, and the Bible book games continue where they left off.",
	}
	return s.sendTemplate(ctx, toEmail, toName, subject, "A whole year of verses!", paragraphs, nil)
}

// SendMasteryEmail tells a parent that a learner mastered this week's book set
func (s *EmailService) SendMasteryEmail(ctx context.Context, toEmail, toName, learnerName string, books []string) error {
	subject := fmt.Sprintf("%s mastered a set of Bible books", learnerName)
	paragraphs := []string{
		fmt.Sprintf("%s can now put these books of the Bible in order:", learnerName),
	}
	return s.sendTemplate(ctx, toEmail, toName, subject, "Bible books mastered!", paragraphs, books)
}

// emailData is the view passed to the message templates
type emailData struct {
	Heading    string
	Greeting   string
	Paragraphs []string
	Items      []string
	Link       string
}

var htmlEmail = htmltemplate.Must(htmltemplate.New("email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Verdana, sans-serif; color: #2d2a32; background: #fdf8ef;">
	<table role="presentation" width="100%" cellpadding="0" cellspacing="0">
		<tr><td align="center" style="padding: 24px;">
			<table role="presentation" width="560" style="background: #ffffff; border-radius: 8px;">
				<tr><td style="background: #6a4fb3; color: #ffffff; padding: 18px; text-align: center; border-radius: 8px 8px 0 0;">
					<h1 style="margin: 0; font-size: 22px;">{{.Heading}}</h1>
				</td></tr>
				<tr><td style="padding: 24px;">
					<p>Hi {{.Greeting}},</p>
					{{range .Paragraphs}}<p>{{.}}</p>
					{{end}}{{if .Items}}<ol>
					{{range .Items}}<li>{{.}}</li>
					{{end}}</ol>{{end}}
					<p style="text-align: center; margin-top: 24px;">
						<a href="{{.Link}}" style="background: #f2a541; color: #2d2a32; padding: 10px 24px; border-radius: 20px; text-decoration: none;">Open VerseKids</a>
					</p>
				</td></tr>
			</table>
			<p style="font-size: 11px; color: #8a8590;">Sent automatically by VerseKids. Replies are not read.</p>
		</td></tr>
	</table>
</body>
</html>
`))

var textEmail = texttemplate.Must(texttemplate.New("email").Parse(`Hi {{.Greeting}},

{{range .Paragraphs}}{{.}}

{{end}}{{range .Items}}- {{.}}
{{end}}
Open VerseKids: {{.Link}}

Sent automatically by VerseKids. Replies are not read.
`))

// sendTemplate renders both message bodies and sends them
func (s *EmailService) sendTemplate(ctx context.Context, toEmail, toName, subject, heading string, paragraphs, items []string) error {
	if !s.enabled {
		s.logger.Info("skipping email send (service disabled)", "to", toEmail, "subject", subject)
		return nil
	}

	data := emailData{Heading: heading, Greeting: toName, Paragraphs: paragraphs, Items: items, Link: s.appBaseURL}
	var htmlBody, textBody bytes.Buffer
	if err := htmlEmail.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}
	if err := textEmail.Execute(&textBody, data); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	return s.sendEmail(ctx, toEmail, subject, htmlBody.String(), textBody.String())
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination:      &types.Destination{ToAddresses: []string{toEmail}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: utf8Content(subject),
				Body:    &types.Body{Html: utf8Content(htmlBody), Text: utf8Content(textBody)},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	s.logger.Info("email sent", "to", toEmail, "subject", subject, "message_id", aws.ToString(result.MessageId))
	return nil
}

func utf8Content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String("UTF-8")}
}

// AccountLookup finds the parent account that owns a learner
type AccountLookup interface {
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

// ParentNotifier emails the parent account of a learner
type ParentNotifier struct {
	email    *EmailService
	accounts AccountLookup
}

// NewParentNotifier creates a notifier backed by the email service
func NewParentNotifier(email *EmailService, accounts AccountLookup) *ParentNotifier {
	return &ParentNotifier{email: email, accounts: accounts}
}

// NotifyYearComplete emails the parent when a program year is finished
func (n *ParentNotifier) NotifyYearComplete(ctx context.Context, learner *models.Learner, completedYear int) error {
	account, err := n.accounts.GetByID(ctx, learner.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load parent account: %w", err)
	}
	return n.email.SendYearCompleteEmail(ctx, account.Email, account.Name, displayName(learner), completedYear)
}

// NotifyBooksMastered emails the parent when a book set is mastered
func (n *ParentNotifier) NotifyBooksMastered(ctx context.Context, learner *models.Learner, books []string) error {
	account, err := n.accounts.GetByID(ctx, learner.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load parent account: %w", err)
	}
	return n.email.SendMasteryEmail(ctx, account.Email, account.Name, displayName(learner), books)
}

func displayName(l *models.Learner) string {
	if l.Name != "" {
		return l.Name
	}
	return l.Nickname
}
