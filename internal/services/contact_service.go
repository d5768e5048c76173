package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

// ContactMessage is one submission of the public letters-to-the-editor form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// EmailSender defines the interface for delivering contact messages
type EmailSender interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

// AWSSESEmailSender delivers contact messages to the site owner using AWS SES
type AWSSESEmailSender struct {
	sesClient   *ses.Client
	fromAddress string
	toAddress   string
	logger      *slog.Logger
}

// NewAWSSESEmailSender creates a new AWS SES email sender
func NewAWSSESEmailSender(region, fromAddress, toAddress string, logger *slog.Logger) (*AWSSESEmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSESEmailSender{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		toAddress:   toAddress,
		logger:      logger,
	}, nil
}

// SendContactMessage forwards a contact form submission to the site owner.
// The visitor's address goes in Reply-To so the owner can respond directly.
func (s *AWSSESEmailSender) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "New message from the contact page"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Georgia, serif; line-height: 1.6; color: #222; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 3px double #222; padding-bottom: 10px; }
        .meta { color: #666; font-size: 14px; margin: 10px 0; }
        .message { padding: 20px 0; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Letter to the Editor</h1>
        </div>
        <div class="meta">
            <strong>From:</strong> %s &lt;%s&gt;<br>
            <strong>Subject:</strong> %s
        </div>
        <div class="message">%s</div>
    </div>
</body>
</html>
`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(subject), html.EscapeString(msg.Message))

	textBody := fmt.Sprintf(`Letter to the Editor

From: %s <%s>
Subject: %s

%s
`, msg.Name, msg.Email, subject, msg.Message)

	input := &ses.SendEmailInput{
		Source:           aws.String(s.fromAddress),
		ReplyToAddresses: []string{msg.Email},
		Destination: &types.Destination{
			ToAddresses: []string{s.toAddress},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(fmt.Sprintf("[Portfolio] %s", subject)),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
				Text: &types.Content{
					Data: aws.String(textBody),
				},
			},
		},
	}

	result, err := s.sesClient.SendEmail(ctx, input)
	if err != nil {
		s.logger.Error("failed to send contact message via SES",
			slog.String("from", msg.Email),
			slog.Any("error", err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("contact message sent",
		slog.String("from", msg.Email),
		slog.String("message_id", *result.MessageId))

	return nil
}

// ContactService validates and delivers contact form submissions.
type ContactService struct {
	sender EmailSender
	logger *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(sender EmailSender, logger *slog.Logger) *ContactService {
	return &ContactService{sender: sender, logger: logger}
}

// Submit delivers a contact message. When no sender is configured the
// message is logged and dropped rather than failing the request.
func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(strings.ToLower(msg.Email))
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return models.ErrBadRequest
	}

	if s.sender == nil {
		s.logger.Warn("contact delivery not configured, message dropped",
			slog.String("from", msg.Email))
		return nil
	}

	return s.sender.SendContactMessage(ctx, msg)
}
