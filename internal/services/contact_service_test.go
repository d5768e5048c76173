package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

type fakeEmailSender struct {
	sent []ContactMessage
	err  error
}

func (f *fakeEmailSender) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestContactService(t *testing.T, sender EmailSender) *ContactService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewContactService(sender, logger)
}

func TestContactSubmit_NormalizesFields(t *testing.T) {
	sender := &fakeEmailSender{}
	svc := newTestContactService(t, sender)

	err := svc.Submit(context.Background(), ContactMessage{
		Name:    "  Reader  ",
		Email:   "  Reader@Example.COM ",
		Subject: " Hello ",
		Message: "  Loved the piece on caching.  ",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Reader", sender.sent[0].Name)
	assert.Equal(t, "reader@example.com", sender.sent[0].Email)
	assert.Equal(t, "Hello", sender.sent[0].Subject)
	assert.Equal(t, "Loved the piece on caching.", sender.sent[0].Message)
}

func TestContactSubmit_RejectsBlankFields(t *testing.T) {
	sender := &fakeEmailSender{}
	svc := newTestContactService(t, sender)
	ctx := context.Background()

	cases := []ContactMessage{
		{Email: "a@b.com", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@b.com", Message: "   "},
	}
	for _, msg := range cases {
		assert.ErrorIs(t, svc.Submit(ctx, msg), models.ErrBadRequest)
	}
	assert.Empty(t, sender.sent)
}

func TestContactSubmit_NoSenderDropsMessage(t *testing.T) {
	svc := newTestContactService(t, nil)

	err := svc.Submit(context.Background(), ContactMessage{Name: "A", Email: "a@b.com", Message: "hi"})
	assert.NoError(t, err)
}
