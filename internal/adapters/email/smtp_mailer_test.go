package email

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/go-gomail/gomail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPMailer_ComposesMessage(t *testing.T) {
	d := &recordingDialer{}
	mailer := &SMTPMailer{from: "no-reply@docorbit.local", dialer: d}

	err := mailer.Send(context.Background(), domain.EmailMessage{
		To:          "pat@example.com",
		Subject:     "Appointment Confirmation",
		Body:        "<p>hello</p>",
		ContentType: domain.ContentTypeHTML,
	})

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"pat@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"no-reply@docorbit.local"}, d.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"Appointment Confirmation"}, d.sent[0].GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPMailer_WrapsDialError(t *testing.T) {
	dialErr := errors.New("connection refused")
	mailer := &SMTPMailer{from: "a@b.c", dialer: &recordingDialer{err: dialErr}}

	err := mailer.Send(context.Background(), domain.EmailMessage{To: "x@y.z"})

	assert.ErrorIs(t, err, dialErr)
}

func TestSMTPMailer_CancelledContextSkipsDial(t *testing.T) {
	d := &recordingDialer{}
	mailer := &SMTPMailer{from: "a@b.c", dialer: d}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.Send(ctx, domain.EmailMessage{To: "x@y.z"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}

func TestLogMailer_DoesNotLogBody(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewLogMailer(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := mailer.Send(context.Background(), domain.EmailMessage{To: "x@y.z", Subject: "OTP", Body: "Your OTP is 123456"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "x@y.z")
	assert.False(t, strings.Contains(buf.String(), "123456"))
}
