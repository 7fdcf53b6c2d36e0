package services

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailNotifier(t *testing.T) *mailNotifier {
	t.Helper()
	n, err := NewSMTPMailNotifier(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "bookings@example.com",
		FromName: "Studio Bookings",
		To:       "studio@example.com",
		AppName:  "Studio Bookings",
	})
	require.NoError(t, err)
	return n.(*mailNotifier)
}

func TestNewSMTPMailNotifier_Disabled(t *testing.T) {
	_, err := NewSMTPMailNotifier(SMTPConfig{Host: "smtp.example.com"})
	assert.ErrorIs(t, err, ErrNotifierDisabled)
}

func TestMailNotifier_RenderEscapesHTML(t *testing.T) {
	m := newTestMailNotifier(t)

	htmlBody, textBody, err := m.render(Notification{
		Title:  "New booking",
		Fields: []Field{{Label: "Notes", Value: "<script>x</script>"}},
	})
	require.NoError(t, err)
	assert.Contains(t, htmlBody, "&lt;script&gt;")
	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, textBody, "Notes: <script>x</script>")
}

func TestMailNotifier_ComposeWithAttachment(t *testing.T) {
	m := newTestMailNotifier(t)

	msg := string(m.compose("Booking photo", "<p>hi</p>", "hi", &attachment{
		name:        "a.png",
		contentType: "image/png",
		data:        []byte(strings.Repeat("x", 200)),
	}))
	assert.Contains(t, msg, "To: studio@example.com\r\n")
	assert.Contains(t, msg, "multipart/mixed")
	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, `filename="a.png"`)
	for _, line := range strings.Split(msg, "\r\n") {
		assert.LessOrEqual(t, len(line), 998)
	}
}

func TestMailNotifier_SendHonoursContext(t *testing.T) {
	m := newTestMailNotifier(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SendMessage(ctx, Notification{Title: "x"})
	assert.Error(t, err)
}

func TestMailNotifier_StalledServerTimesOut(t *testing.T) {
	m := newTestMailNotifier(t)
	m.cfg.Timeout = 50 * time.Millisecond
	client, server := net.Pipe()
	defer server.Close()
	m.dial = func(context.Context, string, string) (net.Conn, error) { return client, nil }

	done := make(chan error, 1)
	go func() { done <- m.SendMessage(context.Background(), Notification{Title: "New booking"}) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("send did not give up on a silent server")
	}
}
