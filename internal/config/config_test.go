package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.RateLimit.WriteLimit)
	assert.Equal(t, 60, cfg.RateLimit.ReadLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, time.Second, cfg.ImageSendDelay)
	assert.Equal(t, "Orders!A:N", cfg.Google.SheetRange)
	assert.False(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, 30*time.Second, cfg.SMTP.Timeout)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"APP_ENV":          "development",
		"TELEGRAM_CHAT_ID": "-100123",
		"ALLOWED_ORIGINS":  "https://a.example, https://b.example",
		"IMAGE_SEND_DELAY": "250ms",
		"SMTP_USE_SSL":     "true",
		"TRUSTED_PROXIES":  "10.0.0.0/8,127.0.0.1",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.ImageSendDelay)
	assert.True(t, cfg.SMTP.UseSSL)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}

func TestFromLookup_InvalidValues(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{
		"RATE_LIMIT_WRITE":  "many",
		"RATE_LIMIT_WINDOW": "soon",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_WRITE")
	assert.Contains(t, err.Error(), "RATE_LIMIT_WINDOW")

	_, err = FromLookup(lookupFrom(map[string]string{"RATE_LIMIT_READ": "0"}))
	assert.Error(t, err)
}
