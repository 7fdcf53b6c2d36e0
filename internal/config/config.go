package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	AllowedOrigins []string

	// TrustedProxies lists the proxies whose forwarding headers decide the
	// client IP. Empty means the TCP peer is the client.
	TrustedProxies []string

	PostgresURL string

	Redis RedisConfig

	RateLimit RateLimitConfig

	Paystack PaystackConfig

	Telegram TelegramConfig

	SMTP SMTPConfig

	Google GoogleConfig

	Admin AdminConfig

	// ImageSendDelay spaces photo notifications of a single order.
	ImageSendDelay time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	WriteLimit int
	ReadLimit  int
	Window     time.Duration
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	To         string
	UseSSL     bool
	RequireTLS bool
	Timeout    time.Duration
}

type GoogleConfig struct {
	CredentialsJSON string
	SpreadsheetID   string
	SheetRange      string
	DriveFolderID   string
}

type AdminConfig struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	r := reader{lookup: lookup}
	cfg := &Config{
		Env:            r.String("APP_ENV", "production"),
		Port:           r.String("PORT", "8080"),
		AllowedOrigins: r.List("ALLOWED_ORIGINS"),
		TrustedProxies: r.List("TRUSTED_PROXIES"),
		PostgresURL:    r.String("POSTGRES_URL", ""),
		Redis: RedisConfig{
			Addr:     r.String("REDIS_ADDR", ""),
			Password: r.String("REDIS_PASSWORD", ""),
			DB:       r.Int("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			WriteLimit: r.Int("RATE_LIMIT_WRITE", 10),
			ReadLimit:  r.Int("RATE_LIMIT_READ", 60),
			Window:     r.Duration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Paystack: PaystackConfig{
			SecretKey: r.String("PAYSTACK_SECRET_KEY", ""),
			BaseURL:   r.String("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			Timeout:   r.Duration("PAYSTACK_TIMEOUT", 10*time.Second),
		},
		Telegram: TelegramConfig{
			BotToken: r.String("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   r.Int64("TELEGRAM_CHAT_ID", 0),
		},
		SMTP: SMTPConfig{
			Host:       r.String("SMTP_HOST", ""),
			Port:       r.Int("SMTP_PORT", 587),
			Username:   r.String("SMTP_USERNAME", ""),
			Password:   r.String("SMTP_PASSWORD", ""),
			From:       r.String("SMTP_FROM", ""),
			FromName:   r.String("SMTP_FROM_NAME", "Studio Bookings"),
			To:         r.String("STUDIO_EMAIL", ""),
			UseSSL:     r.Bool("SMTP_USE_SSL", false),
			RequireTLS: r.Bool("SMTP_REQUIRE_TLS", true),
			Timeout:    r.Duration("SMTP_TIMEOUT", 30*time.Second),
		},
		Google: GoogleConfig{
			CredentialsJSON: r.String("GOOGLE_CREDENTIALS_JSON", ""),
			SpreadsheetID:   r.String("SHEETS_SPREADSHEET_ID", ""),
			SheetRange:      r.String("SHEETS_RANGE", "Orders!A:N"),
			DriveFolderID:   r.String("DRIVE_FOLDER_ID", ""),
		},
		Admin: AdminConfig{
			PasswordHash: r.String("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    r.String("JWT_SECRET", ""),
			TokenTTL:     r.Duration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		ImageSendDelay: r.Duration("IMAGE_SEND_DELAY", time.Second),
	}
	if len(r.errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(r.errs, "; "))
	}
	if cfg.RateLimit.WriteLimit < 1 || cfg.RateLimit.ReadLimit < 1 {
		return nil, fmt.Errorf("invalid configuration: rate limits must be positive")
	}
	return cfg, nil
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []string
}

func (r *reader) String(key, def string) string {
	if v, ok := r.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *reader) List(key string) []string {
	v := r.String(key, "")
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *reader) Int(key string, def int) int {
	v := r.String(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %v", key, err))
		return def
	}
	return n
}

func (r *reader) Int64(key string, def int64) int64 {
	v := r.String(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %v", key, err))
		return def
	}
	return n
}

func (r *reader) Bool(key string, def bool) bool {
	v := r.String(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %v", key, err))
		return def
	}
	return b
}

func (r *reader) Duration(key string, def time.Duration) time.Duration {
	v := r.String(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %v", key, err))
		return def
	}
	return d
}
