package notify_fx

import (
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/internal/config"
	"shootbook/internal/services"
)

var Module = fx.Provide(provideNotifier)

// provideNotifier fans out to every configured channel. Channels without
// configuration are skipped with a warning.
func provideNotifier(cfg *config.Config, logger *zap.Logger) services.Notifier {
	var channels []services.Notifier

	tg, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	switch {
	case err == nil:
		channels = append(channels, tg)
	case errors.Is(err, services.ErrNotifierDisabled):
		logger.Warn("telegram notifications disabled")
	default:
		logger.Error("telegram notifier init failed", zap.Error(err))
	}

	mail, err := services.NewSMTPMailNotifier(services.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		FromName:   cfg.SMTP.FromName,
		To:         cfg.SMTP.To,
		UseSSL:     cfg.SMTP.UseSSL,
		RequireTLS: cfg.SMTP.RequireTLS,
		Timeout:    cfg.SMTP.Timeout,
		AppName:    cfg.SMTP.FromName,
	})
	switch {
	case err == nil:
		channels = append(channels, mail)
	case errors.Is(err, services.ErrNotifierDisabled):
		logger.Warn("email notifications disabled")
	default:
		logger.Error("email notifier init failed", zap.Error(err))
	}

	return services.NewMultiNotifier(logger, channels...)
}
