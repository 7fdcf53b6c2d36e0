package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramMessageLimit is the longest text Telegram accepts in one message.
const telegramMessageLimit = 4096

// telegramSender is the part of *tgbotapi.BotAPI the notifier needs.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	bot    telegramSender
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, ErrNotifierDisabled
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &telegramNotifier{bot: bot, chatID: chatID}, nil
}

func newTelegramNotifierWithSender(bot telegramSender, chatID int64) Notifier {
	return &telegramNotifier{bot: bot, chatID: chatID}
}

func (t *telegramNotifier) SendMessage(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, text := range renderTelegramHTML(n) {
		msg := tgbotapi.NewMessage(t.chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("telegram send message: %w", err)
		}
	}
	return nil
}

func (t *telegramNotifier) SendPhoto(ctx context.Context, p Photo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var file tgbotapi.RequestFileData
	switch {
	case len(p.Data) > 0:
		file = tgbotapi.FileBytes{Name: p.Name, Bytes: p.Data}
	case p.URL != "":
		file = tgbotapi.FileURL(p.URL)
	default:
		return fmt.Errorf("telegram send photo: empty photo %q", p.Name)
	}
	photo := tgbotapi.NewPhoto(t.chatID, file)
	photo.Caption = p.Caption
	if _, err := t.bot.Send(photo); err != nil {
		return fmt.Errorf("telegram send photo: %w", err)
	}
	return nil
}

// renderTelegramHTML splits a notification into messages that each fit
// telegramMessageLimit. Fields are never split across messages; a single
// oversized field is truncated.
func renderTelegramHTML(n Notification) []string {
	title := html.EscapeString(n.Title)
	var (
		msgs []string
		b    strings.Builder
		size int
	)
	write := func(s string) {
		b.WriteString(s)
		size += utf8.RuneCountInString(s)
	}
	write(fmt.Sprintf("<b>%s</b>\n", title))
	header := size

	lines := make([]string, 0, len(n.Fields)+1)
	for _, f := range n.Fields {
		lines = append(lines, telegramField(f))
	}
	if n.Footer != "" {
		lines = append(lines, fmt.Sprintf("\n<i>%s</i>", html.EscapeString(n.Footer)))
	}

	for _, line := range lines {
		if size > header && size+utf8.RuneCountInString(line) > telegramMessageLimit {
			msgs = append(msgs, b.String())
			b.Reset()
			size = 0
			write(fmt.Sprintf("<b>%s (continued)</b>\n", title))
			header = size
		}
		write(line)
	}
	return append(msgs, b.String())
}

func telegramField(f Field) string {
	label := html.EscapeString(f.Label)
	// leave room for the title line of the message
	budget := telegramMessageLimit - 512
	value := []rune(f.Value)
	for {
		line := fmt.Sprintf("<b>%s:</b> %s\n", label, html.EscapeString(string(value)))
		if utf8.RuneCountInString(line) <= budget || len(value) == 0 {
			return line
		}
		value = value[:len(value)*3/4]
		if len(value) > 0 {
			value[len(value)-1] = '…'
		}
	}
}
