package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"shootbook/internal/models/request_models"
	"shootbook/internal/models/response_models"
	"shootbook/pkg/utils"
)

var ErrNotifierDisabled = errors.New("notifier not configured")

// Notification is a channel-neutral message; every channel renders it in
// its own format.
type Notification struct {
	Title  string
	Fields []Field
	Footer string
}

type Field struct {
	Label string
	Value string
}

func (n *Notification) add(label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		n.Fields = append(n.Fields, Field{Label: label, Value: value})
	}
}

// PlainText renders the notification without markup.
func (n Notification) PlainText() string {
	var b strings.Builder
	b.WriteString(n.Title)
	b.WriteString("\n")
	for _, f := range n.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	if n.Footer != "" {
		b.WriteString("\n")
		b.WriteString(n.Footer)
		b.WriteString("\n")
	}
	return b.String()
}

// Photo is sent either from bytes (Data + Name) or by URL.
type Photo struct {
	Name    string
	Data    []byte
	URL     string
	Caption string
}

type Notifier interface {
	SendMessage(ctx context.Context, n Notification) error
	SendPhoto(ctx context.Context, p Photo) error
}

type disabledNotifier struct{}

func NewDisabledNotifier() Notifier { return disabledNotifier{} }

func (disabledNotifier) SendMessage(context.Context, Notification) error { return ErrNotifierDisabled }
func (disabledNotifier) SendPhoto(context.Context, Photo) error          { return ErrNotifierDisabled }

// MultiNotifier delivers to every channel and reports the first failure.
type MultiNotifier struct {
	channels []Notifier
	logger   *zap.Logger
}

func NewMultiNotifier(logger *zap.Logger, channels ...Notifier) Notifier {
	if len(channels) == 0 {
		return NewDisabledNotifier()
	}
	if len(channels) == 1 {
		return channels[0]
	}
	return &MultiNotifier{channels: channels, logger: logger}
}

func (m *MultiNotifier) SendMessage(ctx context.Context, n Notification) error {
	return m.each(func(ch Notifier) error { return ch.SendMessage(ctx, n) })
}

func (m *MultiNotifier) SendPhoto(ctx context.Context, p Photo) error {
	return m.each(func(ch Notifier) error { return ch.SendPhoto(ctx, p) })
}

func (m *MultiNotifier) each(send func(Notifier) error) error {
	var first error
	for i, ch := range m.channels {
		if err := send(ch); err != nil {
			m.logger.Warn("notification channel failed", zap.Int("channel", i), zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// FormatOrderNotification builds the studio message for a new booking.
func FormatOrderNotification(order request_models.OrderPayload, status OrderStatus, currency string, verification *response_models.PriceVerification) Notification {
	n := Notification{Title: "New booking: " + status.Label()}
	n.add("Order", order.OrderID)
	n.add("Phone", order.Phone)
	n.add("Shoot type", order.Category)
	pkg := order.PackageID
	if order.PackageName != "" {
		pkg = fmt.Sprintf("%s (%s)", order.PackageName, order.PackageID)
	}
	n.add("Package", pkg)
	if order.GroupSize > 0 {
		n.add("Group size", strconv.Itoa(order.GroupSize))
	}
	if order.Outfits > 0 {
		n.add("Outfits", strconv.Itoa(order.Outfits))
	}
	n.add("Add-ons", strings.Join(order.AddOns, ", "))
	n.add("Hairstyle", order.Hairstyle)
	n.add("Makeup", order.Makeup)
	n.add("Background", order.Background)
	n.add("Total", formatAmount(currency, order.Total.String()))
	switch {
	case verification == nil:
		n.add("Price check", "skipped")
	case verification.Valid:
		n.add("Price check", "verified")
	default:
		n.add("Price check", fmt.Sprintf("MISMATCH, catalog total %s", formatAmount(currency, verification.ServerTotal.String())))
	}
	n.add("Payment ref", order.PaymentReference)
	n.add("Notes", order.Notes)
	for i, u := range order.PhotoURLs {
		n.add(fmt.Sprintf("Photo link %d", i+1), u)
	}
	n.Footer = "Received " + utils.FormatLedgerTime(nowFunc())
	return n
}

// FormatConfirmationNotification builds the message sent when payment for
// an order is confirmed.
func FormatConfirmationNotification(orderID, reference string) Notification {
	n := Notification{Title: "Payment confirmed"}
	n.add("Order", orderID)
	n.add("Payment ref", reference)
	n.Footer = "Confirmed " + utils.FormatLedgerTime(nowFunc())
	return n
}

func formatAmount(currency, amount string) string {
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}
