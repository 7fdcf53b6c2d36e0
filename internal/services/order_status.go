package services

import (
	"fmt"
	"strings"

	"shootbook/internal/models/db_models"
)

// OrderStatus is the state an order is processed in.
type OrderStatus int

const (
	// StatusPending: files received, payment not yet verified.
	StatusPending OrderStatus = iota + 1
	// StatusConfirmed: payment verified, submitted directly by the client.
	StatusConfirmed
	// StatusWebhookRecovery: rebuilt from a payment webhook because the
	// direct submission never arrived.
	StatusWebhookRecovery
)

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusWebhookRecovery:
		return "webhook_recovery"
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "awaiting payment"
	case StatusConfirmed:
		return "paid"
	case StatusWebhookRecovery:
		return "paid (recovered from payment webhook)"
	}
	return s.String()
}

func (s OrderStatus) recordStatus() db_models.OrderRecordStatus {
	switch s {
	case StatusPending:
		return db_models.OrderRecordPending
	case StatusConfirmed:
		return db_models.OrderRecordConfirmed
	case StatusWebhookRecovery:
		return db_models.OrderRecordWebhookRecovery
	}
	return db_models.OrderRecordStatus(s.String())
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "webhook_recovery":
		return StatusWebhookRecovery, nil
	}
	return 0, fmt.Errorf("unknown order status %q", s)
}

type pricePolicy int

const (
	priceSkip pricePolicy = iota
	priceEnforce
	priceWarn
)

// pricePolicy decides how a price mismatch is treated in each state:
// pending orders are not checked, confirmed orders are rejected on a
// mismatch, and webhook recoveries only record a warning since the payment
// already went through.
func (s OrderStatus) pricePolicy() (pricePolicy, error) {
	switch s {
	case StatusPending:
		return priceSkip, nil
	case StatusConfirmed:
		return priceEnforce, nil
	case StatusWebhookRecovery:
		return priceWarn, nil
	}
	return 0, fmt.Errorf("no price policy for %s", s)
}
