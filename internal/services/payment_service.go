package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shootbook/internal/catalog"
	"shootbook/internal/models/db_models"
	"shootbook/internal/models/request_models"
	"shootbook/internal/models/response_models"
	"shootbook/internal/repositories"
	"shootbook/pkg/utils"
)

const EventChargeSuccess = "charge.success"

var referencePattern = regexp.MustCompile(`^[A-Za-z0-9._=-]{6,100}$`)

// ValidatePaymentReference checks the shape of a gateway reference.
func ValidatePaymentReference(ref string) error {
	if !referencePattern.MatchString(ref) {
		return utils.NewValidationError("reference", "invalid payment reference format")
	}
	return nil
}

type PaystackConfig struct {
	SecretKey    string // signs webhooks and authenticates API calls
	BaseURL      string // https://api.paystack.co
	Timeout      time.Duration
	ProviderName string // stored on webhook events
}

type TransactionStatus struct {
	Reference string
	Status    string
	Amount    decimal.Decimal // major units
	Currency  string
	PaidAt    string
}

// WebhookOutcome describes what a verified webhook led to.
type WebhookOutcome struct {
	Event     string                       `json:"event"`
	Reference string                       `json:"reference,omitempty"`
	OrderID   string                       `json:"orderId,omitempty"`
	Action    string                       `json:"action"`
	Result    *response_models.OrderResult `json:"result,omitempty"`
}

const (
	WebhookIgnored          = "ignored"
	WebhookConfirmed        = "confirmed"
	WebhookRecovered        = "recovered"
	WebhookAlreadyConfirmed = "already_confirmed"
)

type PaymentService interface {
	VerifySignature(body []byte, signature string) error
	VerifyTransaction(ctx context.Context, reference string) (*TransactionStatus, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) (*WebhookOutcome, error)
	Enabled() bool
}

type paymentService struct {
	cfg    PaystackConfig
	http   *http.Client
	orders OrderService
	events repositories.OrderRepositoryInterface
	logger *zap.Logger
}

func NewPaymentService(cfg PaystackConfig, orders OrderService, events repositories.OrderRepositoryInterface, logger *zap.Logger) PaymentService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.paystack.co"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.ProviderName == "" {
		cfg.ProviderName = "paystack"
	}
	return &paymentService{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		orders: orders,
		events: events,
		logger: logger,
	}
}

func (p *paymentService) Enabled() bool { return p.cfg.SecretKey != "" }

// VerifySignature checks the x-paystack-signature header, the hex
// HMAC-SHA512 of the raw body keyed with the secret.
func (p *paymentService) VerifySignature(body []byte, signature string) error {
	if p.cfg.SecretKey == "" {
		return fmt.Errorf("%w: paystack secret key", utils.ErrMissingConfig)
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return utils.ErrInvalidSignature
	}
	mac := hmac.New(sha512.New, []byte(p.cfg.SecretKey))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return utils.ErrInvalidSignature
	}
	return nil
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		PaidAt    string `json:"paid_at"`
	} `json:"data"`
}

func (p *paymentService) VerifyTransaction(ctx context.Context, reference string) (*TransactionStatus, error) {
	if err := ValidatePaymentReference(reference); err != nil {
		return nil, err
	}
	if p.cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: paystack secret key", utils.ErrMissingConfig)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/transaction/verify/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: paystack verify: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: paystack verify: %v", utils.ErrUpstream, err)
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: paystack verify: status %d", utils.ErrUpstream, resp.StatusCode)
	}

	var body paystackVerifyResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: paystack verify: %v", utils.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK || !body.Status || body.Data.Status != "success" {
		return nil, &utils.DetailedError{
			Err:     utils.ErrPaymentNotVerified,
			Message: body.Message,
			Details: map[string]string{"reference": reference, "gatewayStatus": body.Data.Status},
		}
	}

	return &TransactionStatus{
		Reference: body.Data.Reference,
		Status:    body.Data.Status,
		Amount:    decimal.New(body.Data.Amount, -2),
		Currency:  body.Data.Currency,
		PaidAt:    body.Data.PaidAt,
	}, nil
}

// HandleWebhook authenticates a gateway callback and, for successful
// charges, confirms the pending order or rebuilds it from the payment
// metadata when the direct submission never reached us.
func (p *paymentService) HandleWebhook(ctx context.Context, body []byte, signature string) (*WebhookOutcome, error) {
	if err := p.VerifySignature(body, signature); err != nil {
		return nil, err
	}

	var event request_models.PaystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		p.logger.Warn("signed webhook body is not json", zap.Error(err))
		return &WebhookOutcome{Action: WebhookIgnored}, nil
	}

	outcome := &WebhookOutcome{Event: event.Event, Reference: event.Data.Reference, Action: WebhookIgnored}
	log := p.logger.With(zap.String("event", event.Event), zap.String("reference", event.Data.Reference))

	if event.Event != EventChargeSuccess {
		log.Info("webhook event ignored")
		return outcome, nil
	}

	meta, err := event.Data.ParseMetadata()
	if err != nil {
		log.Warn("webhook metadata unreadable", zap.Error(err))
	}
	orderID := meta.OrderID
	if orderID == "" && meta.Order != nil {
		orderID = meta.Order.OrderID
	}
	orderID = strings.ToUpper(strings.TrimSpace(orderID))
	outcome.OrderID = orderID
	if orderID == "" {
		log.Warn("charge without order id")
		p.recordEvent(ctx, event, body, outcome, "missing order id")
		return outcome, nil
	}
	if _, _, err := catalog.ParseOrderID(orderID); err != nil {
		log.Warn("charge with malformed order id", zap.String("order_id", orderID), zap.Error(err))
		p.recordEvent(ctx, event, body, outcome, "invalid order id")
		return outcome, nil
	}
	log = log.With(zap.String("order_id", orderID))

	rec, err := p.orders.FindOrder(ctx, orderID)
	if err != nil {
		log.Warn("order lookup failed, treating as unknown", zap.Error(err))
		rec = nil
	}

	var detail string
	switch {
	case rec != nil && rec.Status == db_models.OrderRecordPending:
		outcome.Action = WebhookConfirmed
		outcome.Result, err = p.orders.ConfirmOrder(ctx, orderID, event.Data.Reference)
	case rec != nil:
		outcome.Action = WebhookAlreadyConfirmed
		detail = "order already " + string(rec.Status)
	case meta.Order != nil:
		order := *meta.Order
		order.OrderID = orderID
		order.PaymentReference = event.Data.Reference
		if order.Total.IsZero() && event.Data.Amount > 0 {
			order.Total = decimal.New(event.Data.Amount, -2)
		}
		outcome.Action = WebhookRecovered
		outcome.Result, err = p.orders.ProcessOrder(ctx, order, StatusWebhookRecovery, nil)
	default:
		outcome.Action = WebhookConfirmed
		detail = "no stored order and no order payload"
		outcome.Result, err = p.orders.ConfirmOrder(ctx, orderID, event.Data.Reference)
	}
	if err != nil {
		log.Error("webhook processing failed", zap.String("action", outcome.Action), zap.Error(err))
		detail = err.Error()
		outcome.Action = WebhookIgnored
		outcome.Result = nil
	}

	p.recordEvent(ctx, event, body, outcome, detail)
	log.Info("webhook handled", zap.String("action", outcome.Action))
	return outcome, nil
}

func (p *paymentService) recordEvent(ctx context.Context, event request_models.PaystackEvent, body []byte, outcome *WebhookOutcome, detail string) {
	ev := &db_models.PaymentWebhookEvent{
		Provider:  p.cfg.ProviderName,
		EventType: event.Event,
		Reference: event.Data.Reference,
		OrderID:   outcome.OrderID,
		Outcome:   outcome.Action,
		Detail:    detail,
		Payload:   body,
	}
	if err := p.events.RecordWebhookEvent(ctx, ev); err != nil {
		p.logger.Warn("webhook event not stored", zap.String("reference", event.Data.Reference), zap.Error(err))
	}
}
