package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"shootbook/internal/catalog"
	"shootbook/internal/models/db_models"
	"shootbook/internal/models/request_models"
	"shootbook/internal/models/response_models"
	"shootbook/internal/repositories"
	"shootbook/pkg/utils"
)

var nowFunc = time.Now

type OrderService interface {
	ProcessOrder(ctx context.Context, order request_models.OrderPayload, status OrderStatus, photos []Photo) (*response_models.OrderResult, error)
	ConfirmOrder(ctx context.Context, orderID, reference string) (*response_models.OrderResult, error)
	FindOrder(ctx context.Context, orderID string) (*db_models.OrderRecord, error)
}

type OrderServiceConfig struct {
	// ImageSendDelay is waited between consecutive photo notifications.
	ImageSendDelay time.Duration
}

type orderService struct {
	pricing  PricingService
	catalog  *catalog.Catalog
	notifier Notifier
	ledger   LedgerWriter
	orders   repositories.OrderRepositoryInterface
	cfg      OrderServiceConfig
	logger   *zap.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewOrderService(
	pricing PricingService,
	c *catalog.Catalog,
	notifier Notifier,
	ledger LedgerWriter,
	orders repositories.OrderRepositoryInterface,
	cfg OrderServiceConfig,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		pricing:  pricing,
		catalog:  c,
		notifier: notifier,
		ledger:   ledger,
		orders:   orders,
		cfg:      cfg,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// ProcessOrder verifies the price according to the status, notifies the
// studio, sends the photos one by one and appends the order to the ledger.
// Only a failed price check on a confirmed order is fatal; every other
// downstream failure becomes a warning on the result.
func (s *orderService) ProcessOrder(ctx context.Context, order request_models.OrderPayload, status OrderStatus, photos []Photo) (*response_models.OrderResult, error) {
	policy, err := status.pricePolicy()
	if err != nil {
		return nil, utils.NewValidationError("status", "%v", err)
	}

	order = sanitizeOrder(order)
	if order.OrderID == "" {
		return nil, utils.NewValidationError("orderId", "is required")
	}
	id, country, err := catalog.ParseOrderID(order.OrderID)
	if err != nil {
		return nil, utils.NewValidationError("orderId", "must look like RAD-123456-ABC")
	}
	order.OrderID = id

	log := s.logger.With(zap.String("order_id", order.OrderID), zap.Stringer("status", status))
	result := &response_models.OrderResult{OrderID: order.OrderID, Status: status.String()}
	warn := func(stage string, err error) {
		log.Warn("order stage failed", zap.String("stage", stage), zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", stage, err))
	}

	currency := ""
	if table, err := s.catalog.Lookup(country); err == nil {
		currency = table.Currency
	}
	if phone, ok := utils.NormalizePhone(order.Phone, ""); ok {
		order.Phone = phone
	} else if policy != priceWarn {
		return nil, utils.NewValidationError("phone", "is not a valid phone number")
	}

	var verification *response_models.PriceVerification
	switch policy {
	case priceSkip:
	case priceEnforce:
		verification, err = s.pricing.VerifyOrderPrice(ctx, priceCheckFor(country, order))
		if err != nil {
			return nil, err
		}
		if !verification.Valid {
			log.Warn("price mismatch rejected",
				zap.String("claimed", verification.ClientTotal.String()),
				zap.String("expected", verification.ServerTotal.String()))
			return nil, priceMismatch(verification)
		}
		result.Verified = true
	case priceWarn:
		verification, err = s.pricing.VerifyOrderPrice(ctx, priceCheckFor(country, order))
		if err != nil {
			warn("price check", err)
			break
		}
		if !verification.Valid {
			warn("price check", fmt.Errorf("claimed %s, expected %s", verification.ClientTotal, verification.ServerTotal))
		}
		result.Verified = verification.Valid
	}

	if err := s.notifier.SendMessage(ctx, FormatOrderNotification(order, status, currency, verification)); err != nil {
		warn("notification", err)
	}

	for i, p := range s.photoQueue(order, photos) {
		if i > 0 {
			if err := s.sleep(ctx, s.cfg.ImageSendDelay); err != nil {
				warn("photos", err)
				break
			}
		}
		if err := s.notifier.SendPhoto(ctx, p); err != nil {
			warn(fmt.Sprintf("photo %d", i+1), err)
		}
	}

	if err := s.ledger.Append(ctx, orderLedgerRow(order, status, photos)); err != nil {
		warn("ledger", err)
	}

	if err := s.orders.Save(ctx, orderRecord(order, country, status, result.Verified)); err != nil {
		warn("order store", err)
	}

	result.Success = true
	log.Info("order processed", zap.Bool("verified", result.Verified), zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

// ConfirmOrder records a payment for an order without re-checking the
// price. Repeated calls send repeated confirmations.
func (s *orderService) ConfirmOrder(ctx context.Context, orderID, reference string) (*response_models.OrderResult, error) {
	orderID = strings.ToUpper(utils.SanitizeText(orderID, 32))
	if orderID == "" {
		return nil, utils.NewValidationError("orderId", "is required")
	}
	if _, _, err := catalog.ParseOrderID(orderID); err != nil {
		return nil, utils.NewValidationError("orderId", "must look like RAD-123456-ABC")
	}
	if err := ValidatePaymentReference(reference); err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("order_id", orderID), zap.String("reference", reference))
	result := &response_models.OrderResult{OrderID: orderID, Status: StatusConfirmed.String()}
	warn := func(stage string, err error) {
		log.Warn("confirmation stage failed", zap.String("stage", stage), zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", stage, err))
	}

	if err := s.notifier.SendMessage(ctx, FormatConfirmationNotification(orderID, reference)); err != nil {
		warn("notification", err)
	}

	row := LedgerRow{
		OrderID:   orderID,
		Status:    StatusConfirmed.String(),
		Timestamp: nowFunc(),
		Notes:     "Payment ref: " + reference,
	}
	if err := s.ledger.Append(ctx, row); err != nil {
		warn("ledger", err)
	}

	found, err := s.orders.MarkConfirmed(ctx, orderID, reference, nowFunc().Unix())
	switch {
	case err != nil:
		warn("order store", err)
	case !found:
		warn("order store", utils.ErrOrderNotFound)
	}

	result.Success = true
	log.Info("order confirmed", zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

func (s *orderService) FindOrder(ctx context.Context, orderID string) (*db_models.OrderRecord, error) {
	rec, err := s.orders.FindByOrderID(ctx, strings.ToUpper(strings.TrimSpace(orderID)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return rec, nil
}

// photoQueue lists uploaded files first, then photos referenced by URL.
func (s *orderService) photoQueue(order request_models.OrderPayload, photos []Photo) []Photo {
	queue := make([]Photo, 0, len(photos)+len(order.PhotoURLs))
	total := len(photos) + len(order.PhotoURLs)
	for _, p := range photos {
		p.Caption = fmt.Sprintf("%s photo %d/%d", order.OrderID, len(queue)+1, total)
		queue = append(queue, p)
	}
	for _, u := range order.PhotoURLs {
		queue = append(queue, Photo{
			URL:     u,
			Caption: fmt.Sprintf("%s photo %d/%d", order.OrderID, len(queue)+1, total),
		})
	}
	return queue
}

func priceCheckFor(country catalog.Country, order request_models.OrderPayload) PriceCheck {
	return PriceCheck{
		Country:      country,
		Category:     order.Category,
		PackageID:    order.PackageID,
		GroupSize:    order.GroupSize,
		AddOns:       order.AddOns,
		ClaimedTotal: order.Total,
	}
}

func sanitizeOrder(o request_models.OrderPayload) request_models.OrderPayload {
	o.OrderID = strings.ToUpper(utils.SanitizeText(o.OrderID, 32))
	o.Phone = utils.SanitizeText(o.Phone, 20)
	o.Category = utils.SanitizeText(o.Category, 64)
	o.PackageID = utils.SanitizeText(o.PackageID, 64)
	o.PackageName = utils.SanitizeText(o.PackageName, 120)
	o.AddOns = utils.SanitizeList(o.AddOns, 64)
	o.Hairstyle = utils.SanitizeText(o.Hairstyle, 120)
	o.Makeup = utils.SanitizeText(o.Makeup, 120)
	o.Background = utils.SanitizeText(o.Background, 120)
	o.Notes = utils.SanitizeText(o.Notes, utils.DefaultTextLimit)
	o.PaymentReference = utils.SanitizeText(o.PaymentReference, 100)
	o.PhotoURLs = utils.SanitizeList(o.PhotoURLs, 2048)
	return o
}

func orderLedgerRow(o request_models.OrderPayload, status OrderStatus, photos []Photo) LedgerRow {
	pkg := o.PackageID
	if o.PackageName != "" {
		pkg = o.PackageName
	}
	outfits := ""
	if o.Outfits > 0 {
		outfits = strconv.Itoa(o.Outfits)
	}
	return LedgerRow{
		OrderID:     o.OrderID,
		Phone:       o.Phone,
		Package:     pkg,
		Outfits:     outfits,
		Amount:      o.Total.String(),
		Hairstyle:   o.Hairstyle,
		Makeup:      o.Makeup,
		Background:  o.Background,
		Status:      status.String(),
		Timestamp:   nowFunc(),
		ShootType:   o.Category,
		AddOns:      strings.Join(o.AddOns, ", "),
		Notes:       o.Notes,
		PhotoStatus: photoStatus(len(photos), len(o.PhotoURLs)),
	}
}

func photoStatus(files, links int) string {
	switch {
	case files == 0 && links == 0:
		return "none"
	case links == 0:
		return fmt.Sprintf("%d uploaded", files)
	case files == 0:
		return fmt.Sprintf("%d linked", links)
	}
	return fmt.Sprintf("%d uploaded, %d linked", files, links)
}

func orderRecord(o request_models.OrderPayload, country catalog.Country, status OrderStatus, verified bool) *db_models.OrderRecord {
	payload, _ := json.Marshal(o)
	rec := &db_models.OrderRecord{
		OrderID:          o.OrderID,
		Country:          string(country),
		Phone:            o.Phone,
		Category:         o.Category,
		PackageID:        o.PackageID,
		Total:            o.Total.String(),
		Status:           status.recordStatus(),
		PaymentReference: o.PaymentReference,
		PriceVerified:    verified,
		Payload:          payload,
	}
	if status != StatusPending {
		at := nowFunc().Unix()
		rec.ConfirmedAt = &at
	}
	return rec
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
