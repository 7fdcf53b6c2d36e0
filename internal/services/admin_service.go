package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"shootbook/internal/models/db_models"
	"shootbook/internal/models/request_models"
	"shootbook/internal/models/response_models"
	"shootbook/internal/repositories"
	"shootbook/pkg/utils"
)

const AdminRole = "admin"

type AdminServiceInterface interface {
	Login(ctx context.Context, req request_models.AdminLoginRequest) (*response_models.LoginResponse, error)
	ListOrders(ctx context.Context, status string, page, pageSize int) (*response_models.Page[response_models.OrderRecordResponse], error)
	GetOrder(ctx context.Context, orderID string) (*response_models.OrderRecordResponse, error)
}

type AdminService struct {
	passwordHash string
	tokens       *utils.TokenIssuer
	ttl          time.Duration
	orderRepo    repositories.OrderRepositoryInterface
	logger       *zap.Logger
}

func NewAdminService(passwordHash string, tokens *utils.TokenIssuer, ttl time.Duration, orderRepo repositories.OrderRepositoryInterface, logger *zap.Logger) AdminServiceInterface {
	return &AdminService{
		passwordHash: passwordHash,
		tokens:       tokens,
		ttl:          ttl,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

func (a *AdminService) Login(ctx context.Context, req request_models.AdminLoginRequest) (*response_models.LoginResponse, error) {
	if a.passwordHash == "" {
		return nil, utils.ErrMissingConfig
	}
	if err := utils.ComparePasswords(a.passwordHash, req.Password); err != nil {
		a.logger.Warn("admin login rejected")
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(AdminRole, AdminRole)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(a.ttl).Unix(),
	}, nil
}

func (a *AdminService) ListOrders(ctx context.Context, status string, page, pageSize int) (*response_models.Page[response_models.OrderRecordResponse], error) {
	if status != "" {
		st, err := ParseOrderStatus(status)
		if err != nil {
			return nil, utils.NewValidationError("status", "%v", err)
		}
		status = st.String()
	}

	records, total, err := a.orderRepo.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.OrderRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toOrderRecordResponse(r))
	}
	return &response_models.Page[response_models.OrderRecordResponse]{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (a *AdminService) GetOrder(ctx context.Context, orderID string) (*response_models.OrderRecordResponse, error) {
	rec, err := a.orderRepo.FindByOrderID(ctx, strings.ToUpper(utils.SanitizeText(orderID, 32)))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrOrderNotFound
	}
	resp := toOrderRecordResponse(*rec)
	return &resp, nil
}

func toOrderRecordResponse(r db_models.OrderRecord) response_models.OrderRecordResponse {
	resp := response_models.OrderRecordResponse{
		OrderID:          r.OrderID,
		Country:          r.Country,
		Phone:            r.Phone,
		Category:         r.Category,
		PackageID:        r.PackageID,
		Total:            r.Total,
		Status:           string(r.Status),
		PaymentReference: r.PaymentReference,
		PriceVerified:    r.PriceVerified,
		CreatedAt:        utils.FormatRFC3339WAT(time.Unix(r.CreatedAt, 0)),
	}
	if r.ConfirmedAt != nil {
		resp.ConfirmedAt = utils.FormatRFC3339WAT(time.Unix(*r.ConfirmedAt, 0))
	}
	return resp
}
