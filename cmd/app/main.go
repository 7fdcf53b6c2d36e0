package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/cmd/fx/admin_fx"
	"shootbook/cmd/fx/config_fx"
	"shootbook/cmd/fx/content_fx"
	"shootbook/cmd/fx/controllers_fx"
	"shootbook/cmd/fx/db_fx"
	"shootbook/cmd/fx/ledger_fx"
	"shootbook/cmd/fx/logger_fx"
	"shootbook/cmd/fx/notify_fx"
	"shootbook/cmd/fx/order_fx"
	"shootbook/cmd/fx/payment_service_fx"
	"shootbook/cmd/fx/ratelimit_fx"
	"shootbook/cmd/fx/upload_fx"
	"shootbook/internal/api/controllers"
	"shootbook/internal/config"
	"shootbook/internal/services"
	"shootbook/pkg/middleware"
	"shootbook/pkg/ratelimit"
	"shootbook/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		ratelimit_fx.Module,
		notify_fx.Module,
		ledger_fx.Module,
		order_fx.Module,
		payment_service_fx.Module,
		upload_fx.Module,
		content_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Limiter *ratelimit.Limiter
	Rules   ratelimit_fx.Rules
	Tokens  *utils.TokenIssuer

	Health   *controllers.HealthController
	Orders   *controllers.OrderController
	Payments *controllers.PaymentController
	Uploads  *controllers.UploadController
	Catalog  *controllers.CatalogController
	Content  *controllers.ContentController
	Admin    *controllers.AdminController
}

func ProvideRouter(p RouterParams) (*gin.Engine, error) {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterValidators()

	r, err := newEngine(p.Config)
	if err != nil {
		return nil, err
	}
	r.Use(middleware.TraceIDMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.Config.AllowedOrigins...))

	RegisterRoutes(r, p)

	return r, nil
}

// newEngine only honours X-Forwarded-For from the configured proxies, so
// per-client rate limits key on the real peer address.
func newEngine(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	return r, nil
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	write := middleware.RateLimitMiddleware(p.Limiter, "write", p.Rules.Write, p.Logger)
	read := middleware.RateLimitMiddleware(p.Limiter, "read", p.Rules.Read, p.Logger)

	r.GET("/health", p.Health.Health)

	api := r.Group("/api")

	// Gateway callbacks are authenticated by signature and never throttled.
	api.POST("/payments/webhook", p.Payments.HandleWebhook)

	ordersGroup := api.Group("/orders", write)
	ordersGroup.POST("", p.Orders.SubmitOrder)
	ordersGroup.POST("/confirm", p.Orders.ConfirmOrder)

	api.POST("/uploads", write, p.Uploads.Upload)

	catalogGroup := api.Group("/catalog", read)
	catalogGroup.GET("/packages", p.Catalog.ListPackages)
	catalogGroup.GET("/addons", p.Catalog.ListAddOns)
	api.POST("/pricing/quote", read, p.Catalog.Quote)

	api.GET("/testimonials", read, p.Content.ListTestimonials)
	api.GET("/transformations", read, p.Content.ListTransformations)

	api.POST("/admin/login", write, p.Admin.Login)
	adminGroup := api.Group("/admin", read, middleware.JWTAuthMiddleware(p.Tokens), middleware.RoleMiddleware(services.AdminRole))
	adminGroup.GET("/orders", p.Admin.ListOrders)
	adminGroup.GET("/orders/:id", p.Admin.GetOrder)
}
