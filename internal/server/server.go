package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/nexcubelabs/nexcube/internal/auth/domain"
	catalogdomain "github.com/nexcubelabs/nexcube/internal/catalog/domain"
	clientdomain "github.com/nexcubelabs/nexcube/internal/client/domain"
	"github.com/nexcubelabs/nexcube/internal/config"
	financedomain "github.com/nexcubelabs/nexcube/internal/finance/domain"
	invoicedomain "github.com/nexcubelabs/nexcube/internal/invoice/domain"
	"github.com/nexcubelabs/nexcube/internal/observability"
	reportdomain "github.com/nexcubelabs/nexcube/internal/report/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	log    *zap.Logger
	cfg    config.Config

	authSvc    authdomain.Provider
	clientSvc  clientdomain.Service
	invoiceSvc invoicedomain.Service
	financeSvc financedomain.Service
	catalogSvc catalogdomain.Service
	reportSvc  reportdomain.Service

	contactLimiter *rateLimiter
}

type ServerParam struct {
	fx.In

	Engine  *gin.Engine
	Log     *zap.Logger
	Cfg     config.Config
	Redis   *redis.Client
	Auth    authdomain.Provider
	Client  clientdomain.Service
	Invoice invoicedomain.Service
	Finance financedomain.Service
	Catalog catalogdomain.Service
	Report  reportdomain.Service
}

// NewEngine builds the shared gin engine with logging, recovery, and metrics
// middleware installed.
func NewEngine(cfg config.Config, log *zap.Logger, metrics *observability.HTTPMetrics) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(observability.RequestLogger(log))
	engine.Use(observability.GinMiddleware(metrics))
	return engine
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	}
	return gin.ReleaseMode
}

func NewServer(p ServerParam) *Server {
	return &Server{
		engine:         p.Engine,
		log:            p.Log.Named("server"),
		cfg:            p.Cfg,
		authSvc:        p.Auth,
		clientSvc:      p.Client,
		invoiceSvc:     p.Invoice,
		financeSvc:     p.Finance,
		catalogSvc:     p.Catalog,
		reportSvc:      p.Report,
		contactLimiter: newRateLimiter(p.Redis, p.Cfg.RateLimit.ContactLimit, p.Cfg.RateLimit.ContactWindow),
	}
}

// RegisterRoutes wires every HTTP route. Public routes serve the marketing
// site; everything under /api/admin requires a valid session.
func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", s.Healthz)
	s.engine.GET("/metrics", observability.MetricsHandler())

	api := s.engine.Group("/api")
	{
		api.GET("/packages", s.ListPackages)
		api.GET("/packages/:slug", s.GetPackage)
		api.GET("/portfolio", s.ListPortfolio)
		api.POST("/contact", s.rateLimitContact(), s.SubmitContact)

		api.POST("/auth/login", s.Login)
		api.POST("/auth/logout", s.requireSession(), s.Logout)
		api.GET("/auth/me", s.requireSession(), s.Me)
	}

	admin := api.Group("/admin", s.requireSession())
	{
		admin.GET("/clients", s.ListClients)
		admin.GET("/clients/:id", s.GetClient)
		admin.PUT("/clients/:id", s.UpdateClient)
		admin.DELETE("/clients/:id", s.DeleteClient)

		admin.POST("/invoices", s.CreateInvoice)
		admin.GET("/invoices", s.ListInvoices)
		admin.GET("/invoices/:id", s.GetInvoice)
		admin.GET("/invoices/:id/pdf", s.InvoicePDF)
		admin.PUT("/invoices/:id", s.UpdateInvoice)
		admin.DELETE("/invoices/:id", s.DeleteInvoice)

		admin.POST("/finances", s.CreateFinanceRecord)
		admin.GET("/finances", s.ListFinanceRecords)
		admin.GET("/finances/summary", s.FinanceSummary)
		admin.GET("/finances/:id", s.GetFinanceRecord)
		admin.PUT("/finances/:id", s.UpdateFinanceRecord)
		admin.DELETE("/finances/:id", s.DeleteFinanceRecord)

		admin.POST("/packages", s.CreatePackage)
		admin.PUT("/packages/:id", s.UpdatePackage)
		admin.DELETE("/packages/:id", s.DeletePackage)
		admin.POST("/portfolio", s.CreatePortfolio)
		admin.PUT("/portfolio/:id", s.UpdatePortfolio)
		admin.DELETE("/portfolio/:id", s.DeletePortfolio)

		admin.GET("/reports/dashboard", s.Dashboard)
		admin.GET("/reports/monthly", s.MonthlyReport)
	}
}

// Healthz reports process liveness.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
