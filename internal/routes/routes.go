package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/config"
	"github.com/BruksfildServices01/salon-console/internal/dashboard"
	"github.com/BruksfildServices01/salon-console/internal/handlers"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/session"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

type Deps struct {
	Config *config.Config
	API    *apiclient.Client
	Store  session.Store
	Logger *slog.Logger

	// DB é opcional; sem ele a auditoria vai só para o log.
	DB *gorm.DB
}

// RegisterRoutes monta o console inteiro. O dispatcher devolvido deve
// ser fechado no shutdown para drenar a auditoria pendente.
func RegisterRoutes(r *gin.Engine, deps Deps) *audit.Dispatcher {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	models.SetLocation(loc)

	var auditLogger *audit.Logger
	var sink audit.Sink = audit.LogSink{Logger: logger}
	if deps.DB != nil {
		auditLogger = audit.New(deps.DB)
		sink = auditLogger
	}
	auditDispatcher := audit.NewDispatcher(sink, logger)

	holder := session.NewHolder(deps.API.For(nil).Users, deps.Store, cfg.SessionTTL, logger)
	dashboardService := dashboard.NewService(deps.API, loc, logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(holder, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler()
	clientHandler := handlers.NewClientHandler(deps.API, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(deps.API, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(deps.API, auditDispatcher, loc)
	financeHandler := handlers.NewFinanceHandler(deps.API, auditDispatcher)
	paymentHandler := handlers.NewPaymentHandler(deps.API, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	appWebHandler := handlers.NewAppWebHandler(holder, dashboardService, cfg)

	// ======================================================
	// ROTAS WEB (HTML)
	// ======================================================
	r.SetHTMLTemplate(handlers.Templates())

	webApp := r.Group("/web/app")
	{
		webApp.GET("/login", appWebHandler.LoginPage)
		webApp.GET("/dashboard", appWebHandler.Dashboard)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(holder, cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/dashboard", dashboardHandler.Get)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/professionals", professionalHandler.List)
			secured.POST("/professionals", professionalHandler.Create)
			secured.GET("/professionals/:id", professionalHandler.Get)
			secured.PATCH("/professionals/:id", professionalHandler.Update)
			secured.DELETE("/professionals/:id", professionalHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/day", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// FINANCEIRO / PAGAMENTOS
			// ------------------------------
			secured.GET("/finance", financeHandler.List)
			secured.POST("/finance", financeHandler.Create)
			secured.GET("/finance/report", financeHandler.Report)
			secured.PATCH("/finance/:id", financeHandler.Update)
			secured.DELETE("/finance/:id", financeHandler.Delete)

			secured.GET("/payments", paymentHandler.List)
			secured.POST("/payments", paymentHandler.Create)
			secured.GET("/payments/:id", paymentHandler.Get)
			secured.PATCH("/payments/:id", paymentHandler.Update)
			secured.DELETE("/payments/:id", paymentHandler.Delete)

			secured.GET("/reconciliation", financeHandler.Reconcile)

			if auditLogger != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc)
				secured.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return auditDispatcher
}
