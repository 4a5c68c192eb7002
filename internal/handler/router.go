package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"experience-booking/internal/handler/api"
	"experience-booking/internal/handler/middleware"
	"experience-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Pricing      *api.PricingHandler
	Booking      *api.BookingHandler
	Wizard       *api.WizardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/activities/:id/slots", Handler: h.Availability.ListSlots},
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Pricing.ValidateCoupon},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Pricing.Quote, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}

		wizard := apiGroup.Group("/wizard")
		wizard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Wizard.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Wizard.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Wizard.Select},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Wizard.Abandon},
				{Method: http.MethodPost, Path: "/:id/next", Handler: h.Wizard.Next},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.Wizard.Back},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Wizard.Submit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
