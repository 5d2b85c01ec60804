package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, venueHandler *api.VenueHandler, reservationHandler *api.ReservationHandler, waitlistHandler *api.WaitlistHandler, adminMiddleware *middleware.AdminMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, venueHandler, reservationHandler, waitlistHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, venueHandler *api.VenueHandler, reservationHandler *api.ReservationHandler, waitlistHandler *api.WaitlistHandler, adminMiddleware *middleware.AdminMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.ListVenues},
				{Method: http.MethodGet, Path: "/:slug", Handler: venueHandler.GetVenue},
				{Method: http.MethodGet, Path: "/:slug/availability", Handler: reservationHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:slug/slots", Handler: reservationHandler.AvailableSlots},
				{Method: http.MethodPost, Path: "/:slug/reservations", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/:slug/reservations", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:slug/reservations/:reference", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:slug/waitlist", Handler: waitlistHandler.JoinWaitlist},
			})

			adminOnly := venues.Group("")
			adminOnly.Use(adminMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: venueHandler.CreateVenue},
				{Method: http.MethodPost, Path: "/:slug/tables", Handler: venueHandler.AddTables},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPatch, Path: "/:reference", Handler: reservationHandler.ModifyReservation},
				{Method: http.MethodDelete, Path: "/:reference", Handler: reservationHandler.CancelReservation},
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
