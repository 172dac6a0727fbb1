package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/infra/metrics"
	"hotel-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Rooms        *api.RoomHandler
	Reservations *api.ReservationHandler
	Bills        *api.BillHandler
}

// Observability is optional; a nil HTTP or Gatherer disables the matching piece.
type Observability struct {
	HTTP     *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, obs Observability) {
	setupMiddleware(engine, cfg, obs)
	setupRoutes(engine, cfg, h, obs)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled && obs.HTTP != nil {
		engine.Use(middleware.HTTPMetrics(obs.HTTP))
	}
	engine.Use(middleware.Identity())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, obs Observability) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && obs.Gatherer != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(obs.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/available", Handler: h.Rooms.SearchAvailable},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservations.Modify},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservations.Cancel},
			{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Reservations.ConfirmPayment},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservations.CheckIn},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservations.CheckOut},
			{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Reservations.NoShow},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservations.AdminSearch},
		})

		bills := apiGroup.Group("/bills")
		addRoutes(bills, []route{
			{Method: http.MethodPost, Path: "/generate/:reservationId", Handler: h.Bills.Generate},
			{Method: http.MethodGet, Path: "/reservation/:reservationId", Handler: h.Bills.GetByReservation},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bills.Get},
			{Method: http.MethodPost, Path: "/:id/pay", Handler: h.Bills.Pay},
			{Method: http.MethodPost, Path: "/:id/items", Handler: h.Bills.AddItem},
			{Method: http.MethodDelete, Path: "/:id/items/:itemId", Handler: h.Bills.RemoveItem},
			{Method: http.MethodPatch, Path: "/:id/metrics", Handler: h.Bills.UpdateMetrics},
		})
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
