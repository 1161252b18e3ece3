package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-registry/internal/handler/api"
	"hotel-registry/internal/handler/middleware"
	"hotel-registry/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Customers    *api.CustomerHandler
	Hotels       *api.HotelHandler
	Reservations *api.ReservationHandler
}

func NewHandlers(auth *api.AuthHandler, customers *api.CustomerHandler, hotels *api.HotelHandler, reservations *api.ReservationHandler) Handlers {
	return Handlers{
		Auth:         auth,
		Customers:    customers,
		Hotels:       hotels,
		Reservations: reservations,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

// Reads are public; every mutation requires an operator token.
func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
		})

		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customers.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "", Handler: h.Customers.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customers.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Customers.Update, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customers.Delete, Mw: requireAuth},
		})

		addRoutes(apiGroup.Group("/hotels"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Hotels.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "", Handler: h.Hotels.List},
			{Method: http.MethodGet, Path: "/:name", Handler: h.Hotels.Get},
			{Method: http.MethodPatch, Path: "/:name", Handler: h.Hotels.Update, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/:name", Handler: h.Hotels.Delete, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/:name/rooms", Handler: h.Hotels.CreateRoom, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/:name/rooms/:number/reserve", Handler: h.Hotels.ReserveRoom, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/:name/rooms/:number/cancel", Handler: h.Hotels.CancelRoom, Mw: requireAuth},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Cancel, Mw: requireAuth},
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
