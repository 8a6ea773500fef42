package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"card-tracker/internal/handler/api"
	"card-tracker/internal/handler/middleware"
	"card-tracker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Card        *api.CardHandler
	CardRequest *api.CardRequestHandler
	Submission  *api.SubmissionHandler
	Coupon      *api.CouponHandler
	Event       *api.EventHandler
	Status      *api.StatusHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public surface: everything a card holder or applicant touches.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/auth/login", Handler: h.Auth.Login},
			{Method: http.MethodGet, Path: "/cards/resolve", Handler: h.Card.Resolve},
			{Method: http.MethodPost, Path: "/submissions", Handler: h.Submission.Create},
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate},
			{Method: http.MethodPost, Path: "/card-requests", Handler: h.CardRequest.Create},
			{Method: http.MethodGet, Path: "/status/:id", Handler: h.Status.Lookup},
		})

		authRequired := apiGroup.Group("/auth")
		authRequired.Use(authMiddleware.RequireAdmin())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/cards", Handler: h.Card.List},
				{Method: http.MethodPost, Path: "/cards", Handler: h.Card.Create},
				{Method: http.MethodPost, Path: "/cards/:id/revoke", Handler: h.Card.Revoke},
				{Method: http.MethodDelete, Path: "/cards/:id", Handler: h.Card.Delete},
				{Method: http.MethodGet, Path: "/cards/:id/pdf", Handler: h.Card.DownloadPDF},

				{Method: http.MethodGet, Path: "/card-requests", Handler: h.CardRequest.List},
				{Method: http.MethodPost, Path: "/card-requests/:id/approve", Handler: h.CardRequest.Approve},
				{Method: http.MethodPost, Path: "/card-requests/:id/deny", Handler: h.CardRequest.Deny},

				{Method: http.MethodGet, Path: "/submissions", Handler: h.Submission.List},
				{Method: http.MethodPost, Path: "/submissions/:id/approve", Handler: h.Submission.Approve},
				{Method: http.MethodPost, Path: "/submissions/:id/deny", Handler: h.Submission.Deny},
				{Method: http.MethodGet, Path: "/submissions/export.csv", Handler: h.Submission.ExportCSV},

				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodDelete, Path: "/coupons/:id", Handler: h.Coupon.Delete},

				{Method: http.MethodGet, Path: "/events", Handler: h.Event.List},
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
