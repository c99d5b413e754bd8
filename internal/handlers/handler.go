package handlers

import (
	"sugar_tracker/internal/logger"
	"sugar_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil logger discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.metricsMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerMeasurementRoutes(api)
		h.registerAnalysisRoutes(api)
		api.GET("/ws/analysis", h.wsAnalysis)
	}
}

func (h *Handler) registerMeasurementRoutes(api *gin.RouterGroup) {
	measurements := api.Group("/measurements")
	{
		// Body example: {"taken_at":"2025-04-02 07:05","value":95,"mode":"fasting"}
		measurements.POST("", h.recordMeasurement)
		measurements.GET("", h.listMeasurements)
		measurements.DELETE("/:id", h.deleteMeasurement)
	}
}

func (h *Handler) registerAnalysisRoutes(api *gin.RouterGroup) {
	a := api.Group("/analysis")
	{
		a.GET("", h.getAnalysis)
		a.GET("/histogram.png", h.getHistogram)
	}
}
