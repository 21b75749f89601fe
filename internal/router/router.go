package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "flota/docs"
	"flota/internal/handler"
	"flota/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health      *handler.HealthHandler
	Fleet       *handler.FleetHandler
	Vehicle     *handler.VehicleHandler
	Transporter *handler.TransporterHandler
	Transport   *handler.TransportHandler
	Route       *handler.RouteHandler
	CMR         *handler.CMRHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(log *logrus.Logger, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	fleets := v1.Group("/fleets")
	fleets.POST("", h.Fleet.Create)
	fleets.GET("", h.Fleet.List)
	fleets.GET("/:id", h.Fleet.GetByID)
	fleets.PUT("/:id", h.Fleet.Update)
	fleets.DELETE("/:id", h.Fleet.Delete)
	fleets.POST("/:id/transporters", h.Fleet.AddTransporter)
	fleets.POST("/:id/vehicles", h.Fleet.AddVehicle)
	fleets.GET("/:id/stats", h.Fleet.Stats)

	vehicles := v1.Group("/vehicles")
	vehicles.POST("", h.Vehicle.Create)
	vehicles.GET("", h.Vehicle.List)
	vehicles.GET("/:id", h.Vehicle.GetByID)
	vehicles.PUT("/:id", h.Vehicle.Update)
	vehicles.DELETE("/:id", h.Vehicle.Delete)
	vehicles.PATCH("/:id/status", h.Vehicle.ChangeStatus)
	vehicles.PATCH("/:id/fleet", h.Vehicle.AssignToFleet)
	vehicles.DELETE("/:id/fleet", h.Vehicle.RemoveFromFleet)
	vehicles.PATCH("/:id/transporter", h.Vehicle.AssignTransporter)
	vehicles.DELETE("/:id/transporter", h.Vehicle.ReleaseTransporter)

	transporters := v1.Group("/transporters")
	transporters.POST("", h.Transporter.Create)
	transporters.GET("", h.Transporter.List)
	transporters.GET("/:id", h.Transporter.GetByID)
	transporters.PATCH("/:id/fleet", h.Transporter.AssignToFleet)
	transporters.DELETE("/:id/fleet", h.Transporter.RemoveFromFleet)
	transporters.GET("/:id/availability", h.Transporter.Availability)

	transports := v1.Group("/transports")
	transports.POST("", h.Transport.Create)
	transports.GET("", h.Transport.List)
	transports.PUT("/:id", h.Transport.Update)

	v1.POST("/routes/distance", h.Route.Distance)

	// Static segments (extract, validate, export, health) take precedence
	// over :id in gin's tree.
	cmr := v1.Group("/documents/cmr")
	cmr.POST("/extract", h.CMR.Extract)
	cmr.POST("/validate", h.CMR.Validate)
	cmr.GET("", h.CMR.List)
	cmr.GET("/export", h.CMR.Export)
	cmr.GET("/health", h.CMR.Health)
	cmr.GET("/:id", h.CMR.GetByID)
	cmr.GET("/:id/download", h.CMR.Download)

	return r
}
