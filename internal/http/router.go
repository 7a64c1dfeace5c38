// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripkit/internal/http/handlers"
	"tripkit/internal/http/middleware"
	"tripkit/internal/modules/planner"
	"tripkit/internal/modules/record"
	"tripkit/internal/modules/trip"
)

type RouterDeps struct {
	Trips     *trip.Service
	Records   *record.Service
	AIStatus  *planner.StatusService
	UploadDir string
	MaxUpload int64
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	if deps.MaxUpload > 0 {
		r.MaxMultipartMemory = deps.MaxUpload
	}

	tripHandler := handlers.NewTripHandler(deps.Trips, deps.Records)
	r.GET("/api/trips", tripHandler.List)
	r.POST("/api/trips", tripHandler.Create)
	r.GET("/api/trips/:id", tripHandler.Detail)
	r.PUT("/api/trips/:id", tripHandler.Update)
	r.DELETE("/api/trips/:id", tripHandler.Delete)

	recordHandler := handlers.NewRecordHandler(deps.Records)
	r.POST("/api/records", recordHandler.Add)
	r.DELETE("/api/records/:kind/:id", recordHandler.Delete)
	r.POST("/api/checklists/:id/toggle", recordHandler.ToggleChecklist)
	r.POST("/api/items/:id/toggle", recordHandler.ToggleItem)
	r.POST("/api/wishlists/:id/toggle", recordHandler.ToggleWishlist)

	aiHandler := handlers.NewAIHandler(deps.AIStatus)
	r.GET("/api/ai/status", aiHandler.Status)

	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
