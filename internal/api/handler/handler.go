// Package handler is the HTTP boundary: it decodes requests, calls the
// portal services and maps domain errors to transport responses. All
// failures use the uniform {"error": message} envelope.
package handler

import (
	"github.com/gin-gonic/gin"

	"fleetportal/backend/internal/apperr"
	"fleetportal/backend/internal/directory"
	"fleetportal/backend/internal/moderation"
	"fleetportal/backend/internal/records"
)

// Handler holds the portal services behind the HTTP surface.
type Handler struct {
	Directory  *directory.Service
	Moderation *moderation.Service
	Records    *records.Service
}

// NewHandler creates a new Handler.
func NewHandler(dir *directory.Service, mod *moderation.Service, rec *records.Service) *Handler {
	return &Handler{Directory: dir, Moderation: mod, Records: rec}
}

// RegisterRoutes attaches every portal route to the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)

	r.POST("/faults", h.SubmitFault)
	r.GET("/faults", h.ListApprovedFaults)
	r.GET("/faults/pending", h.ListPendingFaults)
	r.POST("/faults/approve/:id", h.ApproveFault)

	r.POST("/courses/file", h.SubmitCourseByFile)
	r.POST("/courses/manual", h.SubmitCourseManually)
	r.POST("/courses", h.ListCourses)

	r.POST("/drivers", h.AddDriverLog)
	r.GET("/drivers/:date", h.ListDriverLogs)

	r.POST("/messages", h.AddAnnouncement)
	r.GET("/messages", h.ListAnnouncements)

	r.POST("/locations", h.AddLocationPhoto)
	r.GET("/locations/:department", h.ListLocationPhotos)

	r.POST("/users/add", h.AddUser)
}

// fail sends the uniform error envelope with the status mapped from the
// error taxonomy.
func fail(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
