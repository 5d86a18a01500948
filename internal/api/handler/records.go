package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type driverLogRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// AddDriverLog records a driver shift entry.
func (h *Handler) AddDriverLog(c *gin.Context) {
	var req driverLogRequest
	_ = c.ShouldBindJSON(&req)

	log, err := h.Records.AddDriverLog(req.Date, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": log.ID})
}

// ListDriverLogs returns shift entries for one date.
func (h *Handler) ListDriverLogs(c *gin.Context) {
	logs, err := h.Records.DriverLogsByDate(c.Param("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

type announcementRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"created_by"`
}

// AddAnnouncement records a portal-wide message.
func (h *Handler) AddAnnouncement(c *gin.Context) {
	var req announcementRequest
	_ = c.ShouldBindJSON(&req)

	msg, err := h.Records.AddAnnouncement(req.Title, req.Content, req.CreatedBy)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": msg.ID})
}

// ListAnnouncements returns all messages, newest first.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	msgs, err := h.Records.Announcements()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// AddLocationPhoto records a location entry with an optional image upload.
func (h *Handler) AddLocationPhoto(c *gin.Context) {
	department := c.PostForm("department")
	title := c.PostForm("title")
	image := optionalFile(c, "image")

	photo, err := h.Records.AddLocationPhoto(department, title, image)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": photo.ID})
}

// ListLocationPhotos returns location entries for one department.
func (h *Handler) ListLocationPhotos(c *gin.Context) {
	photos, err := h.Records.LocationPhotosByDepartment(c.Param("department"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}
