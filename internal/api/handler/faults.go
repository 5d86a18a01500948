package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SubmitFault files a new pending fault report. The media attachment is
// optional; everything else is accepted as-is.
func (h *Handler) SubmitFault(c *gin.Context) {
	username := c.PostForm("username")
	issue := c.PostForm("issue")
	solution := c.PostForm("solution")
	media := optionalFile(c, "media")

	fault, err := h.Moderation.Submit(username, issue, solution, media)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": fault.ID})
}

// ListApprovedFaults returns the public knowledge base, newest first.
func (h *Handler) ListApprovedFaults(c *gin.Context) {
	faults, err := h.Moderation.ListApproved()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, faults)
}

// ListPendingFaults returns reports awaiting moderation.
func (h *Handler) ListPendingFaults(c *gin.Context) {
	faults, err := h.Moderation.ListPending()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, faults)
}

// ApproveFault marks a report as approved. The response keeps the legacy
// numeric update count: 1 for a real transition, 0 for an unknown id or a
// report already approved. A non-numeric id behaves like an unknown one.
func (h *Handler) ApproveFault(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"updated": 0})
		return
	}

	outcome, err := h.Moderation.Approve(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": outcome.UpdatedCount()})
}

// optionalFile returns the named multipart file, or nil when the request
// carries none (or no parseable multipart body at all).
func optionalFile(c *gin.Context, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}
