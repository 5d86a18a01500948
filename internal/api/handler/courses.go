package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitCourseByFile creates a file-backed course; the file is required.
func (h *Handler) SubmitCourseByFile(c *gin.Context) {
	title := c.PostForm("title")
	department := c.PostForm("department")
	file := optionalFile(c, "file")

	course, err := h.Moderation.SubmitCourseByFile(title, department, file)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": course.ID})
}

// SubmitCourseManually creates an authored course with an optional media
// attachment.
func (h *Handler) SubmitCourseManually(c *gin.Context) {
	title := c.PostForm("title")
	department := c.PostForm("department")
	content := c.PostForm("content")
	file := optionalFile(c, "file")

	course, err := h.Moderation.SubmitCourseManually(title, department, content, file)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": course.ID})
}

type listCoursesRequest struct {
	Role string `json:"role"`
}

// ListCourses returns the courses visible to the given role.
func (h *Handler) ListCourses(c *gin.Context) {
	var req listCoursesRequest
	_ = c.ShouldBindJSON(&req)

	courses, err := h.Moderation.ListCourses(req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}
