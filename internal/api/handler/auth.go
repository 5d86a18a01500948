package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login performs the stateless credential check. There is no session or
// token; the client keeps the returned role and sends it back on
// role-filtered requests.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	// A malformed body carries no valid credentials; let the lookup fail.
	_ = c.ShouldBindJSON(&req)

	user, err := h.Directory.Authenticate(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role})
}

type addUserRequest struct {
	AdminUsername string `json:"adminUsername"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Role          string `json:"role"`
}

// AddUser creates a directory account on behalf of an administrator.
func (h *Handler) AddUser(c *gin.Context) {
	var req addUserRequest
	_ = c.ShouldBindJSON(&req)

	user, err := h.Directory.CreateUser(req.AdminUsername, req.Username, req.Password, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
