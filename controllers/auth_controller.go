package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"matsal-partner-api/pkg/resp"
	"matsal-partner-api/services"
	"matsal-partner-api/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid email or password")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		resp.Unauthorized(c, "not authenticated")
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// POST /auth/refresh
func (ctl *AuthController) Refresh(c *gin.Context) {
	h := c.GetHeader("Authorization")
	token, err := ctl.Auth.Refresh(strings.TrimPrefix(h, "Bearer "))
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		return
	}
	resp.OK(c, gin.H{"token": token})
}

// POST /auth/logout
//
// Tokens are stateless; the client drops its copy. The endpoint exists
// so the panel has somewhere to report the logout.
func (ctl *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}
