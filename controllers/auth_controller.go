package controllers

import (
	"errors"

	"fortumars-mart/models"
	"fortumars-mart/services"
	"fortumars-mart/store"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	App  *store.Controller
	Auth *services.AuthService
}

// @Summary Register new user
// @Description Creates an account; the role is derived from the email once, here
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	user, token, err := ctrl.Auth.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	adopted := ctrl.App.Login(c.Request.Context(), *user)
	c.JSON(201, models.Response{Success: true, Message: "Registered", Data: models.LoginResponse{Token: token, User: adopted}})
}

// @Summary Login
// @Description Signs in; unknown emails become fresh identities created at login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	user, token, err := ctrl.Auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Login failed", Error: err.Error()})
		return
	}

	adopted := ctrl.App.Login(c.Request.Context(), *user)
	c.JSON(200, models.Response{Success: true, Message: "Logged in", Data: models.LoginResponse{Token: token, User: adopted}})
}

// @Summary Logout
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.App.Logout()
	c.JSON(200, models.Response{Success: true, Message: "Logged out", Data: ctrl.App.Snapshot()})
}

// @Summary Get profile
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user := ctrl.App.CurrentUser()
	if user == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Not signed in"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Profile retrieved", Data: user})
}

// @Summary Update profile
// @Description Adopts the edited identity and persists it locally and, best-effort, remotely
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	user := ctrl.App.CurrentUser()
	if user == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Not signed in"})
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}

	updated := ctrl.App.UpdateProfile(c.Request.Context(), *user)
	c.JSON(200, models.Response{Success: true, Message: "Profile updated", Data: updated})
}
