package handlers

import (
	"net/http"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/services"
	"freelance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/signup", h.SignUp)
	api.POST("/signin", h.SignIn)
	api.POST("/send-verification-code", h.SendCode)
	api.POST("/confirm-verification-code", h.ConfirmCode)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.authService.SignUp(&req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.authService.SignIn(&req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SendCode(c *gin.Context) {
	var req dto.SendCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if appErr := h.authService.SendVerificationCode(&req); appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification code sent"})
}

func (h *AuthHandler) ConfirmCode(c *gin.Context) {
	var req dto.ConfirmCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.authService.ConfirmVerificationCode(&req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
