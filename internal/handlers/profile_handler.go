package handlers

import (
	"net/http"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/middleware"
	"freelance_backend/internal/services"
	"freelance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(api *gin.RouterGroup) {
	profile := api.Group("/profile", middleware.AuthMiddleware())
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	email, ok := h.AuthedUserEmail(c)
	if !ok {
		return
	}

	resp, appErr := h.profileService.Get(email)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.profileService.Update(userID, &req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
