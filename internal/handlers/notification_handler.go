package handlers

import (
	"net/http"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/middleware"
	"freelance_backend/internal/services"
	"freelance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(api *gin.RouterGroup) {
	notifications := api.Group("/notifications", middleware.AuthMiddleware())
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PATCH("/read-all", h.MarkAllRead)
		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.Delete)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	email, ok := h.AuthedUserEmail(c)
	if !ok {
		return
	}

	var req dto.ListNotificationsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	req.Limit, req.Offset = h.ParsePagination(c)

	resp, appErr := h.notificationService.List(email, &req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	email, ok := h.AuthedUserEmail(c)
	if !ok {
		return
	}

	resp, appErr := h.notificationService.UnreadCount(email)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	email, ok := h.AuthedUserEmail(c)
	if !ok {
		return
	}

	if appErr := h.notificationService.MarkRead(c.Param("id"), email); appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	email, ok := h.AuthedUserEmail(c)
	if !ok {
		return
	}

	if appErr := h.notificationService.Delete(c.Param("id"), email); appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification deleted"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	email, ok := h.AuthedUserEmail(c)
	if !ok {
		return
	}

	if appErr := h.notificationService.MarkAllRead(email); appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All notifications marked as read"})
}
