package handlers

import (
	"net/http"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/middleware"
	"freelance_backend/internal/models"
	"freelance_backend/internal/services"
	"freelance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	BaseHandler
	projectService *services.ProjectService
}

func NewProjectHandler(base BaseHandler, projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, projectService: projectService}
}

func (h *ProjectHandler) RegisterRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.GET("", h.List)

		authed := projects.Group("", middleware.AuthMiddleware())
		{
			authed.POST("", middleware.RequireRoles(models.UserRoleClient), h.Create)
			authed.GET("/pending", middleware.RequireRoles(models.UserRoleModerator), h.ListPending)
			authed.GET("/client/:email", h.ListByClient)
			authed.PATCH("/:id/approve", middleware.RequireRoles(models.UserRoleModerator), h.Approve)
			authed.PATCH("/:id/reject", middleware.RequireRoles(models.UserRoleModerator), h.Reject)
			authed.PATCH("/:id/complete", middleware.RequireRoles(models.UserRoleClient), h.Complete)
		}

		// Literal segments like "pending" and "client" win over the ID match.
		projects.GET("/:id", h.Get)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	clientID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.projectService.Create(clientID, &req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	resp, appErr := h.projectService.Get(c.Param("id"))
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) List(c *gin.Context) {
	var req dto.ListProjectsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	req.Limit, req.Offset = h.ParsePagination(c)

	resp, appErr := h.projectService.List(&req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) ListByClient(c *gin.Context) {
	var req dto.ListProjectsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	req.Limit, req.Offset = h.ParsePagination(c)

	resp, appErr := h.projectService.ListByClientEmail(c.Param("email"), &req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) ListPending(c *gin.Context) {
	var req dto.ListProjectsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	req.Limit, req.Offset = h.ParsePagination(c)

	resp, appErr := h.projectService.ListPending(&req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Approve(c *gin.Context) {
	resp, appErr := h.projectService.Approve(c.Param("id"))
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Reject(c *gin.Context) {
	moderatorID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.RejectProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.projectService.Reject(c.Param("id"), moderatorID, &req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Complete(c *gin.Context) {
	clientID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	resp, appErr := h.projectService.Complete(c.Param("id"), clientID)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
