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

type BidHandler struct {
	BaseHandler
	bidService *services.BidService
}

func NewBidHandler(base BaseHandler, bidService *services.BidService) *BidHandler {
	return &BidHandler{BaseHandler: base, bidService: bidService}
}

func (h *BidHandler) RegisterRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects", middleware.AuthMiddleware())
	{
		projects.POST("/:id/bid", middleware.RequireRoles(models.UserRoleFreelancer), h.Submit)
		projects.GET("/:id/bids", h.ListByProject)
		projects.PATCH("/:id/hire", middleware.RequireRoles(models.UserRoleClient), h.Hire)
		projects.PATCH("/:id/bids/:bidId", middleware.RequireRoles(models.UserRoleClient), h.Reject)
	}

	bids := api.Group("/bids", middleware.AuthMiddleware())
	{
		bids.GET("/my", middleware.RequireRoles(models.UserRoleFreelancer), h.ListMine)
	}
}

func (h *BidHandler) Submit(c *gin.Context) {
	freelancerID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitBidRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.bidService.Submit(freelancerID, c.Param("id"), &req)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BidHandler) ListByProject(c *gin.Context) {
	callerID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	resp, appErr := h.bidService.ListByProject(callerID, c.Param("id"))
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": resp})
}

func (h *BidHandler) ListMine(c *gin.Context) {
	freelancerID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	resp, appErr := h.bidService.ListMine(freelancerID)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": resp})
}

func (h *BidHandler) Hire(c *gin.Context) {
	clientID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	var req dto.HireBidRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.bidService.Hire(clientID, c.Param("id"), req.BidID)
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BidHandler) Reject(c *gin.Context) {
	clientID, ok := h.AuthedUserID(c)
	if !ok {
		return
	}

	resp, appErr := h.bidService.Reject(clientID, c.Param("id"), c.Param("bidId"))
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
