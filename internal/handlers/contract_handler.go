package handlers

import (
	"net/http"
	"path/filepath"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	BaseHandler
	contractService *services.ContractService
}

func NewContractHandler(base BaseHandler, contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{BaseHandler: base, contractService: contractService}
}

func (h *ContractHandler) RegisterRoutes(api *gin.RouterGroup) {
	contract := api.Group("/contract")
	{
		contract.GET("/list-templates", h.List)
		contract.GET("/export/:id", h.Export)
	}
}

func (h *ContractHandler) List(c *gin.Context) {
	resp, appErr := h.contractService.List()
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": resp})
}

func (h *ContractHandler) Export(c *gin.Context) {
	path, appErr := h.contractService.Export(c.Param("id"))
	if appErr != nil {
		appErrors.HandleError(c, appErr)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filepath.Base(path))
	c.File(path)
}
