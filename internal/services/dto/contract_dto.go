package dto

import "freelance_backend/internal/models"

type ContractTemplateResponse struct {
	ID       string `json:"id"`
	FilePath string `json:"file_path"`
	Style    string `json:"style"`
}

func NewContractTemplateResponse(t *models.ContractTemplate) *ContractTemplateResponse {
	return &ContractTemplateResponse{
		ID:       t.ID,
		FilePath: t.FilePath,
		Style:    t.Style,
	}
}
