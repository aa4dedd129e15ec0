package dto

import (
	"time"

	"freelance_backend/internal/models"
)

type CreateProjectRequest struct {
	Title         string   `json:"title" validate:"required,min=5"`
	Description   string   `json:"description" validate:"required,min=20,max=2500"`
	Budget        int64    `json:"budget" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=hourly fixed milestone"`
	WorkForm      string   `json:"work_form" validate:"required,oneof=remote onsite hybrid"`
	BidDeadline   *string  `json:"bid_deadline,omitempty"`
	Skills        []string `json:"skills"`
}

type RejectProjectRequest struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

type ListProjectsRequest struct {
	Status    string `form:"status"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	MinBudget int64  `form:"min_budget"`
	MaxBudget int64  `form:"max_budget"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

type ProjectResponse struct {
	ID            string               `json:"id"`
	ClientID      string               `json:"client_id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Budget        int64                `json:"budget"`
	Category      string               `json:"category"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	WorkForm      models.WorkForm      `json:"work_form"`
	Status        models.ProjectStatus `json:"status"`
	BidDeadline   *time.Time           `json:"bid_deadline,omitempty"`
	ApprovedAt    *time.Time           `json:"approved_at,omitempty"`
	RejectReason  *string              `json:"reject_reason,omitempty"`
	Skills        []string             `json:"skills"`
	BidCount      int                  `json:"bid_count"`
	CreatedAt     time.Time            `json:"created_at"`

	Bids []BidResponse `json:"bids,omitempty"`
}

type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}

func NewProjectResponse(project *models.Project) *ProjectResponse {
	skills := make([]string, 0, len(project.Skills))
	for _, s := range project.Skills {
		skills = append(skills, s.Name)
	}

	return &ProjectResponse{
		ID:            project.ID,
		ClientID:      project.ClientID,
		Title:         project.Title,
		Description:   project.Description,
		Budget:        project.Budget,
		Category:      project.Category,
		PaymentMethod: project.PaymentMethod,
		WorkForm:      project.WorkForm,
		Status:        models.NormalizeProjectStatus(string(project.Status)),
		BidDeadline:   project.BidDeadlineAt(),
		ApprovedAt:    project.ApprovedAt,
		RejectReason:  project.RejectReason,
		Skills:        skills,
		BidCount:      len(project.Bids),
		CreatedAt:     project.CreatedAt,
	}
}

func NewProjectResponseWithBids(project *models.Project) *ProjectResponse {
	resp := NewProjectResponse(project)
	resp.Bids = make([]BidResponse, 0, len(project.Bids))
	for i := range project.Bids {
		resp.Bids = append(resp.Bids, *NewBidResponse(&project.Bids[i]))
	}
	return resp
}
