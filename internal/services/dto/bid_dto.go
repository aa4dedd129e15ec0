package dto

import (
	"time"

	"freelance_backend/internal/models"
)

type SubmitBidRequest struct {
	Proposal string `json:"proposal" validate:"required,min=20,max=2500"`
	Price    int64  `json:"price" validate:"required"`
}

type HireBidRequest struct {
	BidID string `json:"bid_id" validate:"required"`
}

type BidResponse struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"project_id"`
	FreelancerID string           `json:"freelancer_id"`
	Proposal     string           `json:"proposal"`
	Price        int64            `json:"price"`
	Status       models.BidStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`

	Freelancer *UserResponse `json:"freelancer,omitempty"`
}

func NewBidResponse(bid *models.Bid) *BidResponse {
	resp := &BidResponse{
		ID:           bid.ID,
		ProjectID:    bid.ProjectID,
		FreelancerID: bid.FreelancerID,
		Proposal:     bid.Proposal,
		Price:        bid.Price,
		Status:       models.NormalizeBidStatus(string(bid.Status)),
		CreatedAt:    bid.CreatedAt,
	}
	if bid.Freelancer != nil {
		resp.Freelancer = NewUserResponse(bid.Freelancer)
	}
	return resp
}
