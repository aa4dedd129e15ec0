package models

import "time"

type Project struct {
	BaseModel
	ClientID      string        `gorm:"not null;index" json:"client_id"`
	Title         string        `gorm:"not null" json:"title"`
	Description   string        `gorm:"type:text;not null" json:"description"`
	Budget        int64         `gorm:"not null" json:"budget"`
	Category      string        `json:"category"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20)" json:"payment_method"`
	WorkForm      WorkForm      `gorm:"type:varchar(20)" json:"work_form"`
	Status        ProjectStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	BidDeadline   *time.Time    `json:"bid_deadline,omitempty"`
	ApprovedAt    *time.Time    `json:"approved_at,omitempty"`
	RejectReason  *string       `json:"reject_reason,omitempty"`
	RejectedBy    *string       `json:"rejected_by,omitempty"`

	Skills []Skill `gorm:"many2many:requires" json:"skills,omitempty"`
	Bids   []Bid   `gorm:"foreignKey:ProjectID" json:"bids,omitempty"`
}

// bidWindow is the fallback bidding window applied when a project carries no
// explicit deadline, counted from the approval timestamp. The server is the
// single source of truth here.
const bidWindow = 7 * 24 * time.Hour

// BidDeadlineAt returns the effective deadline, or nil when the project has
// not been approved yet.
func (p *Project) BidDeadlineAt() *time.Time {
	if p.BidDeadline != nil {
		return p.BidDeadline
	}
	if p.ApprovedAt == nil {
		return nil
	}
	d := p.ApprovedAt.Add(bidWindow)
	return &d
}

// AcceptsBids reports whether new bids may be submitted. An expired window
// blocks bids but never cancels the project.
func (p *Project) AcceptsBids(now time.Time) bool {
	if NormalizeProjectStatus(string(p.Status)) != ProjectStatusOpen {
		return false
	}
	deadline := p.BidDeadlineAt()
	return deadline == nil || now.Before(*deadline)
}
