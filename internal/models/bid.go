package models

type Bid struct {
	BaseModel
	ProjectID    string    `gorm:"not null;index" json:"project_id"`
	FreelancerID string    `gorm:"not null;index" json:"freelancer_id"`
	Proposal     string    `gorm:"type:text;not null" json:"proposal"`
	Price        int64     `gorm:"not null" json:"price"`
	Status       BidStatus `gorm:"type:varchar(20);not null" json:"status"`

	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}
