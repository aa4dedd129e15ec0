package models

import "strings"

type ProjectStatus string
type BidStatus string
type UserRole string
type PaymentMethod string
type WorkForm string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"

	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"

	UserRoleClient     UserRole = "client"
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleModerator  UserRole = "moderator"

	PaymentMethodHourly    PaymentMethod = "hourly"
	PaymentMethodFixed     PaymentMethod = "fixed"
	PaymentMethodMilestone PaymentMethod = "milestone"

	WorkFormRemote WorkForm = "remote"
	WorkFormOnsite WorkForm = "onsite"
	WorkFormHybrid WorkForm = "hybrid"
)

// NormalizeProjectStatus folds casing drift from legacy rows ("Pending",
// "In Progress") into the canonical enum at the read boundary. Raw status
// strings are never compared directly.
func NormalizeProjectStatus(s string) ProjectStatus {
	return ProjectStatus(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
}

func NormalizeBidStatus(s string) BidStatus {
	return BidStatus(strings.ToLower(strings.TrimSpace(s)))
}

func (s ProjectStatus) Terminal() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusCancelled
}

func (s BidStatus) Terminal() bool {
	return s == BidStatusAccepted || s == BidStatusRejected
}

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodHourly, PaymentMethodFixed, PaymentMethodMilestone:
		return true
	}
	return false
}

func ValidWorkForm(f WorkForm) bool {
	switch f {
	case WorkFormRemote, WorkFormOnsite, WorkFormHybrid:
		return true
	}
	return false
}
