package handlers

import (
	"freelance_backend/internal/services"
	"freelance_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Project      *ProjectHandler
	Bid          *BidHandler
	Notification *NotificationHandler
	Contract     *ContractHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		Profile:      NewProfileHandler(base, container.Profile),
		Project:      NewProjectHandler(base, container.Project),
		Bid:          NewBidHandler(base, container.Bid),
		Notification: NewNotificationHandler(base, container.Notification),
		Contract:     NewContractHandler(base, container.Contract),
	}
}
