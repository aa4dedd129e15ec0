package services

import (
	"freelance_backend/internal/email"
	"freelance_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	Auth         *AuthService
	Profile      *ProfileService
	Project      *ProjectService
	Bid          *BidService
	Notification *NotificationService
	Contract     *ContractService
}

func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	bidRepo := repositories.NewBidRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	contractRepo := repositories.NewContractRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, emailProvider),
		Profile:      NewProfileService(userRepo),
		Project:      NewProjectService(projectRepo, skillRepo, bidRepo, userRepo, notificationRepo),
		Bid:          NewBidService(bidRepo, projectRepo, userRepo, notificationRepo),
		Notification: NewNotificationService(notificationRepo),
		Contract:     NewContractService(contractRepo),
	}
}
