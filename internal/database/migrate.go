package database

import (
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"

	"gorm.io/gorm"
)

// Migrate applies the schema and seeds static reference data.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.ForeignLanguage{},
		&models.Education{},
		&models.Experience{},
		&models.Skill{},
		&models.Project{},
		&models.Bid{},
		&models.Notification{},
		&models.ContractTemplate{},
	)
	if err != nil {
		return err
	}

	return seedContractTemplates(db)
}

func seedContractTemplates(db *gorm.DB) error {
	contractRepo := repositories.NewContractRepository(db)
	return contractRepo.Seed([]models.ContractTemplate{
		{FilePath: "contract_standard.docx", Style: "standard"},
		{FilePath: "contract_hourly.docx", Style: "hourly"},
		{FilePath: "contract_milestone.docx", Style: "milestone"},
	})
}
