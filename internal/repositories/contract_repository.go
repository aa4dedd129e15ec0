package repositories

import (
	"errors"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTemplateNotFound = errors.New("contract template not found")

type ContractRepository interface {
	List() ([]models.ContractTemplate, error)
	FindByID(id string) (*models.ContractTemplate, error)

	// Seed inserts the built-in templates once. Re-running is a no-op.
	Seed(templates []models.ContractTemplate) error
}

type ContractRepositoryImpl struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &ContractRepositoryImpl{db: db}
}

func (r *ContractRepositoryImpl) List() ([]models.ContractTemplate, error) {
	var templates []models.ContractTemplate
	err := r.db.Order("style ASC").Find(&templates).Error
	return templates, err
}

func (r *ContractRepositoryImpl) FindByID(id string) (*models.ContractTemplate, error) {
	var template models.ContractTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *ContractRepositoryImpl) Seed(templates []models.ContractTemplate) error {
	var count int64
	if err := r.db.Model(&models.ContractTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&templates).Error
}
