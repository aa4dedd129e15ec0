package services

import (
	"os"
	"path/filepath"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/config"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
)

type ContractService struct {
	contractRepo repositories.ContractRepository
}

func NewContractService(contractRepo repositories.ContractRepository) *ContractService {
	return &ContractService{contractRepo: contractRepo}
}

func (s *ContractService) List() ([]dto.ContractTemplateResponse, *appErrors.AppError) {
	templates, err := s.contractRepo.List()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.ContractTemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, *dto.NewContractTemplateResponse(&templates[i]))
	}
	return responses, nil
}

// Export resolves a template to an absolute file path for download. Paths are
// confined to the configured templates directory.
func (s *ContractService) Export(id string) (string, *appErrors.AppError) {
	template, err := s.contractRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrTemplateNotFound {
			return "", appErrors.ErrTemplateNotFound
		}
		return "", appErrors.InternalError(err)
	}

	dir := config.GetConfig().Contract.TemplatesDir
	path := filepath.Join(dir, filepath.Base(template.FilePath))

	if _, statErr := os.Stat(path); statErr != nil {
		return "", appErrors.ErrTemplateNotFound
	}
	return path, nil
}
