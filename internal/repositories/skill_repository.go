package repositories

import (
	"strings"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

type SkillRepository interface {
	// ResolveByNames maps skill names to rows, creating the ones that do
	// not exist yet. Names are deduplicated case-insensitively.
	ResolveByNames(names []string) ([]models.Skill, error)
	List() ([]models.Skill, error)
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) ResolveByNames(names []string) ([]models.Skill, error) {
	seen := make(map[string]bool)
	skills := make([]models.Skill, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		var skill models.Skill
		err := r.db.Where("name = ?", name).
			Attrs(models.Skill{Name: name}).
			FirstOrCreate(&skill).Error
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func (r *SkillRepositoryImpl) List() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("name ASC").Find(&skills).Error
	return skills, err
}
