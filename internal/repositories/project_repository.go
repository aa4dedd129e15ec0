package repositories

import (
	"errors"
	"strings"
	"time"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectListCriteria carries the optional list filters. Zero values mean
// "no filter".
type ProjectListCriteria struct {
	Status    models.ProjectStatus
	Category  string
	ClientID  string
	Search    string
	MinBudget int64
	MaxBudget int64
	Limit     int
	Offset    int
}

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	FindByIDWithBids(id string) (*models.Project, error)
	List(criteria ProjectListCriteria) ([]models.Project, int64, error)
	Update(project *models.Project) error

	// TransitionStatus moves the project from one status to another in a
	// single guarded UPDATE. It returns ErrProjectNotFound when no row was
	// in the expected source status, which callers disambiguate into
	// not-found vs wrong-state.
	TransitionStatus(id string, from, to models.ProjectStatus, updates map[string]interface{}) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Skills").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByIDWithBids(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Skills").
		Preload("Bids", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Bids.Freelancer").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) List(criteria ProjectListCriteria) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.ClientID != "" {
		query = query.Where("client_id = ?", criteria.ClientID)
	}
	if criteria.Search != "" {
		like := "%" + strings.TrimSpace(criteria.Search) + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if criteria.MinBudget > 0 {
		query = query.Where("budget >= ?", criteria.MinBudget)
	}
	if criteria.MaxBudget > 0 {
		query = query.Where("budget <= ?", criteria.MaxBudget)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit).Offset(criteria.Offset)
	}

	var projects []models.Project
	err := query.Preload("Skills").Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *ProjectRepositoryImpl) TransitionStatus(id string, from, to models.ProjectStatus, updates map[string]interface{}) error {
	values := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range updates {
		values[k] = v
	}

	result := r.db.Model(&models.Project{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
