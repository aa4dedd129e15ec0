package repositories

import (
	"errors"
	"time"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBidNotFound   = errors.New("bid not found")
	ErrBidNotPending = errors.New("bid is not pending")
)

type BidRepository interface {
	Create(bid *models.Bid) error
	FindByID(id string) (*models.Bid, error)
	ListByProject(projectID string) ([]models.Bid, error)
	ListByFreelancer(freelancerID string) ([]models.Bid, error)

	// HasActiveBid reports whether the freelancer already has a bid on the
	// project that is not rejected. A rejected bid does not block a new one.
	HasActiveBid(projectID, freelancerID string) (bool, error)

	// Hire accepts one bid, rejects every sibling bid on the same project
	// and moves the project to in_progress, all in one transaction. Either
	// everything lands or nothing does.
	Hire(projectID, bidID string) error

	Reject(bidID string) error
}

type BidRepositoryImpl struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &BidRepositoryImpl{db: db}
}

func (r *BidRepositoryImpl) Create(bid *models.Bid) error {
	return r.db.Create(bid).Error
}

func (r *BidRepositoryImpl) FindByID(id string) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.Preload("Freelancer").First(&bid, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) ListByProject(projectID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.
		Preload("Freelancer").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) ListByFreelancer(freelancerID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) HasActiveBid(projectID, freelancerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bid{}).
		Where("project_id = ? AND freelancer_id = ? AND status != ?", projectID, freelancerID, models.BidStatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *BidRepositoryImpl) Hire(projectID, bidID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		accepted := tx.Model(&models.Bid{}).
			Where("id = ? AND project_id = ? AND status = ?", bidID, projectID, models.BidStatusPending).
			Updates(map[string]interface{}{"status": models.BidStatusAccepted, "updated_at": now})
		if accepted.Error != nil {
			return accepted.Error
		}
		if accepted.RowsAffected == 0 {
			return ErrBidNotPending
		}

		if err := tx.Model(&models.Bid{}).
			Where("project_id = ? AND id != ? AND status = ?", projectID, bidID, models.BidStatusPending).
			Updates(map[string]interface{}{"status": models.BidStatusRejected, "updated_at": now}).Error; err != nil {
			return err
		}

		project := tx.Model(&models.Project{}).
			Where("id = ? AND status = ?", projectID, models.ProjectStatusOpen).
			Updates(map[string]interface{}{"status": models.ProjectStatusInProgress, "updated_at": now})
		if project.Error != nil {
			return project.Error
		}
		if project.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

func (r *BidRepositoryImpl) Reject(bidID string) error {
	result := r.db.Model(&models.Bid{}).
		Where("id = ? AND status = ?", bidID, models.BidStatusPending).
		Updates(map[string]interface{}{"status": models.BidStatusRejected, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBidNotPending
	}
	return nil
}
