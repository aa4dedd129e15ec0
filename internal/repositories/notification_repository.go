package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freelance_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByEmail(email string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(email string) (int64, error)
	MarkAsRead(id, email string) error
	MarkAllAsRead(email string) error
	Delete(id, email string) error

	// Factory methods for the lifecycle events. Each builds a typed row
	// addressed to the recipient email; delivery is the caller's concern.
	ProjectSubmitted(email string, project *models.Project) *models.Notification
	ProjectApproved(email string, project *models.Project) *models.Notification
	ProjectRejected(email string, project *models.Project, reason string) *models.Notification
	NewBid(email string, project *models.Project, bid *models.Bid) *models.Notification
	BidAccepted(email string, project *models.Project, bid *models.Bid) *models.Notification
	BidRejected(email string, project *models.Project, bid *models.Bid) *models.Notification
	ProjectCompleted(email string, project *models.Project) *models.Notification
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) ListByEmail(email string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).Where("email = ?", email)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("email = ? AND is_read = ?", email, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(id, email string) error {
	now := time.Now()
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND email = ?", id, email).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(email string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("email = ? AND is_read = ?", email, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
}

func (r *NotificationRepositoryImpl) Delete(id, email string) error {
	result := r.db.Where("id = ? AND email = ?", id, email).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func payload(fields map[string]string) datatypes.JSON {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func (r *NotificationRepositoryImpl) ProjectSubmitted(email string, project *models.Project) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "project_submitted",
		Title:   "Project submitted for review",
		Message: fmt.Sprintf("Your project %q was submitted and is awaiting moderation.", project.Title),
		Data:    payload(map[string]string{"project_id": project.ID}),
	}
}

func (r *NotificationRepositoryImpl) ProjectApproved(email string, project *models.Project) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "project_approved",
		Title:   "Project approved",
		Message: fmt.Sprintf("Your project %q was approved and is now open for bids.", project.Title),
		Data:    payload(map[string]string{"project_id": project.ID}),
	}
}

func (r *NotificationRepositoryImpl) ProjectRejected(email string, project *models.Project, reason string) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "project_rejected",
		Title:   "Project rejected",
		Message: fmt.Sprintf("Your project %q was rejected: %s", project.Title, reason),
		Data:    payload(map[string]string{"project_id": project.ID}),
	}
}

func (r *NotificationRepositoryImpl) NewBid(email string, project *models.Project, bid *models.Bid) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "new_bid",
		Title:   "New bid received",
		Message: fmt.Sprintf("A freelancer placed a bid on your project %q.", project.Title),
		Data:    payload(map[string]string{"project_id": project.ID, "bid_id": bid.ID}),
	}
}

func (r *NotificationRepositoryImpl) BidAccepted(email string, project *models.Project, bid *models.Bid) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "bid_accepted",
		Title:   "You were hired",
		Message: fmt.Sprintf("Your bid on %q was accepted. The project is now in progress.", project.Title),
		Data:    payload(map[string]string{"project_id": project.ID, "bid_id": bid.ID}),
	}
}

func (r *NotificationRepositoryImpl) BidRejected(email string, project *models.Project, bid *models.Bid) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "bid_rejected",
		Title:   "Bid not selected",
		Message: fmt.Sprintf("Your bid on %q was not selected.", project.Title),
		Data:    payload(map[string]string{"project_id": project.ID, "bid_id": bid.ID}),
	}
}

func (r *NotificationRepositoryImpl) ProjectCompleted(email string, project *models.Project) *models.Notification {
	return &models.Notification{
		Email:   email,
		Type:    "project_completed",
		Title:   "Project completed",
		Message: fmt.Sprintf("The project %q was marked as completed.", project.Title),
		Data:    payload(map[string]string{"project_id": project.ID}),
	}
}
