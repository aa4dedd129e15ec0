package services

import (
	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) List(email string, req *dto.ListNotificationsRequest) (*dto.NotificationListResponse, *appErrors.AppError) {
	notifications, total, err := s.notificationRepo.ListByEmail(email, req.UnreadOnly, req.Limit, req.Offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	unread, err := s.notificationRepo.CountUnread(email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
		Pagination: dto.Pagination{
			Total:  total,
			Limit:  req.Limit,
			Offset: req.Offset,
		},
	}, nil
}

func (s *NotificationService) UnreadCount(email string) (*dto.UnreadCountResponse, *appErrors.AppError) {
	count, err := s.notificationRepo.CountUnread(email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// MarkRead marks one notification as read. Scoped to the caller's email so
// nobody can flip another account's rows.
func (s *NotificationService) MarkRead(id, email string) *appErrors.AppError {
	if err := s.notificationRepo.MarkAsRead(id, email); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return appErrors.ErrNotificationNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(email string) *appErrors.AppError {
	if err := s.notificationRepo.MarkAllAsRead(email); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *NotificationService) Delete(id, email string) *appErrors.AppError {
	if err := s.notificationRepo.Delete(id, email); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return appErrors.ErrNotificationNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
