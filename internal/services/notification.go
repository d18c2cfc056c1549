package services

import (
	"context"
	"errors"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/logger"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"gorm.io/gorm"
)

// NotificationService stores and lists per-user notifications. Delivery is
// fire and forget: Notify enqueues (or falls back to a goroutine) and never
// returns an error to the caller, so a broken queue cannot fail a membership
// change.
type NotificationService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewNotificationService(db *gorm.DB, queue TaskQueue) *NotificationService {
	return &NotificationService{db: db, queue: queue}
}

// ProcessTask persists a queued notification. Registered as the queue
// processor for both the asynq worker and the sync fallback.
func (s *NotificationService) ProcessTask(ctx context.Context, task *NotificationTask) error {
	notification := models.Notification{
		UserID:    task.UserID,
		Type:      task.Type,
		Message:   task.Message,
		ProjectID: task.ProjectID,
	}
	return s.db.WithContext(ctx).Create(&notification).Error
}

// Notify delivers a notification to a user. Errors are logged, not returned.
func (s *NotificationService) Notify(userID, notifType, message, projectID string) {
	if s == nil || s.queue == nil {
		return
	}
	task := &NotificationTask{
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		ProjectID: projectID,
	}
	if err := s.queue.Enqueue(task); err != nil {
		logger.Errorf("[Notification] enqueue failed for user %s: %v", userID, err)
	}
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks a single notification as read. The notification must belong
// to the caller.
func (s *NotificationService) MarkRead(id uint, userID string) error {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("notification not found")
		}
		return err
	}
	if notification.UserID != userID {
		return response.NewForbidden("cannot mark another user's notification")
	}
	return s.db.Model(&notification).Update("is_read", true).Error
}

// MarkAllRead marks all of a user's notifications as read.
func (s *NotificationService) MarkAllRead(userID string) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
