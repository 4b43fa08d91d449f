// internal/services/notification_service.go
package services

import (
	"sync"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

const notificationsDir = "notifications"

// NotificationService 维护站内通知列表
// 同时持有一个持久化的导师名轮换下标：缺省从0开始，每次取名后自增
type NotificationService struct {
	store *storage.FileStorage
	mu    sync.Mutex
}

// NewNotificationService 创建通知服务
func NewNotificationService(store *storage.FileStorage) *NotificationService {
	return &NotificationService{store: store}
}

// Add 追加一条通知，最新的排在最前
func (s *NotificationService) Add(notification models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := s.load()
	notifications = append([]models.Notification{notification}, notifications...)
	if err := s.store.SaveJSON(notificationsDir, "notifications.json", notifications); err != nil {
		return errors.NewProcessingError("保存通知失败", err)
	}
	return nil
}

// List 返回全部通知，最新在前
func (s *NotificationService) List() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// MarkRead 将指定通知标记为已读
func (s *NotificationService) MarkRead(notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := s.load()
	for i := range notifications {
		if notifications[i].ID == notificationID {
			notifications[i].Read = true
			if err := s.store.SaveJSON(notificationsDir, "notifications.json", notifications); err != nil {
				return errors.NewProcessingError("保存通知失败", err)
			}
			return nil
		}
	}
	return errors.NewNotificationNotFound(notificationID)
}

// rotationState 持久化的轮换下标
type rotationState struct {
	Index int `json:"index"`
}

// NextMentorName 按轮换下标从名册中取下一个导师名
// 下标读取后自增并立即持久化；空名册返回固定占位名
func (s *NotificationService) NextMentorName(roster []models.MentorCard) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(roster) == 0 {
		return "A mentor"
	}

	var state rotationState
	if s.store.Exists(notificationsDir, "rotation.json") {
		s.store.LoadJSON(notificationsDir, "rotation.json", &state)
	}

	name := roster[state.Index%len(roster)].Name
	state.Index++
	s.store.SaveJSON(notificationsDir, "rotation.json", state)
	return name
}

func (s *NotificationService) load() []models.Notification {
	var notifications []models.Notification
	if s.store.Exists(notificationsDir, "notifications.json") {
		s.store.LoadJSON(notificationsDir, "notifications.json", &notifications)
	}
	return notifications
}
