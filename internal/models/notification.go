// internal/models/notification.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification 表示一条站内通知
type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"`
	MentorName  string    `json:"mentor_name,omitempty"`
	MenteeName  string    `json:"mentee_name,omitempty"`
	MenteeEmail string    `json:"mentee_email,omitempty"`
	Read        bool      `json:"read"`
	At          time.Time `json:"at"`
}

// NotificationRequestAccepted 请求被接受的通知类型
const NotificationRequestAccepted = "mentor_accepted"

// NewNotification 创建一条未读通知
func NewNotification(kind, title string) Notification {
	return Notification{
		ID:    "ntf_" + uuid.New().String(),
		Type:  kind,
		Title: title,
		At:    time.Now().UTC(),
	}
}
