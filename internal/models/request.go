// internal/models/request.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus 连接请求状态
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// MentorRequest 表示学员向导师发起的连接请求
type MentorRequest struct {
	ID         string        `json:"id"`
	MentorID   string        `json:"mentor_id"`
	MentorName string        `json:"mentor_name"`
	Mentee     MenteeProfile `json:"mentee"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewMentorRequest 创建待处理的连接请求
func NewMentorRequest(mentorID, mentorName string, mentee MenteeProfile) MentorRequest {
	now := time.Now().UTC()
	return MentorRequest{
		ID:         "req_" + uuid.New().String(),
		MentorID:   mentorID,
		MentorName: mentorName,
		Mentee:     mentee,
		Status:     RequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
