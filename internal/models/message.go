// internal/models/message.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message 表示会话线程中的一条消息
// 创建后不可变，按追加顺序即时间顺序存储
type Message struct {
	ID   string    `json:"id"`
	Name string    `json:"name"` // 发送者显示名
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// NewMessage 创建一条新消息
func NewMessage(name, text string) Message {
	return Message{
		ID:   "msg_" + uuid.New().String(),
		Name: name,
		Text: text,
		At:   time.Now().UTC(),
	}
}

// 固定的群聊线程ID
const (
	ThreadMenteeCheckins      = "mentee_group_checkins"
	ThreadMenteeOpportunities = "mentee_group_opportunities"
	ThreadMenteeInterviews    = "mentee_group_interviews"
	ThreadMentorStrategy      = "mentor_group_strategy"
	ThreadMentorResources     = "mentor_group_resources"
	ThreadMentorCases         = "mentor_group_cases"
)

// DirectThreadID 根据对方显示名生成一对一线程ID
// 保留原始大小写，空白折叠为下划线，与历史存储键保持一致
func DirectThreadID(partnerName string) string {
	slug := strings.Join(strings.Fields(partnerName), "_")
	if slug == "" {
		slug = "mentee"
	}
	return "dm_" + slug
}

// IsDirectThread 判断线程是否为一对一会话
func IsDirectThread(threadID string) bool {
	return strings.HasPrefix(threadID, "dm_")
}

// IsMenteeGroup 判断线程是否为学员群聊
func IsMenteeGroup(threadID string) bool {
	switch threadID {
	case ThreadMenteeCheckins, ThreadMenteeOpportunities, ThreadMenteeInterviews:
		return true
	}
	return false
}

// IsMentorGroup 判断线程是否为导师群聊
func IsMentorGroup(threadID string) bool {
	switch threadID {
	case ThreadMentorStrategy, ThreadMentorResources, ThreadMentorCases:
		return true
	}
	return false
}

// ThreadInfo 会话线程的描述信息，用于前端列表展示
type ThreadInfo struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // "direct" 或 "circle"
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon,omitempty"`
}
