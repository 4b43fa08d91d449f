// internal/models/swipe.go
package models

import "time"

// SwipeDecision 滑动决定
// 学员侧使用 left/right，导师侧使用 pass/request
type SwipeDecision string

const (
	SwipeLeft    SwipeDecision = "left"
	SwipeRight   SwipeDecision = "right"
	SwipePass    SwipeDecision = "pass"
	SwipeRequest SwipeDecision = "request"
)

// Liked 判断该决定是否表示发起请求
func (d SwipeDecision) Liked() bool {
	return d == SwipeRight || d == SwipeRequest
}

// Swipe 表示一次滑动记录
type Swipe struct {
	MentorID string        `json:"mentor_id"`
	Decision SwipeDecision `json:"decision"`
	At       time.Time     `json:"at"`
}
