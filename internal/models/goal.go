// internal/models/goal.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal 表示目标追踪器中的一条目标
type Goal struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done"`
	At   time.Time `json:"at"`
}

// NewGoal 创建一条未完成的目标
func NewGoal(text string) Goal {
	return Goal{
		ID:   "goal_" + uuid.New().String(),
		Text: text,
		At:   time.Now().UTC(),
	}
}

// GoalProgress 目标完成度统计
type GoalProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// ProgressOf 计算目标列表的完成度
func ProgressOf(goals []Goal) GoalProgress {
	progress := GoalProgress{Total: len(goals)}
	for _, goal := range goals {
		if goal.Done {
			progress.Completed++
		}
	}
	if progress.Total > 0 {
		progress.Percent = int(float64(progress.Completed)/float64(progress.Total)*100 + 0.5)
	}
	return progress
}
