// internal/services/goal_service.go
package services

import (
	"strings"
	"sync"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

const goalsDir = "goals"

// GoalService 维护按用户划分的目标清单
type GoalService struct {
	store *storage.FileStorage
	mu    sync.Mutex
}

// NewGoalService 创建目标服务
func NewGoalService(store *storage.FileStorage) *GoalService {
	return &GoalService{store: store}
}

// AddGoal 追加一条未完成目标
func (s *GoalService) AddGoal(owner, text string) (models.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Goal{}, errors.NewInvalid(errors.ResourceGoal, "目标内容不能为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.load(owner)
	goal := models.NewGoal(text)
	goals = append(goals, goal)
	if err := s.save(owner, goals); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// ToggleGoal 切换目标的完成状态
func (s *GoalService) ToggleGoal(owner, goalID string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.load(owner)
	for i := range goals {
		if goals[i].ID == goalID {
			goals[i].Done = !goals[i].Done
			if err := s.save(owner, goals); err != nil {
				return models.Goal{}, err
			}
			return goals[i], nil
		}
	}
	return models.Goal{}, errors.NewGoalNotFound(goalID)
}

// DeleteGoal 删除一条目标
func (s *GoalService) DeleteGoal(owner, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.load(owner)
	for i := range goals {
		if goals[i].ID == goalID {
			goals = append(goals[:i], goals[i+1:]...)
			return s.save(owner, goals)
		}
	}
	return errors.NewGoalNotFound(goalID)
}

// ListGoals 返回目标清单及完成度
func (s *GoalService) ListGoals(owner string) ([]models.Goal, models.GoalProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.load(owner)
	return goals, models.ProgressOf(goals)
}

func (s *GoalService) load(owner string) []models.Goal {
	var goals []models.Goal
	if s.store.Exists(goalsDir, ownerFile(owner)) {
		s.store.LoadJSON(goalsDir, ownerFile(owner), &goals)
	}
	return goals
}

func (s *GoalService) save(owner string, goals []models.Goal) error {
	if err := s.store.SaveJSON(goalsDir, ownerFile(owner), goals); err != nil {
		return errors.NewProcessingError("保存目标清单失败", err)
	}
	return nil
}

func ownerFile(owner string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(owner), "_"))
	if slug == "" {
		slug = "default"
	}
	return slug + ".json"
}
