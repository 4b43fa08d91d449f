// internal/services/swipe_service.go
package services

import (
	"time"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

const swipesDir = "swipes"

// SwipeService 记录匹配页的滑动决定
type SwipeService struct {
	store *storage.FileStorage
}

// NewSwipeService 创建滑动服务
func NewSwipeService(store *storage.FileStorage) *SwipeService {
	return &SwipeService{store: store}
}

// RecordSwipe 记录一次滑动
// 学员侧决定为 left/right，导师侧为 pass/request
func (s *SwipeService) RecordSwipe(mentorID string, decision models.SwipeDecision) (models.Swipe, error) {
	switch decision {
	case models.SwipeLeft, models.SwipeRight, models.SwipePass, models.SwipeRequest:
	default:
		return models.Swipe{}, errors.NewInvalid(errors.ResourceSwipe, "无效的滑动决定: "+string(decision))
	}
	if mentorID == "" {
		return models.Swipe{}, errors.NewInvalid(errors.ResourceSwipe, "导师ID不能为空")
	}

	swipe := models.Swipe{
		MentorID: mentorID,
		Decision: decision,
		At:       time.Now().UTC(),
	}

	swipes := s.ListSwipes()
	swipes = append(swipes, swipe)
	if err := s.store.SaveJSON(swipesDir, "swipes.json", swipes); err != nil {
		return models.Swipe{}, errors.NewProcessingError("保存滑动记录失败", err)
	}
	return swipe, nil
}

// ListSwipes 返回全部滑动记录，按时间顺序
func (s *SwipeService) ListSwipes() []models.Swipe {
	var swipes []models.Swipe
	if s.store.Exists(swipesDir, "swipes.json") {
		s.store.LoadJSON(swipesDir, "swipes.json", &swipes)
	}
	return swipes
}

// ListLikedMentors 返回右滑/发起请求过的导师卡片
func (s *SwipeService) ListLikedMentors(roster []models.MentorCard) []models.MentorCard {
	liked := make(map[string]struct{})
	for _, swipe := range s.ListSwipes() {
		if swipe.Decision.Liked() {
			liked[swipe.MentorID] = struct{}{}
		}
	}

	var cards []models.MentorCard
	for _, card := range roster {
		if _, ok := liked[card.ID]; ok {
			cards = append(cards, card)
		}
	}
	return cards
}
