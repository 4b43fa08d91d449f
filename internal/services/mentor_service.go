// internal/services/mentor_service.go
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

const mentorsDir = "mentors"

// MentorService 维护导师名册：内置的演示名册加上入驻的导师
type MentorService struct {
	store *storage.FileStorage
}

// NewMentorService 创建导师服务
func NewMentorService(store *storage.FileStorage) *MentorService {
	return &MentorService{store: store}
}

// ListMentors 返回完整名册，入驻导师排在内置名册之前
func (s *MentorService) ListMentors() []models.MentorCard {
	registered := s.registeredMentors()
	return append(registered, models.SeedMentors()...)
}

// GetMentor 按ID查找导师
func (s *MentorService) GetMentor(mentorID string) (models.MentorCard, error) {
	for _, card := range s.ListMentors() {
		if card.ID == mentorID {
			return card, nil
		}
	}
	return models.MentorCard{}, errors.NewMentorNotFound(mentorID)
}

// RegisterMentor 将入驻导师追加到名册
func (s *MentorService) RegisterMentor(profile models.MentorProfile) (models.MentorCard, error) {
	name := displayName(profile.Name, profile.FirstName, profile.LastName)
	if name == "" {
		return models.MentorCard{}, errors.NewInvalid(errors.ResourceMentor, "导师姓名不能为空")
	}

	card := models.MentorCard{
		ID:       "m_" + uuid.New().String(),
		Name:     name,
		Title:    mentorTitle(profile),
		Industry: profile.Industry,
		Company:  profile.Company,
		Bio:      profile.Bio,
		Match:    80,
	}

	roster := s.registeredMentors()
	roster = append(roster, card)
	if err := s.store.SaveJSON(mentorsDir, "roster.json", roster); err != nil {
		return models.MentorCard{}, errors.NewProcessingError("保存导师名册失败", err)
	}
	return card, nil
}

// ResolveMentorNameForMentee 为学员解析一对一聊天的导师名
// 优先已接受请求中的导师，其次名册中第一个与当前用户不同名的导师
func (s *MentorService) ResolveMentorNameForMentee(acceptedMentorName, fallbackMentorName, currentUserName string) string {
	var pool []string
	for _, card := range s.ListMentors() {
		if card.Name == "" || card.Name == currentUserName {
			continue
		}
		pool = append(pool, card.Name)
	}

	if acceptedMentorName != "" && acceptedMentorName != currentUserName && containsName(pool, acceptedMentorName) {
		return acceptedMentorName
	}
	if len(pool) > 0 {
		return pool[0]
	}
	if fallbackMentorName != "" && fallbackMentorName != currentUserName {
		return fallbackMentorName
	}
	return "Your Mentor"
}

func (s *MentorService) registeredMentors() []models.MentorCard {
	var roster []models.MentorCard
	if s.store.Exists(mentorsDir, "roster.json") {
		s.store.LoadJSON(mentorsDir, "roster.json", &roster)
	}
	return roster
}

func mentorTitle(profile models.MentorProfile) string {
	role := strings.TrimSpace(profile.Role)
	company := strings.TrimSpace(profile.Company)
	switch {
	case role != "" && company != "":
		return role + " @ " + company
	case role != "":
		return role
	case company != "":
		return company
	}
	return "Mentor"
}

func containsName(names []string, target string) bool {
	for _, name := range names {
		if name == target {
			return true
		}
	}
	return false
}
