// internal/services/profile_service.go
package services

import (
	"strings"
	"time"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

const profilesDir = "profiles"

// ProfileService 处理入驻和档案相关的业务逻辑
type ProfileService struct {
	store *storage.FileStorage
}

// NewProfileService 创建档案服务
func NewProfileService(store *storage.FileStorage) *ProfileService {
	return &ProfileService{store: store}
}

// SaveMenteeOnboarding 保存学员入驻信息
func (s *ProfileService) SaveMenteeOnboarding(profile models.MenteeProfile) error {
	if err := validateName(profile.Name, profile.FirstName, profile.LastName); err != nil {
		return err
	}
	profile.Name = displayName(profile.Name, profile.FirstName, profile.LastName)

	record := models.UserRecord{
		UserType:  models.UserTypeMentee,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveJSON(profilesDir, "user.json", record); err != nil {
		return errors.NewProcessingError("保存用户记录失败", err)
	}
	if err := s.store.SaveJSON(profilesDir, "mentee.json", profile); err != nil {
		return errors.NewProcessingError("保存学员档案失败", err)
	}
	return nil
}

// SaveMentorOnboarding 保存导师入驻信息
func (s *ProfileService) SaveMentorOnboarding(profile models.MentorProfile) error {
	if err := validateName(profile.Name, profile.FirstName, profile.LastName); err != nil {
		return err
	}
	profile.Name = displayName(profile.Name, profile.FirstName, profile.LastName)

	record := models.UserRecord{
		UserType:  models.UserTypeMentor,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveJSON(profilesDir, "user.json", record); err != nil {
		return errors.NewProcessingError("保存用户记录失败", err)
	}
	if err := s.store.SaveJSON(profilesDir, "mentor.json", profile); err != nil {
		return errors.NewProcessingError("保存导师档案失败", err)
	}
	return nil
}

// GetMenteeProfile 读取学员档案，不存在时返回空档案
func (s *ProfileService) GetMenteeProfile() models.MenteeProfile {
	var profile models.MenteeProfile
	if s.store.Exists(profilesDir, "mentee.json") {
		s.store.LoadJSON(profilesDir, "mentee.json", &profile)
	}
	return profile
}

// GetMentorProfile 读取导师档案，不存在时返回空档案
func (s *ProfileService) GetMentorProfile() models.MentorProfile {
	var profile models.MentorProfile
	if s.store.Exists(profilesDir, "mentor.json") {
		s.store.LoadJSON(profilesDir, "mentor.json", &profile)
	}
	return profile
}

// CurrentUser 解析当前用户
// 回退链：显式的 user_type，其次看哪份档案有内容，默认学员
func (s *ProfileService) CurrentUser() models.CurrentUser {
	var record models.UserRecord
	if s.store.Exists(profilesDir, "user.json") {
		s.store.LoadJSON(profilesDir, "user.json", &record)
	}
	mentee := s.GetMenteeProfile()
	mentor := s.GetMentorProfile()

	menteeUser := models.CurrentUser{
		Role:  models.UserTypeMentee,
		Name:  fallbackName(mentee.Name, mentee.FirstName, mentee.LastName, "Mentee"),
		Email: mentee.Email,
	}
	mentorUser := models.CurrentUser{
		Role:  models.UserTypeMentor,
		Name:  fallbackName(mentor.Name, mentor.FirstName, mentor.LastName, "Mentor"),
		Email: mentor.Email,
	}

	switch record.UserType {
	case models.UserTypeMentor:
		return mentorUser
	case models.UserTypeMentee:
		return menteeUser
	}

	if hasContent(mentee.Email, mentee.Name, mentee.FirstName, mentee.LastName) {
		return menteeUser
	}
	if hasContent(mentor.Email, mentor.Name, mentor.FirstName, mentor.LastName) {
		return mentorUser
	}
	return menteeUser
}

func validateName(name, first, last string) error {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(first) == "" && strings.TrimSpace(last) == "" {
		return errors.NewValidationError("姓名不能为空", nil)
	}
	return nil
}

func displayName(name, first, last string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func fallbackName(name, first, last, fallback string) string {
	if resolved := displayName(name, first, last); resolved != "" {
		return resolved
	}
	return fallback
}

func hasContent(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
