// internal/services/request_service.go
package services

import (
	"sync"
	"time"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

const requestsDir = "requests"

// RequestService 处理学员向导师发起的连接请求
type RequestService struct {
	store         *storage.FileStorage
	notifications *NotificationService
	mu            sync.Mutex
}

// NewRequestService 创建请求服务
func NewRequestService(store *storage.FileStorage, notifications *NotificationService) *RequestService {
	return &RequestService{store: store, notifications: notifications}
}

// CreateRequest 创建一条待处理请求
func (s *RequestService) CreateRequest(mentorID, mentorName string, mentee models.MenteeProfile) (models.MentorRequest, error) {
	if mentorID == "" && mentorName == "" {
		return models.MentorRequest{}, errors.NewInvalid(errors.ResourceRequest, "请求必须指定导师")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	requests := s.load()
	for _, request := range requests {
		if request.Status != models.RequestPending {
			continue
		}
		if (mentorID != "" && request.MentorID == mentorID) &&
			sameMentee(request.Mentee, mentee) {
			return models.MentorRequest{}, errors.NewDuplicateRequest()
		}
	}

	request := models.NewMentorRequest(mentorID, mentorName, mentee)
	requests = append(requests, request)
	if err := s.store.SaveJSON(requestsDir, "requests.json", requests); err != nil {
		return models.MentorRequest{}, errors.NewProcessingError("保存请求失败", err)
	}
	return request, nil
}

// ListRequests 返回全部请求
func (s *RequestService) ListRequests() []models.MentorRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ListForMentor 按导师过滤请求，兼容只记录了导师名的旧数据
func (s *RequestService) ListForMentor(mentorID, mentorName string) []models.MentorRequest {
	var matched []models.MentorRequest
	for _, request := range s.ListRequests() {
		if mentorID != "" && request.MentorID == mentorID {
			matched = append(matched, request)
			continue
		}
		if mentorName != "" && request.MentorName == mentorName {
			matched = append(matched, request)
		}
	}
	return matched
}

// AcceptedForMentee 返回该学员已被接受的请求
func (s *RequestService) AcceptedForMentee(user models.CurrentUser) (models.MentorRequest, bool) {
	for _, request := range s.ListRequests() {
		if request.Status != models.RequestAccepted {
			continue
		}
		if user.Email != "" && request.Mentee.Email == user.Email {
			return request, true
		}
		if user.Email == "" && request.Mentee.Name == user.Name {
			return request, true
		}
	}
	return models.MentorRequest{}, false
}

// AcceptedForMentor 返回该导师已接受的第一条请求
func (s *RequestService) AcceptedForMentor(mentorID, mentorName string) (models.MentorRequest, bool) {
	for _, request := range s.ListForMentor(mentorID, mentorName) {
		if request.Status == models.RequestAccepted {
			return request, true
		}
	}
	return models.MentorRequest{}, false
}

// UpdateStatus 更新请求状态
// 接受时为学员生成一条通知
func (s *RequestService) UpdateStatus(requestID string, status models.RequestStatus, mentor models.MentorProfile) (models.MentorRequest, error) {
	switch status {
	case models.RequestAccepted, models.RequestDeclined:
	default:
		return models.MentorRequest{}, errors.NewInvalid(errors.ResourceRequest, "无效的请求状态: "+string(status))
	}

	s.mu.Lock()
	requests := s.load()
	index := -1
	for i, request := range requests {
		if request.ID == requestID {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return models.MentorRequest{}, errors.NewRequestNotFound(requestID)
	}

	requests[index].Status = status
	requests[index].UpdatedAt = time.Now().UTC()
	updated := requests[index]

	if err := s.store.SaveJSON(requestsDir, "requests.json", requests); err != nil {
		s.mu.Unlock()
		return models.MentorRequest{}, errors.NewProcessingError("保存请求失败", err)
	}
	s.mu.Unlock()

	if status == models.RequestAccepted && s.notifications != nil {
		mentorName := fallbackName(mentor.Name, mentor.FirstName, mentor.LastName, "A mentor")
		notification := models.NewNotification(
			models.NotificationRequestAccepted,
			mentorName+" accepted your mentorship request",
		)
		notification.MentorName = mentorName
		notification.MenteeName = updated.Mentee.Name
		notification.MenteeEmail = updated.Mentee.Email
		notification.Body = mentorBlurb(mentor)
		s.notifications.Add(notification)
	}

	return updated, nil
}

func (s *RequestService) load() []models.MentorRequest {
	var requests []models.MentorRequest
	if s.store.Exists(requestsDir, "requests.json") {
		s.store.LoadJSON(requestsDir, "requests.json", &requests)
	}
	return requests
}

func sameMentee(a, b models.MenteeProfile) bool {
	if a.Email != "" || b.Email != "" {
		return a.Email == b.Email
	}
	return a.Name == b.Name
}

func mentorBlurb(mentor models.MentorProfile) string {
	switch {
	case mentor.Company != "" && mentor.Industry != "":
		return mentor.Company + " · " + mentor.Industry
	case mentor.Company != "":
		return mentor.Company
	case mentor.Industry != "":
		return mentor.Industry
	}
	return ""
}
