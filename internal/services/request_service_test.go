package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorme/MentorMe/internal/models"
)

func TestCreateAndAcceptRequest(t *testing.T) {
	store := newTestStore(t)
	notifications := NewNotificationService(store)
	s := NewRequestService(store, notifications)

	mentee := models.MenteeProfile{Name: "Alex Chen", Email: "alex@example.com"}
	request, err := s.CreateRequest("m1", "Samira", mentee)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)

	// 同一学员对同一导师的重复待处理请求被拒绝
	_, err = s.CreateRequest("m1", "Samira", mentee)
	assert.Error(t, err)

	mentor := models.MentorProfile{Name: "Samira", Company: "FinTech Co"}
	updated, err := s.UpdateStatus(request.ID, models.RequestAccepted, mentor)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, updated.Status)

	// 接受后为学员生成通知，最新在前
	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationRequestAccepted, list[0].Type)
	assert.Equal(t, "Samira", list[0].MentorName)
	assert.Equal(t, "alex@example.com", list[0].MenteeEmail)
	assert.False(t, list[0].Read)

	accepted, ok := s.AcceptedForMentee(models.CurrentUser{
		Role: models.UserTypeMentee, Name: "Alex Chen", Email: "alex@example.com",
	})
	require.True(t, ok)
	assert.Equal(t, request.ID, accepted.ID)

	acceptedForMentor, ok := s.AcceptedForMentor("m1", "Samira")
	require.True(t, ok)
	assert.Equal(t, request.ID, acceptedForMentor.ID)
}

func TestDeclineRequestSkipsNotification(t *testing.T) {
	store := newTestStore(t)
	notifications := NewNotificationService(store)
	s := NewRequestService(store, notifications)

	request, err := s.CreateRequest("m2", "Omar", models.MenteeProfile{Name: "Alex"})
	require.NoError(t, err)

	_, err = s.UpdateStatus(request.ID, models.RequestDeclined, models.MentorProfile{Name: "Omar"})
	require.NoError(t, err)

	assert.Empty(t, notifications.List())

	_, ok := s.AcceptedForMentee(models.CurrentUser{Role: models.UserTypeMentee, Name: "Alex"})
	assert.False(t, ok)
}

func TestUpdateStatusValidation(t *testing.T) {
	store := newTestStore(t)
	s := NewRequestService(store, NewNotificationService(store))

	_, err := s.UpdateStatus("missing", models.RequestAccepted, models.MentorProfile{})
	assert.Error(t, err)

	request, err := s.CreateRequest("m1", "Samira", models.MenteeProfile{Name: "Alex"})
	require.NoError(t, err)

	_, err = s.UpdateStatus(request.ID, models.RequestStatus("archived"), models.MentorProfile{})
	assert.Error(t, err)
}

func TestListForMentorLegacyNameMatch(t *testing.T) {
	store := newTestStore(t)
	s := NewRequestService(store, NewNotificationService(store))

	_, err := s.CreateRequest("", "Lena", models.MenteeProfile{Name: "Alex"})
	require.NoError(t, err)

	assert.Len(t, s.ListForMentor("", "Lena"), 1)
	assert.Empty(t, s.ListForMentor("", "Omar"))
}
