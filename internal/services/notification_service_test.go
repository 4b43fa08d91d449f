package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorme/MentorMe/internal/models"
)

func TestNotificationsNewestFirst(t *testing.T) {
	s := NewNotificationService(newTestStore(t))

	require.NoError(t, s.Add(models.NewNotification("test", "first")))
	require.NoError(t, s.Add(models.NewNotification("test", "second")))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
}

func TestMarkRead(t *testing.T) {
	s := NewNotificationService(newTestStore(t))

	notification := models.NewNotification("test", "unread")
	require.NoError(t, s.Add(notification))

	require.NoError(t, s.MarkRead(notification.ID))
	assert.True(t, s.List()[0].Read)

	assert.Error(t, s.MarkRead("missing"))
}

func TestMentorNameRotation(t *testing.T) {
	s := NewNotificationService(newTestStore(t))
	roster := models.SeedMentors()

	// 下标缺省从0开始，每次取名后自增，越界时回绕
	assert.Equal(t, "Samira", s.NextMentorName(roster))
	assert.Equal(t, "Omar", s.NextMentorName(roster))
	assert.Equal(t, "Lena", s.NextMentorName(roster))
	assert.Equal(t, "Samira", s.NextMentorName(roster))

	assert.Equal(t, "A mentor", s.NextMentorName(nil))
}
