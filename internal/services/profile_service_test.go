package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/storage"
)

func newTestStore(t *testing.T) *storage.FileStorage {
	t.Helper()
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestMenteeOnboardingRoundTrip(t *testing.T) {
	s := NewProfileService(newTestStore(t))

	err := s.SaveMenteeOnboarding(models.MenteeProfile{
		FirstName:  "Alex",
		LastName:   "Chen",
		Email:      "alex@example.com",
		TargetRole: "Data Analyst",
	})
	require.NoError(t, err)

	profile := s.GetMenteeProfile()
	assert.Equal(t, "Alex Chen", profile.Name)
	assert.Equal(t, "Data Analyst", profile.TargetRole)

	user := s.CurrentUser()
	assert.Equal(t, models.UserTypeMentee, user.Role)
	assert.Equal(t, "Alex Chen", user.Name)
	assert.Equal(t, "alex@example.com", user.Email)
}

func TestOnboardingRequiresName(t *testing.T) {
	s := NewProfileService(newTestStore(t))

	err := s.SaveMenteeOnboarding(models.MenteeProfile{Email: "x@example.com"})
	assert.Error(t, err)
}

func TestCurrentUserExplicitRoleWins(t *testing.T) {
	s := NewProfileService(newTestStore(t))

	require.NoError(t, s.SaveMenteeOnboarding(models.MenteeProfile{Name: "Alex"}))
	require.NoError(t, s.SaveMentorOnboarding(models.MentorProfile{Name: "Samira", Role: "Data Analyst"}))

	// 最后一次入驻写入的 user_type 是 mentor
	user := s.CurrentUser()
	assert.Equal(t, models.UserTypeMentor, user.Role)
	assert.Equal(t, "Samira", user.Name)
}

func TestCurrentUserFallsBackToPopulatedProfile(t *testing.T) {
	store := newTestStore(t)
	s := NewProfileService(store)

	// 只有导师档案而没有用户记录
	require.NoError(t, store.SaveJSON("profiles", "mentor.json", models.MentorProfile{Name: "Omar"}))

	user := s.CurrentUser()
	assert.Equal(t, models.UserTypeMentor, user.Role)
	assert.Equal(t, "Omar", user.Name)
}

func TestCurrentUserDefaultsToMentee(t *testing.T) {
	s := NewProfileService(newTestStore(t))

	user := s.CurrentUser()
	assert.Equal(t, models.UserTypeMentee, user.Role)
	assert.Equal(t, "Mentee", user.Name)
}
