package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalLifecycle(t *testing.T) {
	s := NewGoalService(newTestStore(t))

	first, err := s.AddGoal("Alex Chen", "Finish CV draft")
	require.NoError(t, err)
	second, err := s.AddGoal("Alex Chen", "Apply to 3 roles")
	require.NoError(t, err)
	third, err := s.AddGoal("Alex Chen", "Book a mock interview")
	require.NoError(t, err)

	toggled, err := s.ToggleGoal("Alex Chen", first.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	goals, progress := s.ListGoals("Alex Chen")
	require.Len(t, goals, 3)
	assert.Equal(t, 1, progress.Completed)
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 33, progress.Percent)

	require.NoError(t, s.DeleteGoal("Alex Chen", second.ID))
	goals, progress = s.ListGoals("Alex Chen")
	require.Len(t, goals, 2)
	assert.Equal(t, 50, progress.Percent)
	assert.Equal(t, third.ID, goals[1].ID)
}

func TestGoalsArePerOwner(t *testing.T) {
	s := NewGoalService(newTestStore(t))

	_, err := s.AddGoal("Alex", "Mine")
	require.NoError(t, err)

	goals, progress := s.ListGoals("Samira")
	assert.Empty(t, goals)
	assert.Equal(t, 0, progress.Percent)
}

func TestGoalValidation(t *testing.T) {
	s := NewGoalService(newTestStore(t))

	_, err := s.AddGoal("Alex", "   ")
	assert.Error(t, err)

	_, err = s.ToggleGoal("Alex", "missing")
	assert.Error(t, err)

	assert.Error(t, s.DeleteGoal("Alex", "missing"))
}
