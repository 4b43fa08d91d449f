package replyengine

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorme/MentorMe/internal/models"
)

func TestOptionsNormalized(t *testing.T) {
	opts := Options{}.normalized()
	assert.Equal(t, DefaultOptions(), opts)

	opts = Options{RecentWindow: 2, RepeatWindow: 1, BodySamples: 5}.normalized()
	assert.Equal(t, 2, opts.RecentWindow)
	assert.Equal(t, 1, opts.RepeatWindow)
	assert.Equal(t, 5, opts.BodySamples)
}

func TestBuildSmartReplyNeverEmpty(t *testing.T) {
	e := newTestEngine()

	inputs := []Input{
		{Message: "hi", Persona: PersonaMentorDirect, ThreadID: "dm_Samira", FallbackName: "Samira"},
		{Message: "", Persona: PersonaMenteePeer, ThreadID: "mentee_group_checkins"},
		{Message: "???", Persona: PersonaMentorPeer, ThreadID: "mentor_group_strategy"},
		{Message: "thanks!", Persona: Persona("unknown"), ThreadID: ""},
	}

	for _, in := range inputs {
		reply := e.BuildSmartReply(in)
		assert.NotEmpty(t, reply.Name, "input %+v", in)
		assert.NotEmpty(t, reply.Text, "input %+v", in)
	}
}

func TestBuildSmartReplyGreeting(t *testing.T) {
	e := newTestEngine()

	reply := e.BuildSmartReply(Input{
		Message:      "hi",
		Persona:      PersonaMentorDirect,
		ThreadID:     "dm_Samira",
		MyName:       "Alex",
		FallbackName: "Samira",
	})

	require.Equal(t, "Samira", reply.Name)

	var opened bool
	for _, opening := range openingOptions(IntentGreeting) {
		if len(reply.Text) >= len(opening) && reply.Text[:len(opening)] == opening {
			opened = true
		}
	}
	assert.True(t, opened, "greeting reply must start with a greeting opening: %q", reply.Text)
}

func TestBuildSmartReplyQuestionTopic(t *testing.T) {
	e := newTestEngine()

	reply := e.BuildSmartReply(Input{
		Message:      "can we do a mock interview soon?",
		Persona:      PersonaMentorDirect,
		ThreadID:     "dm_Samira",
		MyName:       "Alex",
		FallbackName: "Samira",
	})

	var opened bool
	for _, opening := range openingOptions(IntentQuestion) {
		if len(reply.Text) >= len(opening) && reply.Text[:len(opening)] == opening {
			opened = true
		}
	}
	assert.True(t, opened, "question reply must start with a question opening: %q", reply.Text)

	// The middle clause must come from the mentor's interview bank.
	interviewBodies := []string{
		"let’s run a mock interview and review your answers right after.",
		"I’ll send a set of mock questions and we can practice together.",
		"we can prep behavioural and technical answers step by step.",
	}
	var bodied bool
	for _, body := range interviewBodies {
		if strings.Contains(reply.Text, body) {
			bodied = true
		}
	}
	assert.True(t, bodied, "question reply must carry an interview body: %q", reply.Text)
}

func TestBuildSmartReplyAvoidsRepeats(t *testing.T) {
	e := New(rand.New(rand.NewSource(7)), DefaultOptions())

	var history []models.Message
	var previous []string
	for i := 0; i < 5; i++ {
		history = append(history, models.NewMessage("Alex", "can we talk about my goals this week?"))

		reply := e.BuildSmartReply(Input{
			Message:        "can we talk about my goals this week?",
			Persona:        PersonaMentorDirect,
			ThreadID:       "dm_Samira",
			RecentMessages: history,
			MyName:         "Alex",
			FallbackName:   "Samira",
		})

		assert.NotContains(t, previous, reply.Text, "round %d repeated an earlier reply", i)
		previous = append(previous, reply.Text)
		history = append(history, models.NewMessage(reply.Name, reply.Text))
	}
}

func TestRecentReplyTexts(t *testing.T) {
	var messages []models.Message
	messages = append(messages, models.NewMessage("Alex", "mine"))
	messages = append(messages, models.NewMessage("", "system"))
	for i := 0; i < 10; i++ {
		messages = append(messages, models.NewMessage("Samira", fmt.Sprintf("reply %d", i)))
	}

	texts := recentReplyTexts(messages, "Alex", 8)
	require.Len(t, texts, 8)
	assert.Equal(t, "reply 2", texts[0])
	assert.Equal(t, "reply 9", texts[7])
	assert.NotContains(t, texts, "mine")
	assert.NotContains(t, texts, "system")
}

func TestUniqueStrings(t *testing.T) {
	got := uniqueStrings([]string{"a", "", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
