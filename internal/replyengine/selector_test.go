package replyengine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() *Engine {
	return New(rand.New(rand.NewSource(1)), DefaultOptions())
}

func TestPickNonRepeatingPrefersFresh(t *testing.T) {
	e := newTestEngine()

	got := e.pickNonRepeating([]string{"a", "b", "c"}, []string{"a", "b"})
	assert.Equal(t, "c", got)
}

func TestPickNonRepeatingAvoidsLast(t *testing.T) {
	e := newTestEngine()

	// Every candidate was used recently; the rotation must still dodge the
	// single most recent reply.
	got := e.pickNonRepeating([]string{"a", "b"}, []string{"b", "a"})
	assert.Equal(t, "b", got)
}

func TestPickNonRepeatingExhausted(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, "a", e.pickNonRepeating([]string{"a"}, []string{"a"}))
	assert.Equal(t, fillerReply, e.pickNonRepeating(nil, []string{"a"}))
}

func TestForceDifferentPassThrough(t *testing.T) {
	got := forceDifferent("fresh reply", []string{"old one", "another"}, 4)
	assert.Equal(t, "fresh reply", got)
}

func TestForceDifferentAppendsTail(t *testing.T) {
	got := forceDifferent("same reply", []string{"same reply"}, 4)

	assert.NotEqual(t, "same reply", got)
	assert.True(t, strings.HasPrefix(got, "same reply "), "tail must extend the base: %q", got)
}

func TestForceDifferentOnlyChecksWindow(t *testing.T) {
	recent := []string{"same reply", "r1", "r2", "r3", "r4"}

	// The collision sits outside the trailing window of four.
	got := forceDifferent("same reply", recent, 4)
	assert.Equal(t, "same reply", got)
}

func TestForceDifferentLastResort(t *testing.T) {
	recent := []string{"base"}
	for _, tail := range differentiationTails {
		recent = append(recent, "base "+tail)
	}

	got := forceDifferent("base", recent, len(recent))
	assert.Equal(t, "base "+lastResortTail, got)
}

func TestExcluding(t *testing.T) {
	assert.Equal(t, []string{"b"}, excluding([]string{"a", "b", "c"}, "a", "c"))
	assert.Empty(t, excluding([]string{"a"}, "a"))
}
