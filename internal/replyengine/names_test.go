package replyengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNameDirect(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, "Samira Khan", e.resolveName(PersonaMentorDirect, "dm_Samira_Khan", "Samira Khan"))
	assert.Equal(t, "Mentor", e.resolveName(PersonaMentorDirect, "dm_mentee", ""))
	assert.Equal(t, "Alex", e.resolveName(PersonaMenteeDirect, "dm_mentee", "Alex"))
	assert.Equal(t, "Your Mentee", e.resolveName(PersonaMenteeDirect, "dm_mentee", ""))
}

func TestResolveNamePeerRosters(t *testing.T) {
	e := newTestEngine()

	for i := 0; i < 20; i++ {
		name := e.resolveName(PersonaMenteePeer, "mentee_group_checkins", "")
		assert.Contains(t, menteeRosters["checkins"], name)

		name = e.resolveName(PersonaMentorPeer, "mentor_group_cases", "")
		assert.Contains(t, mentorRosters["cases"], name)
	}
}

func TestResolveNamePeerFallbackRoster(t *testing.T) {
	e := newTestEngine()

	name := e.resolveName(PersonaMenteePeer, "some_unknown_thread", "")
	assert.Contains(t, menteeDefaultRoster, name)

	name = e.resolveName(PersonaMentorPeer, "some_unknown_thread", "")
	assert.Contains(t, mentorDefaultRoster, name)
}

func TestResolveNameUnknownPersona(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, "Priya", e.resolveName(Persona("moderator"), "any", "Priya"))
	assert.Equal(t, "Community", e.resolveName(Persona("moderator"), "any", ""))
}
