// internal/replyengine/names.go
package replyengine

import "strings"

// Group-chat rosters, keyed by the thread-id substring that routes to them.
// Each reply draws a speaker independently at random; no attempt is made to
// keep one speaker consistent across replies in a thread. A weighted draw
// toward the most recent non-user speaker would tighten continuity if the
// group chats ever need it.
var (
	menteeRosters = map[string][]string{
		"checkins":      {"Mentee 1", "Mentee 2", "Mentee 3"},
		"opportunities": {"Mentee 4", "Mentee 5", "Mentee 6"},
		"interviews":    {"Mentee 6", "Mentee 7", "Mentee 8"},
	}
	menteeDefaultRoster = []string{"Mentee 2", "Mentee 4", "Mentee 6"}

	mentorRosters = map[string][]string{
		"strategy":  {"Mentor Ella", "Mentor David", "Mentor Priya"},
		"resources": {"Mentor Nina", "Mentor Amir", "Mentor Zoe"},
		"cases":     {"Mentor Leo", "Mentor Zara", "Mentor Ian"},
	}
	mentorDefaultRoster = []string{"Mentor Ella", "Mentor Nina", "Mentor Leo"}
)

// resolveName maps persona + thread id to the reply's display name. Direct
// personas use the partner's real name with a fixed generic fallback; peer
// personas draw from the thread's roster.
func (e *Engine) resolveName(persona Persona, threadID, fallbackName string) string {
	switch persona {
	case PersonaMentorDirect:
		if fallbackName != "" {
			return fallbackName
		}
		return "Mentor"
	case PersonaMenteeDirect:
		if fallbackName != "" {
			return fallbackName
		}
		return "Your Mentee"
	case PersonaMenteePeer:
		return e.pick(rosterFor(threadID, menteeRosters, menteeDefaultRoster))
	case PersonaMentorPeer:
		return e.pick(rosterFor(threadID, mentorRosters, mentorDefaultRoster))
	}

	if fallbackName != "" {
		return fallbackName
	}
	return "Community"
}

func rosterFor(threadID string, rosters map[string][]string, fallback []string) []string {
	for hint, roster := range rosters {
		if strings.Contains(threadID, hint) {
			return roster
		}
	}
	return fallback
}
