// internal/replyengine/selector.go
package replyengine

// pickNonRepeating selects a candidate not present in the recent replies.
// When every candidate was recently used it falls back to a deterministic
// rotation over the candidates that at least avoids the single most recent
// reply, so back-to-back duplicates only occur with a one-element pool.
func (e *Engine) pickNonRepeating(candidates, recentTexts []string) string {
	fresh := excluding(candidates, recentTexts...)
	if len(fresh) > 0 {
		return e.pick(fresh)
	}

	if len(recentTexts) > 0 {
		last := recentTexts[len(recentTexts)-1]
		notLast := excluding(candidates, last)
		if len(notLast) > 0 {
			return notLast[len(recentTexts)%len(notLast)]
		}
	}

	if len(candidates) == 0 {
		return fillerReply
	}
	return candidates[len(recentTexts)%len(candidates)]
}

// differentiationTails are appended to a reply that would otherwise repeat
// one of the trailing replies verbatim.
var differentiationTails = []string{
	"Let’s start with one practical step and build from there.",
	"If helpful, I can break this into two quick actions.",
	"We can keep it simple and focus on what matters most first.",
	"Want me to suggest a concrete first step right now?",
	"Happy to go deeper on this if you want more detail.",
}

// lastResortTail is appended unconditionally when every differentiated form
// also collides with the repeat window.
const lastResortTail = "Let’s keep going and refine this together."

// forceDifferent guarantees the reply differs from the trailing window of
// recent replies, appending a differentiating tail when necessary.
func forceDifferent(base string, recentTexts []string, window int) string {
	recent := recentTexts
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}
	if !contains(recent, base) {
		return base
	}

	var candidates []string
	for _, tail := range differentiationTails {
		combined := base + " " + tail
		if !contains(recent, combined) {
			candidates = append(candidates, combined)
		}
	}
	if len(candidates) > 0 {
		return candidates[len(recentTexts)%len(candidates)]
	}

	return base + " " + lastResortTail
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

// excluding returns items minus every entry that appears in drop.
func excluding(items []string, drop ...string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if contains(drop, item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
