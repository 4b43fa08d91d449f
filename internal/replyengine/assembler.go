// internal/replyengine/assembler.go
package replyengine

// openingOptions returns the short opening clauses for an intent.
func openingOptions(intent Intent) []string {
	switch intent {
	case IntentGreeting:
		return []string{"Hey!", "Hi!", "Hello!"}
	case IntentThanks:
		return []string{"Anytime!", "You’re welcome!", "Happy to help!"}
	case IntentQuestion:
		return []string{"Great question.", "Good question.", "That’s a good ask."}
	case IntentConcern:
		return []string{"I hear you.", "That’s understandable.", "You’re not alone in that."}
	}
	return []string{"Makes sense.", "Got it.", "Yeah, that tracks."}
}

// groupLabels maps a topic group to a human-readable label used in anchor
// clauses when no explicit topic was extracted.
var groupLabels = map[TopicGroup]string{
	TopicOpportunities: "applications",
	TopicInterview:     "interview prep",
	TopicCheckins:      "check-ins",
	TopicCV:            "your CV",
	TopicGoals:         "your goals",
	TopicResources:     "resources",
	TopicCases:         "case prep",
	TopicStrategy:      "mentoring strategy",
	TopicConcern:       "this challenge",
}

func topicLabel(group TopicGroup, topics []string) string {
	for _, topic := range topics {
		if len(topic) > 2 {
			return topic
		}
	}
	if label, ok := groupLabels[group]; ok {
		return label
	}
	return "this"
}

// anchorOptions returns the closing clauses referencing the detected topic.
func anchorOptions(intent Intent, group TopicGroup, topics []string, persona Persona) []string {
	label := topicLabel(group, topics)

	switch intent {
	case IntentGreeting:
		return []string{
			"Tell me what part of " + label + " you want to tackle first.",
			"If you want, we can start with " + label + ".",
			"Let’s focus on " + label + " first and build from there.",
		}
	case IntentThanks:
		return []string{
			"When you’re ready, send your next update on " + label + ".",
			"Keep me posted on how " + label + " goes this week.",
			"Share your progress on " + label + " and we’ll refine it together.",
		}
	case IntentQuestion:
		return []string{
			"For " + label + ", I’d start with one practical step today.",
			"On " + label + ", begin with the highest-impact action first.",
			"If your question is about " + label + ", we can break it into two simple steps.",
		}
	case IntentConcern:
		return []string{
			"We can make " + label + " feel manageable by doing one step at a time.",
			"Let’s simplify " + label + " and focus on one clear win first.",
			"You don’t need to solve all of " + label + " at once; we can pace it.",
		}
	}

	hint := "together"
	switch persona {
	case PersonaMentorPeer:
		hint = "from mentor experience"
	case PersonaMenteePeer:
		hint = "as fellow mentees"
	}

	return []string{
		"Since you mentioned " + label + ", let’s focus on that first " + hint + ".",
		"Based on your message, " + label + " seems most important right now.",
		"We can turn " + label + " into a clear next action this week.",
	}
}

// assemble joins every opening × body × anchor combination with single
// spaces and deduplicates the result, preserving generation order.
func assemble(openings, bodies, anchors []string) []string {
	candidates := make([]string, 0, len(openings)*len(bodies)*len(anchors))
	for _, opening := range openings {
		for _, body := range bodies {
			for _, anchor := range anchors {
				candidates = append(candidates, opening+" "+body+" "+anchor)
			}
		}
	}
	return uniqueStrings(candidates)
}
