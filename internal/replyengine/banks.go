// internal/replyengine/banks.go
package replyengine

// personaBank produces the body fragment of a reply for one persona. Each
// persona owns an independent bank of literal templates keyed by topic group
// plus a generic fallback, so the four voices stay independently testable.
type personaBank interface {
	body(group TopicGroup, topics []string, pick func([]string) string) string
}

func bankFor(persona Persona) personaBank {
	switch persona {
	case PersonaMentorDirect:
		return mentorDirectBank{}
	case PersonaMenteePeer:
		return menteePeerBank{}
	case PersonaMentorPeer:
		return mentorPeerBank{}
	default:
		return menteeDirectBank{}
	}
}

// withTopic extends a chosen fragment with a clause naming the first
// extracted topic, when there is one.
func withTopic(base string, topics []string) string {
	if len(topics) == 0 || topics[0] == "" {
		return base
	}
	return base + " If you want, we can focus on " + topics[0] + " first."
}

// mentorDirectBank is the mentor speaking to their own mentee.
type mentorDirectBank struct{}

func (mentorDirectBank) body(group TopicGroup, topics []string, pick func([]string) string) string {
	var options []string
	switch group {
	case TopicCV:
		options = []string{
			"send your latest CV and I’ll give line-by-line feedback.",
			"let’s tighten your CV bullets and impact statements first.",
			"we can do a focused CV review and prioritize top fixes.",
		}
	case TopicInterview:
		options = []string{
			"let’s run a mock interview and review your answers right after.",
			"I’ll send a set of mock questions and we can practice together.",
			"we can prep behavioural and technical answers step by step.",
		}
	case TopicGoals:
		options = []string{
			"let’s set one clear weekly goal and one measurable outcome.",
			"we can break this into smaller milestones for this month.",
			"I’ll help you prioritize the highest-impact goal first.",
		}
	case TopicOpportunities:
		options = []string{
			"share the roles you’re targeting and I’ll help prioritize them.",
			"let’s shortlist the best-fit opportunities and tailor your approach.",
			"send the listings and I’ll help refine your application strategy.",
		}
	default:
		options = []string{
			"let’s turn this into a practical action plan for this week.",
			"we can break this into two clear next steps.",
			"I can help you prioritize what to do first.",
		}
	}
	return withTopic(pick(options), topics)
}

// menteeDirectBank is the mentee speaking to their own mentor.
type menteeDirectBank struct{}

func (menteeDirectBank) body(group TopicGroup, topics []string, pick func([]string) string) string {
	var options []string
	switch group {
	case TopicCV:
		options = []string{
			"I really want to improve my CV — can we start with the summary and bullet points?",
			"I can send my latest CV today if you can review it.",
			"my CV needs work; I’d appreciate specific feedback on what to fix first.",
		}
	case TopicInterview:
		options = []string{
			"can we do a mock interview soon? I want to build confidence.",
			"I’m preparing for interviews now and could use structured practice.",
			"I’d like to practice behavioural questions together this week.",
		}
	case TopicGoals:
		options = []string{
			"I’d love help turning this into weekly goals I can actually follow.",
			"can we set 2-3 clear goals for this month?",
			"a simple roadmap would help me stay consistent.",
		}
	case TopicOpportunities:
		options = []string{
			"I’m applying this week and could use help prioritizing roles.",
			"could we review my application strategy before I submit more?",
			"I’m unsure which opportunities to focus on first — can you help me choose?",
		}
	case TopicCheckins:
		options = []string{
			"a weekly check-in would help me stay accountable.",
			"can we keep one regular session slot each week?",
			"structured check-ins would really help my progress.",
		}
	case TopicConcern:
		options = []string{
			"I’m feeling a bit stuck, so I’d appreciate a simple next-step plan.",
			"I’m finding this hard right now; can we break it down together?",
			"I could use help prioritizing what to do first.",
		}
	default:
		options = []string{
			"that makes sense — I can start on it and share an update soon.",
			"got it, I’ll work on this and report back.",
			"sounds good, I’m ready to take the next step.",
		}
	}
	return withTopic(pick(options), topics)
}

// menteePeerBank is a fellow mentee in a mentee group chat.
type menteePeerBank struct{}

func (menteePeerBank) body(group TopicGroup, topics []string, pick func([]string) string) string {
	var options []string
	switch group {
	case TopicOpportunities:
		options = []string{
			"I saw a similar posting yesterday and I’ll drop the link here.",
			"I can share a couple more roles in this thread too.",
			"I’m applying to similar roles this week, let’s compare notes.",
		}
	case TopicInterview:
		options = []string{
			"I can practice this with you later today if you want.",
			"we should do a quick mock round and share feedback after.",
			"I’ve got a prep doc for this and can post it here.",
		}
	case TopicCheckins:
		options = []string{
			"a weekly progress message helped my mentor reply faster.",
			"setting one fixed check-in day made this easier for me.",
			"I started sending one clear question per update and got better responses.",
		}
	default:
		options = []string{
			"that’s useful, I’m dealing with something similar too.",
			"good point — I’ll share what worked for me in this chat.",
			"I’m in the same boat, happy to collaborate on this.",
		}
	}
	return withTopic(pick(options), topics)
}

// mentorPeerBank is a fellow mentor in a mentor group chat.
type mentorPeerBank struct{}

func (mentorPeerBank) body(group TopicGroup, topics []string, pick func([]string) string) string {
	var options []string
	switch group {
	case TopicStrategy, TopicCheckins:
		options = []string{
			"I use a fixed cadence with weekly async updates and a deeper bi-weekly check-in.",
			"what improved for me was a clear session structure plus follow-up actions.",
			"consistent check-ins and brief recaps made the biggest difference.",
		}
	case TopicResources, TopicCV:
		options = []string{
			"I can share my mentoring templates and review checklist in this thread.",
			"I’ve got a compact starter guide that might help here.",
			"I use a simple rubric for CV/portfolio feedback and can post it.",
		}
	case TopicCases, TopicInterview:
		options = []string{
			"I start with framework clarity, then drill with timed practice.",
			"scenario-based prompts worked best for my mentees this cycle.",
			"I found concise framework practice improved candidate confidence fast.",
		}
	case TopicGoals:
		options = []string{
			"I align mentees to one monthly objective with weekly checkpoints.",
			"goal quality improved when we used milestone-based tracking.",
			"clear ownership and deadlines made goal plans actually stick.",
		}
	default:
		options = []string{
			"good point — I’ve seen similar patterns in my mentoring sessions.",
			"I’d test one change first, then iterate based on outcomes.",
			"that’s a useful take; I can share what worked in my context too.",
		}
	}
	return withTopic(pick(options), topics)
}
