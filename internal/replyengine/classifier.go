// internal/replyengine/classifier.go
package replyengine

import (
	"regexp"
	"strings"
)

// Intent is the coarse speech-act category of a message.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentThanks    Intent = "thanks"
	IntentQuestion  Intent = "question"
	IntentConcern   Intent = "concern"
	IntentStatement Intent = "statement"
)

// TopicGroup is the coarse subject-matter category of a message.
type TopicGroup string

const (
	TopicCV            TopicGroup = "cv"
	TopicInterview     TopicGroup = "interview"
	TopicGoals         TopicGroup = "goals"
	TopicOpportunities TopicGroup = "opportunities"
	TopicCheckins      TopicGroup = "checkins"
	TopicResources     TopicGroup = "resources"
	TopicCases         TopicGroup = "cases"
	TopicStrategy      TopicGroup = "strategy"
	TopicConcern       TopicGroup = "concern"
	TopicGeneral       TopicGroup = "general"
)

// Classification is the per-message result; never persisted.
type Classification struct {
	Intent     Intent
	TopicGroup TopicGroup
	Topics     []string
}

// Intent rules, first match wins.
var (
	thanksPattern   = regexp.MustCompile(`\b(thanks|thank you|appreciate)\b`)
	greetingPattern = regexp.MustCompile(`\b(hi|hello|hey|yo|hii|heyy)\b`)
	concernPattern  = regexp.MustCompile(`\b(stuck|confused|hard|difficult|worried|overwhelmed|stress)\b`)
)

// topicRule routes a message to a topic group. A rule matches when the
// thread id carries its hint substring or the message matches its pattern;
// rules are evaluated in order.
type topicRule struct {
	group      TopicGroup
	threadHint string
	pattern    *regexp.Regexp
}

var topicRules = []topicRule{
	{TopicOpportunities, "opportunities", regexp.MustCompile(`\b(job|intern|role|application|apply|referral)\b`)},
	{TopicInterview, "interviews", regexp.MustCompile(`\b(interview|mock|star|behaviou?r|question)\b`)},
	{TopicCheckins, "checkins", regexp.MustCompile(`\b(check|meeting|call|reply|ghost|mentor)\b`)},
	{TopicCV, "", regexp.MustCompile(`\b(cv|resume|portfolio)\b`)},
	{TopicGoals, "", regexp.MustCompile(`\b(goal|plan|roadmap|milestone)\b`)},
	{TopicResources, "resources", regexp.MustCompile(`\b(template|resource|guide|rubric)\b`)},
	{TopicCases, "cases", regexp.MustCompile(`\b(case|pm|product)\b`)},
	{TopicStrategy, "strategy", regexp.MustCompile(`\b(cadence|accountability|session)\b`)},
}

// affirmationWords are short agreement tokens that carry no topic of their
// own; a message made only of these inherits its topic from the thread's
// recent replies.
var affirmationWords = map[string]struct{}{
	"yes": {}, "yeah": {}, "yep": {}, "yup": {}, "sure": {}, "ok": {},
	"okay": {}, "fine": {}, "great": {}, "cool": {}, "perfect": {},
	"alright": {}, "absolutely": {}, "sounds": {}, "good": {}, "lets": {},
	"let's": {}, "do": {}, "it": {}, "that": {}, "works": {}, "deal": {},
}

// Classify inspects one message. recentTexts is the trailing window of
// replies not authored by the user (oldest first); it is only consulted for
// the short-affirmation topic fallback.
func Classify(message, threadID string, recentTexts []string) Classification {
	return Classification{
		Intent:     detectIntent(message),
		TopicGroup: detectTopicGroupWithHistory(message, threadID, recentTexts),
		Topics:     ExtractTopics(message),
	}
}

func detectIntent(message string) Intent {
	text := strings.ToLower(message)

	switch {
	case thanksPattern.MatchString(text):
		return IntentThanks
	case greetingPattern.MatchString(text):
		return IntentGreeting
	case strings.Contains(text, "?"):
		return IntentQuestion
	case concernPattern.MatchString(text):
		return IntentConcern
	}
	return IntentStatement
}

func detectTopicGroup(message, threadID string) TopicGroup {
	text := strings.ToLower(message)

	for _, rule := range topicRules {
		if rule.threadHint != "" && strings.Contains(threadID, rule.threadHint) {
			return rule.group
		}
		if rule.pattern.MatchString(text) {
			return rule.group
		}
	}
	return TopicGeneral
}

func detectTopicGroupWithHistory(message, threadID string, recentTexts []string) TopicGroup {
	group := detectTopicGroup(message, threadID)
	if group != TopicGeneral || !isShortAffirmation(message) {
		return group
	}

	// Most recent reply first; reuse the first topical one.
	for i := len(recentTexts) - 1; i >= 0; i-- {
		if prev := detectTopicGroup(recentTexts[i], ""); prev != TopicGeneral {
			return prev
		}
	}
	return TopicGeneral
}

// isShortAffirmation reports whether the message is a bare agreement like
// "yes", "sure", "ok let's do it".
func isShortAffirmation(message string) bool {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(message)))
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		word = strings.Trim(word, ".,!?")
		if word == "" {
			continue
		}
		if _, ok := affirmationWords[word]; !ok {
			return false
		}
	}
	return true
}
