// internal/replyengine/topics.go
package replyengine

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// stopwords filtered out of raw-token keyword extraction: articles,
// pronouns, auxiliaries, question words, greetings and affirmations.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "to": {}, "for": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "with": {}, "is": {}, "it": {},
	"this": {}, "that": {}, "i": {}, "im": {}, "i'm": {}, "we": {}, "you": {},
	"my": {}, "our": {}, "your": {}, "me": {}, "us": {}, "be": {}, "am": {},
	"are": {}, "was": {}, "were": {}, "do": {}, "did": {}, "does": {},
	"can": {}, "could": {}, "should": {}, "would": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "how": {}, "why": {},
	"hello": {}, "hi": {}, "hey": {}, "yeah": {}, "yep": {}, "ok": {},
	"okay": {}, "yes": {},
}

// tokens keep letters, digits and the characters common in skill names
// ("c++", "c#", ".net", "front-end").
var tokenStrip = regexp.MustCompile(`[^a-z0-9+#.\- ]+`)

const maxTopics = 3

func cleanToken(token string) string {
	return strings.TrimSpace(tokenStrip.ReplaceAllString(strings.ToLower(token), ""))
}

// ExtractTopics pulls up to three keyword topics out of a message. Noun and
// entity candidates from the POS tagger are merged ahead of the filtered raw
// tokens, then the list is deduplicated in first-seen order and capped.
func ExtractTopics(message string) []string {
	text := strings.TrimSpace(message)
	if text == "" {
		return nil
	}

	var merged []string
	if doc, err := prose.NewDocument(text); err == nil {
		for _, tok := range doc.Tokens() {
			if strings.HasPrefix(tok.Tag, "NN") {
				merged = append(merged, cleanToken(tok.Text))
			}
		}
		for _, ent := range doc.Entities() {
			merged = append(merged, cleanToken(ent.Text))
		}
	}

	for _, raw := range strings.Fields(strings.ToLower(text)) {
		term := cleanToken(raw)
		if len(term) <= 2 {
			continue
		}
		if _, stop := stopwords[term]; stop {
			continue
		}
		merged = append(merged, term)
	}

	topics := uniqueStrings(merged)
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}
