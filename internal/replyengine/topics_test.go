package replyengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanToken(t *testing.T) {
	assert.Equal(t, "c++", cleanToken("C++!"))
	assert.Equal(t, "front-end", cleanToken("Front-End,"))
	assert.Equal(t, ".net", cleanToken(".NET"))
	assert.Equal(t, "", cleanToken("!?!"))
}

func TestExtractTopicsEmpty(t *testing.T) {
	assert.Nil(t, ExtractTopics(""))
	assert.Nil(t, ExtractTopics("   "))
}

func TestExtractTopics(t *testing.T) {
	topics := ExtractTopics("I want to improve my resume before the consulting internship applications")

	assert.LessOrEqual(t, len(topics), maxTopics)
	assert.NotEmpty(t, topics)
	for _, topic := range topics {
		assert.Equal(t, cleanToken(topic), topic, "topics must be normalized")
		_, stop := stopwords[topic]
		assert.False(t, stop, "stopword leaked into topics: %q", topic)
	}
}

func TestExtractTopicsDeduplicates(t *testing.T) {
	topics := ExtractTopics("resume resume resume")

	seen := map[string]int{}
	for _, topic := range topics {
		seen[topic]++
	}
	for topic, count := range seen {
		assert.Equal(t, 1, count, "duplicate topic %q", topic)
	}
}
