// internal/replyengine/engine.go
//
// Package replyengine composes simulated conversational replies for the
// community chat threads. It classifies the incoming message, assembles
// candidate sentences from persona-specific fragment banks, and selects one
// that has not been used recently in the thread.
package replyengine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mentorme/MentorMe/internal/models"
)

// Persona identifies the conversational role producing the reply.
type Persona string

const (
	// PersonaMentorDirect is the mentor answering their mentee in a direct thread.
	PersonaMentorDirect Persona = "mentor-direct"
	// PersonaMenteeDirect is the mentee answering their mentor in a direct thread.
	PersonaMenteeDirect Persona = "mentee-direct"
	// PersonaMenteePeer is a fellow mentee in a mentee group chat.
	PersonaMenteePeer Persona = "mentee-peer"
	// PersonaMentorPeer is a fellow mentor in a mentor group chat.
	PersonaMentorPeer Persona = "mentor-peer"
)

// Options holds the tuning knobs of the engine. The two history windows are
// intentionally distinct: RecentWindow feeds the broad anti-repetition filter,
// RepeatWindow bounds the narrow forced-differentiation check.
type Options struct {
	RecentWindow int // non-user replies considered recent, default 8
	RepeatWindow int // trailing replies that must never repeat verbatim, default 4
	BodySamples  int // persona bank draws per reply, default 14
}

// DefaultOptions returns the production tuning.
func DefaultOptions() Options {
	return Options{
		RecentWindow: 8,
		RepeatWindow: 4,
		BodySamples:  14,
	}
}

func (o Options) normalized() Options {
	if o.RecentWindow <= 0 {
		o.RecentWindow = 8
	}
	if o.RepeatWindow <= 0 {
		o.RepeatWindow = 4
	}
	if o.BodySamples <= 0 {
		o.BodySamples = 14
	}
	return o
}

// Engine builds replies. Safe for concurrent use; the random source is
// guarded because delayed replies fire from timer goroutines.
type Engine struct {
	mu   sync.Mutex
	rng  *rand.Rand
	opts Options
}

// New creates an engine with the given random source and options.
// A nil rng falls back to a time-seeded source.
func New(rng *rand.Rand, opts Options) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng, opts: opts.normalized()}
}

// NewDefault creates a time-seeded engine with default options.
func NewDefault() *Engine {
	return New(nil, DefaultOptions())
}

// Input carries everything the engine needs for one reply.
type Input struct {
	Message        string
	Persona        Persona
	ThreadID       string
	RecentMessages []models.Message // full thread history including the just-sent message
	MyName         string           // the human user's display name
	FallbackName   string           // direct-thread partner name, optional
}

// Reply is directly storable as a Message name/text pair.
type Reply struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// BuildSmartReply computes a synthetic reply for the thread. All inputs are
// treated permissively: an empty message, nil history or missing fallback
// name still produce a non-empty reply.
func (e *Engine) BuildSmartReply(in Input) Reply {
	recent := recentReplyTexts(in.RecentMessages, in.MyName, e.opts.RecentWindow)
	cls := Classify(in.Message, in.ThreadID, recent)

	bank := bankFor(in.Persona)
	openings := openingOptions(cls.Intent)

	bodies := make([]string, 0, e.opts.BodySamples)
	for i := 0; i < e.opts.BodySamples; i++ {
		bodies = append(bodies, bank.body(cls.TopicGroup, cls.Topics, e.pick))
	}
	bodies = uniqueStrings(bodies)

	anchors := anchorOptions(cls.Intent, cls.TopicGroup, cls.Topics, in.Persona)
	candidates := assemble(openings, bodies, anchors)

	selected := e.pickNonRepeating(candidates, recent)
	text := forceDifferent(selected, recent, e.opts.RepeatWindow)

	return Reply{
		Name: e.resolveName(in.Persona, in.ThreadID, in.FallbackName),
		Text: text,
	}
}

// pick chooses uniformly from items; empty input yields a safe filler.
func (e *Engine) pick(items []string) string {
	if len(items) == 0 {
		return fillerReply
	}
	e.mu.Lock()
	idx := e.rng.Intn(len(items))
	e.mu.Unlock()
	return items[idx]
}

// fillerReply is the last-resort text when an option set is empty.
const fillerReply = "Sounds good."

// recentReplyTexts reduces the trailing window of messages not authored by
// the user to their text strings, oldest first.
func recentReplyTexts(messages []models.Message, myName string, window int) []string {
	var texts []string
	for _, msg := range messages {
		if msg.Name == "" || msg.Name == myName {
			continue
		}
		texts = append(texts, msg.Text)
	}
	if len(texts) > window {
		texts = texts[len(texts)-window:]
	}
	return texts
}

// uniqueStrings drops empties and duplicates, preserving first-seen order.
func uniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
