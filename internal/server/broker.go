package server

import (
	"encoding/json"
	"sync"
)

// gmTopic is the broker topic the GM dashboard subscribes to.
// Leaderboard-affecting events are mirrored there.
const gmTopic = "!gm"

// SSEEvent is the payload published to event-stream subscribers.
type SSEEvent struct {
	Type    string `json:"type"`
	Team    string `json:"team,omitempty"`
	PostID  int    `json:"postId,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Amount  int    `json:"amount,omitempty"`
	Phase   string `json:"phase,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by topic: a
// team code, or gmTopic for the GM stream.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded SSE events for
// the given topic.
func (b *Broker) Subscribe(topic string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[chan []byte]struct{})
	}
	b.subs[topic][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the topic's subscribers.
func (b *Broker) Unsubscribe(topic string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[topic], ch)
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given topic.
func (b *Broker) Publish(topic string, event SSEEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[topic] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
