package broadcast

import (
	"context"
	"sync"
)

// TeamCommentsGroup returns the group name carrying live comment
// broadcasts for one team.
func TeamCommentsGroup(slug string) string {
	return "team_comments_" + slug
}

// Subscriber receives payloads published to groups it has joined.
// Deliver must not block; it returns false when the subscriber can no
// longer accept payloads, in which case the layer drops it from the
// group.
type Subscriber interface {
	Deliver(payload []byte) bool
}

// Layer is a named-group publish/subscribe bus. Implementations must
// be safe for concurrent use from request and connection goroutines,
// and must never surface broker failures to callers: a broken layer
// degrades to no-ops, it does not block or fail the write path that
// publishes through it.
type Layer interface {
	// GroupAdd adds sub to a group's membership. Adding the same
	// subscriber twice does not duplicate delivery.
	GroupAdd(group string, sub Subscriber)
	// GroupDiscard removes sub from a group; no-op if absent.
	GroupDiscard(group string, sub Subscriber)
	// GroupSend delivers payload to every subscriber in the group at
	// the moment of the call. No replay: later joiners never see it.
	GroupSend(ctx context.Context, group string, payload []byte)
	// Close releases broker resources.
	Close() error
}

// MemoryLayer is the in-process Layer used when no broker is
// configured. Delivery reaches subscribers in this process only.
type MemoryLayer struct {
	mu     sync.Mutex
	groups map[string]map[Subscriber]struct{}
}

func NewMemoryLayer() *MemoryLayer {
	return &MemoryLayer{
		groups: make(map[string]map[Subscriber]struct{}),
	}
}

func (l *MemoryLayer) GroupAdd(group string, sub Subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()

	members, ok := l.groups[group]
	if !ok {
		members = make(map[Subscriber]struct{})
		l.groups[group] = members
	}
	members[sub] = struct{}{}
}

func (l *MemoryLayer) GroupDiscard(group string, sub Subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()

	members, ok := l.groups[group]
	if !ok {
		return
	}
	delete(members, sub)
	if len(members) == 0 {
		delete(l.groups, group)
	}
}

func (l *MemoryLayer) GroupSend(_ context.Context, group string, payload []byte) {
	// Snapshot under the lock, deliver outside it. Deliver is
	// non-blocking by contract, but membership must not be held
	// across subscriber callbacks.
	l.mu.Lock()
	members := make([]Subscriber, 0, len(l.groups[group]))
	for sub := range l.groups[group] {
		members = append(members, sub)
	}
	l.mu.Unlock()

	for _, sub := range members {
		if !sub.Deliver(payload) {
			l.GroupDiscard(group, sub)
		}
	}
}

func (l *MemoryLayer) Close() error {
	return nil
}

// GroupSize reports the current membership count of a group.
func (l *MemoryLayer) GroupSize(group string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.groups[group])
}
