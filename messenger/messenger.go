// Package messenger provides loosely-coupled, type-keyed messaging between
// view models: publishers send a message value, subscribers register a
// handler for the message's type, and neither side references the other.
package messenger

import (
	"reflect"

	"github.com/google/uuid"
)

// Token identifies a subscription for later removal. The zero Token
// matches nothing.
type Token struct {
	id  uuid.UUID
	key reflect.Type
}

type subscription struct {
	id      uuid.UUID
	deliver func(any)
}

// Messenger routes messages to handlers keyed by the message's static type.
// The zero Messenger is ready to use.
//
// Delivery is synchronous and in subscription order, on the caller's
// goroutine. Like the rest of the library, a Messenger is UI-thread only;
// marshal background results onto the UI thread before sending.
type Messenger struct {
	subs map[reflect.Type][]subscription
}

// New creates an empty Messenger.
func New() *Messenger {
	return &Messenger{subs: make(map[reflect.Type][]subscription)}
}

// Subscribe registers handler for messages of type M and returns the token
// that removes it again.
func Subscribe[M any](m *Messenger, handler func(M)) Token {
	if m == nil || handler == nil {
		return Token{}
	}
	if m.subs == nil {
		m.subs = make(map[reflect.Type][]subscription)
	}
	key := reflect.TypeOf((*M)(nil)).Elem()
	sub := subscription{
		id:      uuid.New(),
		deliver: func(v any) { handler(v.(M)) },
	}
	m.subs[key] = append(m.subs[key], sub)
	return Token{id: sub.id, key: key}
}

// Unsubscribe removes the subscription identified by t. Unknown or zero
// tokens are ignored.
func (m *Messenger) Unsubscribe(t Token) {
	if m == nil || t.key == nil {
		return
	}
	subs := m.subs[t.key]
	for i, sub := range subs {
		if sub.id == t.id {
			m.subs[t.key] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Send delivers msg to every handler subscribed for type M, in subscription
// order. Handlers may subscribe or unsubscribe during delivery; such
// changes take effect for the next Send.
func Send[M any](m *Messenger, msg M) {
	if m == nil {
		return
	}
	key := reflect.TypeOf((*M)(nil)).Elem()
	subs := m.subs[key]
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		sub.deliver(msg)
	}
}
