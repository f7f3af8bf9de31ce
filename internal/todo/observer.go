package todo

import (
	"slices"

	"todo-cli/internal/model"
)

type EventKind int

const (
	EventOnboardingDismissed EventKind = iota + 1
	EventTaskAppended
	EventPendingChanged
)

func (k EventKind) String() string {
	switch k {
	case EventOnboardingDismissed:
		return "onboarding.dismissed"
	case EventTaskAppended:
		return "task.appended"
	case EventPendingChanged:
		return "pending.changed"
	default:
		return "unknown"
	}
}

// Event describes a state change. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// EventTaskAppended
	Task  model.Task
	Index int

	// EventPendingChanged
	Pending string
}

type Observer interface {
	Changed(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Changed(ev Event) { f(ev) }

// observers is a subscription list. Notification is synchronous and in
// subscription order.
type observers struct {
	next int
	subs []subscription
}

type subscription struct {
	id  int
	obs Observer
}

func (o *observers) subscribe(obs Observer) func() {
	if obs == nil {
		return func() {}
	}
	o.next++
	id := o.next
	o.subs = append(o.subs, subscription{id: id, obs: obs})
	return func() {
		o.subs = slices.DeleteFunc(o.subs, func(s subscription) bool { return s.id == id })
	}
}

func (o *observers) notify(ev Event) {
	// Copy so observers may unsubscribe while being notified.
	subs := append([]subscription(nil), o.subs...)
	for _, s := range subs {
		s.obs.Changed(ev)
	}
}
