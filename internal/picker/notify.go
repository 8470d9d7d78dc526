package picker

import "time"

// Field identifies the part of a State that changed.
type Field int

const (
	FieldSelectedDate Field = iota + 1
	FieldDisplayedMonth
	FieldExpanded
	FieldBounds
	FieldEventDates
)

func (f Field) String() string {
	switch f {
	case FieldSelectedDate:
		return "selectedDate"
	case FieldDisplayedMonth:
		return "displayedMonth"
	case FieldExpanded:
		return "expanded"
	case FieldBounds:
		return "bounds"
	case FieldEventDates:
		return "eventDates"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of a State's published fields.
type Snapshot struct {
	DisplayedMonth time.Time
	SelectedDate   time.Time
	Expanded       bool
	MinBound       *time.Time
	MaxBound       *time.Time
	AtMinBound     bool
	AtMaxBound     bool
	EventDates     []time.Time
}

// Change is delivered to subscribers after a mutation.
type Change struct {
	Field    Field
	Snapshot Snapshot
}

type subscription struct {
	id int
	fn func(Change)
}

func (s *State) Snapshot() Snapshot {
	minBound, maxBound := s.Bounds()
	return Snapshot{
		DisplayedMonth: s.displayed,
		SelectedDate:   s.selected,
		Expanded:       s.expanded,
		MinBound:       minBound,
		MaxBound:       maxBound,
		AtMinBound:     s.atMin,
		AtMaxBound:     s.atMax,
		EventDates:     s.EventDates(),
	}
}

// Subscribe registers fn to be called, in registration order, after every
// change. The returned function removes the subscription; it is safe to call
// more than once and from within fn.
func (s *State) Subscribe(fn func(Change)) (cancel func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify(f Field) {
	if len(s.subs) == 0 {
		return
	}
	ch := Change{Field: f, Snapshot: s.Snapshot()}
	// Iterate over a copy so subscribers may cancel during delivery.
	for _, sub := range append([]subscription(nil), s.subs...) {
		sub.fn(ch)
	}
}
