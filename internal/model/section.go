package model

// SectionState is the lifecycle state of a declaration topic.
type SectionState int

const (
	SectionNotStarted SectionState = iota
	SectionInProgress
	SectionComplete
)

func (s SectionState) String() string {
	switch s {
	case SectionInProgress:
		return "in-progress"
	case SectionComplete:
		return "complete"
	default:
		return "not-started"
	}
}

// Section wraps one declaration topic. Every topic in the tax return shares
// the same three-state lifecycle: untouched, opened but unfinished, finished.
type Section[T any] struct {
	Start    *bool `json:"start,omitempty"`
	Finished *bool `json:"finished,omitempty"`
	Data     T     `json:"data,omitempty"`
}

// State resolves the start/finished flags into a single lifecycle state.
func (s Section[T]) State() SectionState {
	if s.Finished != nil && *s.Finished {
		return SectionComplete
	}
	if s.Start != nil && *s.Start {
		return SectionInProgress
	}
	return SectionNotStarted
}

// Started reports whether the taxpayer has opened the topic at all.
func (s Section[T]) Started() bool {
	return s.State() != SectionNotStarted
}
