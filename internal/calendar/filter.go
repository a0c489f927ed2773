package calendar

import (
	"slices"
	"strings"
	"time"
)

// Filter holds the user-selected predicates applied to an aggregated
// timeline. A zero-valued clause imposes no constraint; all present clauses
// must hold at once.
type Filter struct {
	// Query is matched case-insensitively against item titles.
	Query      string
	Kinds      []SourceKind
	Statuses   []string
	ProgramIDs []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
	// Visibility toggles per source kind. A hidden kind is excluded before
	// any other clause is considered.
	HidePrograms  bool
	HideEvents    bool
	HideDeadlines bool
}

// Apply returns the order-preserving subsequence of items matching every
// clause. The input slice is never modified.
func (f Filter) Apply(items []TimelineItem) []TimelineItem {
	matched := []TimelineItem{}
	for _, it := range items {
		if f.match(it) {
			matched = append(matched, it)
		}
	}
	return matched
}

func (f Filter) match(it TimelineItem) bool {
	if f.hidden(it.SourceKind) {
		return false
	}

	if f.Query != "" && !strings.Contains(strings.ToLower(it.Title), strings.ToLower(f.Query)) {
		return false
	}

	if len(f.Kinds) > 0 && !slices.Contains(f.Kinds, it.SourceKind) {
		return false
	}

	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, it.Status) {
		return false
	}

	if len(f.ProgramIDs) > 0 {
		owner := ownerProgramID(it)
		if owner == nil || !slices.Contains(f.ProgramIDs, *owner) {
			return false
		}
	}

	if f.RangeStart != nil && it.Start.Before(*f.RangeStart) {
		return false
	}
	// The range end only constrains items that actually have an end.
	if f.RangeEnd != nil && it.End != nil && it.End.After(*f.RangeEnd) {
		return false
	}

	return true
}

func (f Filter) hidden(k SourceKind) bool {
	switch k {
	case SourceProgram:
		return f.HidePrograms
	case SourceEvent:
		return f.HideEvents
	case SourceDeadline:
		return f.HideDeadlines
	}
	return false
}

// ownerProgramID is the program an item belongs to: a program item owns
// itself, an event may reference one, a deadline has none.
func ownerProgramID(it TimelineItem) *int64 {
	if it.SourceKind == SourceProgram {
		return &it.ID
	}
	return it.ProgramID
}
