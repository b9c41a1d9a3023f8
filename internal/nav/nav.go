// Package nav holds the dashboard's active section. It is never
// persisted: every new State starts on the overview.
package nav

import (
	"errors"
	"fmt"
)

// Section is a panel group of the dashboard.
type Section string

const (
	Overview Section = "overview"
	Ops      Section = "ops"
	Usage    Section = "usage"
)

// ErrUnknownSection is returned by ParseSection.
var ErrUnknownSection = errors.New("unknown section")

var sections = []Section{Overview, Ops, Usage}

// Sections returns all sections in sidebar order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ParseSection maps a wire name to a Section.
func ParseSection(s string) (Section, error) {
	for _, sec := range sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Label is the sidebar control text.
func (s Section) Label() string {
	switch s {
	case Ops:
		return "Ops"
	case Usage:
		return "Usage"
	default:
		return "Overview"
	}
}

// Title is the page heading shown while the section is active.
func (s Section) Title() string {
	switch s {
	case Ops:
		return "Operations"
	case Usage:
		return "Usage & Cost"
	default:
		return "Overview"
	}
}

func (s Section) String() string { return string(s) }

// State is the in-memory active section.
type State struct {
	active Section
}

// New returns a State on the overview.
func New() *State { return &State{active: Overview} }

// Select makes s active.
func (st *State) Select(s Section) { st.active = s }

// Active returns the active section.
func (st *State) Active() Section { return st.active }
