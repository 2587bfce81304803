package view

import "github.com/ziadkadry99/semview/internal/mapping"

// Phase is the load lifecycle state of the viewer. A load moves from
// Loading to exactly one of Succeeded or Failed; a failure is terminal for
// that load.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// ViewState is the single piece of view state: the lifecycle phase, the
// loaded document with its derived group table, the zero-or-one selected
// variable, and the failure message when the load did not succeed.
type ViewState struct {
	Phase    Phase
	Dataset  *mapping.Dataset
	Groups   mapping.GroupTable
	Selected string
	Err      string
}

// Select returns the state with the given variable selected. Selection is
// exclusive by construction: the state holds a single name. Unknown names
// and non-succeeded phases leave the state unchanged.
func Select(s ViewState, name string) ViewState {
	if s.Phase != PhaseSucceeded || s.Dataset == nil {
		return s
	}
	if _, ok := s.Dataset.Variables[name]; !ok {
		return s
	}
	s.Selected = name
	return s
}

// succeeded builds the post-load state: groups derived from the document
// and the selection reset to the first variable in display order. A fresh
// load always resets the selection, even when the document is unchanged.
func succeeded(ds *mapping.Dataset) ViewState {
	groups := mapping.GroupByAestheticLabel(ds.Variables)
	return ViewState{
		Phase:    PhaseSucceeded,
		Dataset:  ds,
		Groups:   groups,
		Selected: groups.FirstVariable(),
	}
}

// failed builds the terminal failure state. The message keeps the cause's
// description so the error indicator can show it.
func failed(err error) ViewState {
	return ViewState{Phase: PhaseFailed, Err: err.Error()}
}
