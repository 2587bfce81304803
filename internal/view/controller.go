package view

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ziadkadry99/semview/internal/fetch"
	"github.com/ziadkadry99/semview/internal/mapping"
)

// Controller owns the view state and the load lifecycle. All mutation goes
// through Load and Select; readers take snapshots via State. The mutex is
// only there because HTTP handlers call in concurrently, the state machine
// itself is strictly sequential.
type Controller struct {
	source string
	title  string

	mu    sync.RWMutex
	state ViewState
}

// NewController creates a controller for the given document source (URL or
// file path). The initial state is Loading.
func NewController(source, title string) *Controller {
	return &Controller{
		source: source,
		title:  title,
		state:  ViewState{Phase: PhaseLoading},
	}
}

// Title returns the page title the controller renders under.
func (c *Controller) Title() string { return c.title }

// Source returns the configured document source.
func (c *Controller) Source() string { return c.source }

// Load runs one fetch, decode, derive cycle. Any failure, transport,
// parse, or a fault while deriving the view model, moves the state to
// Failed with the cause's description and discards all of the attempt's
// output; there is no retry. A successful load replaces the document
// wholesale and resets the selection to the first variable in display
// order.
func (c *Controller) Load(ctx context.Context) error {
	loadID := uuid.NewString()
	c.setState(ViewState{Phase: PhaseLoading})

	data, err := fetch.Load(ctx, c.source)
	if err != nil {
		return c.fail(loadID, err)
	}

	ds, err := mapping.Decode(data)
	if err != nil {
		return c.fail(loadID, err)
	}

	st, err := derive(ds)
	if err != nil {
		return c.fail(loadID, err)
	}

	c.setState(st)
	log.Printf("load %s: %d variables in %d groups from %s", loadID, st.Groups.Len(), len(st.Groups), c.source)
	return nil
}

// derive builds the success state. An unexpected panic while deriving the
// view model surfaces as an error so the caller reports a Failed state
// instead of crashing the process.
func derive(ds *mapping.Dataset) (st ViewState, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("deriving view model: %v", r)
		}
	}()
	return succeeded(ds), nil
}

func (c *Controller) fail(loadID string, err error) error {
	log.Printf("load %s failed: %v", loadID, err)
	c.setState(failed(err))
	return err
}

// Select marks the named variable as the active selection. Reports whether
// the name exists in the loaded document.
func (c *Controller) Select(name string) bool {
	if name == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next := Select(c.state, name)
	if next.Selected != name {
		return false
	}
	c.state = next
	return true
}

// State returns a snapshot of the current view state.
func (c *Controller) State() ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) setState(st ViewState) {
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()
}
