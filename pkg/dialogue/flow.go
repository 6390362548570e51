package dialogue

import (
	"context"
	"errors"
	"time"

	"manualbot-be/pkg/store"
)

// ErrNoActiveFlow is returned by Handle when the user has no live flow (or
// the stored one passed its logical deadline). Callers treat the message as
// a search query instead.
var ErrNoActiveFlow = errors.New("no active dialogue flow")

// Reply is the controller's answer to one inbound message.
type Reply struct {
	Text           string
	SessionChanged bool
}

// outcome tells the controller what to do with the session after a step
// handler ran.
type outcome int

const (
	// outcomeStay keeps the current step (validation failed or re-prompt);
	// the expiry still gets its normal refresh.
	outcomeStay outcome = iota
	// outcomeAdvance persists the mutated session and refreshes expiry.
	outcomeAdvance
	// outcomeTerminal ends the flow; the session is cleared.
	outcomeTerminal
)

// stepHandler consumes one user message for its step. It may mutate the
// session (advance the step, accumulate fields) but never persists it; the
// controller owns all session-store writes.
type stepHandler func(ctx context.Context, c *Controller, session *store.Session, input string) (string, outcome, error)

// stepDefinition names one step of a flow and binds its handler. Flows are
// explicit ordered lists of these, so each step can be tested on its own.
type stepDefinition struct {
	name   string
	handle stepHandler
}

type flowDefinition struct {
	name        store.Flow
	ttl         func(c *Controller) time.Duration
	initialStep string
	// initialReply builds the first prompt when the flow starts.
	initialReply func(c *Controller, session *store.Session) string
	steps        []stepDefinition
}

func (f *flowDefinition) step(name string) *stepDefinition {
	for i := range f.steps {
		if f.steps[i].name == name {
			return &f.steps[i]
		}
	}
	return nil
}
