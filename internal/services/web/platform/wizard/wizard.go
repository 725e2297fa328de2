// Package wizard drives linear, numbered form steps with per-step validation
// gating and a single final submission.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
)

// ErrNotFinalStep reports a submission attempted before the last step.
var ErrNotFinalStep = errors.New("wizard: submit is only allowed from the final step")

// Step is one named wizard step. A nil Validate means the step has no form.
type Step[D any] struct {
	Name     string
	Validate func(D) formvalidate.FieldErrors
}

// State is the wizard position and the draft captured so far. Current is
// 1-based.
type State[D any] struct {
	Current   int    `json:"current"`
	Draft     D      `json:"draft"`
	Validated []bool `json:"validated"`
}

// IncompleteError reports the first step that fails re-validation at submit.
type IncompleteError struct {
	Step   int
	Name   string
	Fields formvalidate.FieldErrors
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("wizard: step %d (%s) is incomplete", e.Step, e.Name)
}

// Controller sequences a fixed, ordered list of steps.
type Controller[D any] struct {
	steps []Step[D]
}

// New builds a controller. It panics on an empty step list since that is a
// programming error.
func New[D any](steps ...Step[D]) Controller[D] {
	if len(steps) == 0 {
		panic("wizard: at least one step is required")
	}
	return Controller[D]{steps: append([]Step[D](nil), steps...)}
}

// Steps returns the step count.
func (c Controller[D]) Steps() int { return len(c.steps) }

// StepName returns the name of the 1-based step n.
func (c Controller[D]) StepName(n int) string {
	if n < 1 || n > len(c.steps) {
		return ""
	}
	return c.steps[n-1].Name
}

// Start returns a fresh state at step 1 holding draft.
func (c Controller[D]) Start(draft D) State[D] {
	return State[D]{Current: 1, Draft: draft, Validated: make([]bool, len(c.steps))}
}

// Normalize clamps a restored state onto this controller's step range.
func (c Controller[D]) Normalize(state State[D]) State[D] {
	if state.Current < 1 {
		state.Current = 1
	}
	if state.Current > len(c.steps) {
		state.Current = len(c.steps)
	}
	validated := make([]bool, len(c.steps))
	copy(validated, state.Validated)
	state.Validated = validated
	return state
}

// IsFinal reports whether state is on the last step.
func (c Controller[D]) IsFinal(state State[D]) bool {
	return c.Normalize(state).Current == len(c.steps)
}

// Next validates the current step. On failure it returns the state unchanged
// together with the field errors. On success it marks the step validated and
// advances, staying put on the last step.
func (c Controller[D]) Next(state State[D]) (State[D], formvalidate.FieldErrors) {
	state = c.Normalize(state)
	if errs := c.validateStep(state.Current, state.Draft); len(errs) > 0 {
		return state, errs
	}
	state.Validated[state.Current-1] = true
	if state.Current < len(c.steps) {
		state.Current++
	}
	return state, nil
}

// Back moves one step backward, staying put on the first step. It never
// validates and never touches the draft.
func (c Controller[D]) Back(state State[D]) State[D] {
	state = c.Normalize(state)
	if state.Current > 1 {
		state.Current--
	}
	return state
}

// Submit re-validates every step and calls send exactly once with the draft.
// On success it returns a fresh state; on any failure it returns the input
// state untouched so the caller can retry without re-entering data.
func Submit[D, R any](ctx context.Context, c Controller[D], state State[D], send func(context.Context, D) (R, error)) (R, State[D], error) {
	var zero R
	state = c.Normalize(state)
	if state.Current != len(c.steps) {
		return zero, state, ErrNotFinalStep
	}
	for idx := range c.steps {
		if errs := c.validateStep(idx+1, state.Draft); len(errs) > 0 {
			return zero, state, &IncompleteError{Step: idx + 1, Name: c.steps[idx].Name, Fields: errs}
		}
	}
	result, err := send(ctx, state.Draft)
	if err != nil {
		return zero, state, err
	}
	var empty D
	return result, c.Start(empty), nil
}

func (c Controller[D]) validateStep(n int, draft D) formvalidate.FieldErrors {
	step := c.steps[n-1]
	if step.Validate == nil {
		return nil
	}
	return step.Validate(draft)
}
