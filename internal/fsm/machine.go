// Package fsm is a small flat state machine: states with entry and exit
// actions, and event transitions with optional guards and actions.
// Transitions run synchronously inside Send.
package fsm

import (
	"errors"
	"fmt"
)

type StateID int
type EventID int

type Event struct {
	ID      EventID
	Payload any
}

type Action func(evt *Event, from StateID, to StateID) error
type Guard func(evt *Event, from StateID, to StateID) bool

// ---

type State struct {
	ID          StateID
	Name        string
	Transitions []*Transition
	EntryAction Action
	ExitAction  Action
	Initial     bool
}

type Transition struct {
	Event  EventID
	Source *State
	Target *State // nil --> internal transition
	Guard  Guard  // nil --> always taken
	Action Action // nil --> do nothing
}

// Machine is a set of flat states, one of which is current.
type Machine struct {
	states  []*State
	byID    map[StateID]*State
	events  map[EventID]string
	initial *State
	current *State
	started bool
}

var (
	ErrNoStates   = errors.New("no states provided")
	ErrNotStarted = errors.New("machine not started")
)

//
// Public API
//

func (s *State) OnEntry(action Action) {
	s.EntryAction = action
}

func (s *State) OnExit(action Action) {
	s.ExitAction = action
}

// On appends a transition; a nil target makes it internal.
func (s *State) On(e EventID, target *State, guard Guard, action Action) {
	s.Transitions = append(s.Transitions, &Transition{
		Event:  e,
		Source: s,
		Target: target,
		Guard:  guard,
		Action: action,
	})
}

func NewMachine(states ...*State) (*Machine, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	m := &Machine{
		states: states,
		byID:   map[StateID]*State{},
		events: map[EventID]string{},
	}

	// Build LUT and find initial state.
	for _, s := range states {
		if s == nil {
			return nil, errors.New("nil state")
		}
		if _, exists := m.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate state ID %d", s.ID)
		}
		m.byID[s.ID] = s
		if s.Initial {
			if m.initial != nil {
				return nil, errors.New("more than one initial state")
			}
			m.initial = s
		}
	}
	if m.initial == nil {
		m.initial = states[0] // First state is assigned as initial.
	}

	for _, s := range states {
		for _, t := range s.Transitions {
			if t == nil {
				continue
			}
			if t.Source == nil {
				t.Source = s
			}
			if t.Target != nil && m.byID[t.Target.ID] != t.Target {
				return nil, fmt.Errorf("state %s: transition to unregistered state %s", s, t.Target)
			}
		}
	}
	m.current = m.initial
	return m, nil
}

// Start enters the initial state. Calling it again resets the machine.
func (m *Machine) Start() error {
	m.current = m.initial
	m.started = true
	return m.current.enterState(nil, m.current.ID, m.current.ID)
}

// Send delivers evt to the current state. It reports whether a transition
// was taken; an event with no enabled transition is ignored.
func (m *Machine) Send(evt Event) (bool, error) {
	if !m.started {
		return false, ErrNotStarted
	}
	t := m.pickTransition(m.current, &evt)
	if t == nil {
		return false, nil
	}
	next, err := t.doTransition(&evt)
	m.current = next
	return err == nil, err
}

// Current returns the current state's ID.
func (m *Machine) Current() StateID {
	return m.current.ID
}

// In reports whether id is the current state.
func (m *Machine) In(id StateID) bool {
	return m.current.ID == id
}

// States returns the states in registration order.
func (m *Machine) States() []*State {
	return m.states
}

// Initial returns the initial state.
func (m *Machine) Initial() *State {
	return m.initial
}

// NameEvent records a display name for an event.
func (m *Machine) NameEvent(id EventID, name string) {
	m.events[id] = name
}

// EventName returns the display name of id.
func (m *Machine) EventName(id EventID) string {
	if n, ok := m.events[id]; ok {
		return n
	}
	return fmt.Sprintf("event%d", int(id))
}

// StateName returns the display name of id.
func (m *Machine) StateName(id StateID) string {
	if s, ok := m.byID[id]; ok {
		return s.String()
	}
	return fmt.Sprintf("state%d", int(id))
}

func (s *State) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("state%d", int(s.ID))
}

//
// Helper Functions (internal API)
//

func (s *State) enterState(evt *Event, from StateID, to StateID) error {
	if s.EntryAction != nil {
		return s.EntryAction(evt, from, to)
	}
	return nil
}

func (s *State) exitState(evt *Event, from StateID, to StateID) error {
	if s.ExitAction != nil {
		return s.ExitAction(evt, from, to)
	}
	return nil
}

// pickTransition grabs the first enabled transition in document order.
func (m *Machine) pickTransition(s *State, evt *Event) *Transition {
	for _, t := range s.Transitions {
		if t == nil || t.Event != evt.ID {
			continue
		}
		if t.Guard != nil && !t.Guard(evt, t.Source.ID, t.targetID()) {
			continue
		}
		return t
	}
	return nil
}

func (t *Transition) targetID() StateID {
	if t.Target == nil {
		return t.Source.ID
	}
	return t.Target.ID
}

// Internal reports whether t leaves the current state unchanged.
func (t *Transition) Internal() bool {
	return t.Target == nil
}

// doTransition runs t and returns the resulting state. On error the
// machine stays in (or is re-entered into) the source state.
func (t *Transition) doTransition(evt *Event) (*State, error) {
	from, to := t.Source.ID, t.targetID()
	if t.Target == nil {
		if t.Action != nil {
			if err := t.Action(evt, from, to); err != nil {
				return t.Source, err
			}
		}
		return t.Source, nil
	}

	if err := t.Source.exitState(evt, from, to); err != nil {
		return t.Source, err
	}

	if t.Action != nil {
		if err := t.Action(evt, from, to); err != nil {
			// Rewind to the source state.
			if rerr := t.Source.enterState(nil, from, from); rerr != nil {
				return t.Source, rerr
			}
			return t.Source, err
		}
	}

	if err := t.Target.enterState(evt, from, to); err != nil {
		return t.Source, err
	}
	return t.Target, nil
}
