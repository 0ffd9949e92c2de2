package fsm

import (
	"fmt"
)

// Builder provides a fluent API for constructing machines using state and
// event names instead of manually numbered State values.
type Builder struct {
	nextState StateID
	nextEvent EventID
	states    []*State
	byName    map[string]*State
	events    map[string]EventID
	initial   string
	errs      []error
}

// StateBuilder configures a single state.
type StateBuilder struct {
	b     *Builder
	state *State
}

// NewBuilder returns a Builder whose machine starts in initialStateName.
func NewBuilder(initialStateName string) *Builder {
	return &Builder{
		nextState: 1,
		nextEvent: 1,
		byName:    map[string]*State{},
		events:    map[string]EventID{},
		initial:   initialStateName,
	}
}

// State creates or retrieves a state by name.
func (b *Builder) State(name string) *StateBuilder {
	return &StateBuilder{b: b, state: b.state(name)}
}

func (b *Builder) state(name string) *State {
	if s, ok := b.byName[name]; ok {
		return s
	}
	s := &State{ID: b.nextState, Name: name}
	b.nextState++
	b.byName[name] = s
	b.states = append(b.states, s)
	return s
}

// Event returns the EventID for name, assigning one if needed.
func (b *Builder) Event(name string) EventID {
	if id, ok := b.events[name]; ok {
		return id
	}
	id := b.nextEvent
	b.nextEvent++
	b.events[name] = id
	return id
}

// StateID returns the ID of a named state, or 0 if it has not been declared.
func (b *Builder) StateID(name string) StateID {
	if s, ok := b.byName[name]; ok {
		return s.ID
	}
	return 0
}

// Build validates the configuration and constructs the Machine.
func (b *Builder) Build() (*Machine, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	init, ok := b.byName[b.initial]
	if !ok {
		return nil, fmt.Errorf("initial state %q was never declared", b.initial)
	}
	for _, s := range b.states {
		s.Initial = s == init
	}
	m, err := NewMachine(b.states...)
	if err != nil {
		return nil, err
	}
	for name, id := range b.events {
		m.NameEvent(id, name)
	}
	return m, nil
}

// Entry sets the entry action for this state.
func (sb *StateBuilder) Entry(action Action) *StateBuilder {
	sb.state.EntryAction = action
	return sb
}

// Exit sets the exit action for this state.
func (sb *StateBuilder) Exit(action Action) *StateBuilder {
	sb.state.ExitAction = action
	return sb
}

// On adds a transition to targetName when eventName occurs. guard and
// action may be nil.
func (sb *StateBuilder) On(eventName, targetName string, guard Guard, action Action) *StateBuilder {
	if targetName == "" {
		sb.b.errs = append(sb.b.errs, fmt.Errorf("state %s: event %q has an empty target, use OnInternal", sb.state, eventName))
		return sb
	}
	sb.state.On(sb.b.Event(eventName), sb.b.state(targetName), guard, action)
	return sb
}

// OnInternal adds a transition that runs action without leaving the state;
// no exit or entry actions are triggered.
func (sb *StateBuilder) OnInternal(eventName string, guard Guard, action Action) *StateBuilder {
	sb.state.On(sb.b.Event(eventName), nil, guard, action)
	return sb
}
