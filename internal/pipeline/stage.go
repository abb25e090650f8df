package pipeline

import (
	"errors"
	"fmt"

	"github.com/randytsao24/citydistance/internal/location"
	"github.com/randytsao24/citydistance/internal/option"
)

var (
	// ErrAwaitingInput is returned when advancing a pipeline that has no input yet
	ErrAwaitingInput = errors.New("pipeline is awaiting input")
	// ErrTerminalStage is returned when advancing past Show
	ErrTerminalStage = errors.New("pipeline already at terminal stage")
	// ErrUnknownStage is returned for a nil or foreign Stage value
	ErrUnknownStage = errors.New("unknown pipeline stage")
)

// Stage is one step of a request's progress. The set of stages is closed:
// AwaitingInput, InputReceived, Located, Calculated and Show.
type Stage interface {
	stageName() string
}

// AwaitingInput is the nominal initial stage. It has no outgoing transition.
type AwaitingInput struct{}

// InputReceived holds the two requested cities
type InputReceived struct {
	A, B location.City
}

// Located holds both places found in the directory
type Located struct {
	A, B location.Place
}

// Calculated adds the distance in meters, if both places are mapped
type Calculated struct {
	A, B     location.Place
	Distance option.Option[location.Meters]
}

// Show is terminal and carries the distance in feet
type Show struct {
	A, B     location.Place
	Distance option.Option[location.Feet]
}

func (AwaitingInput) stageName() string { return "awaiting_input" }
func (InputReceived) stageName() string { return "input_received" }
func (Located) stageName() string       { return "located" }
func (Calculated) stageName() string    { return "calculated" }
func (Show) stageName() string          { return "show" }

// StageName returns a stable identifier for s, for logging
func StageName(s Stage) string {
	if s == nil {
		return "<nil>"
	}
	return s.stageName()
}

// Result converts the terminal stage into a Result
func (s Show) Result() Result {
	return Result{Start: s.A, Dest: s.B, Distance: s.Distance}
}

// Machine advances stages against a fixed directory
type Machine struct {
	Directory *location.Directory
}

// NewMachine returns a Machine that looks cities up in dir
func NewMachine(dir *location.Directory) *Machine {
	return &Machine{Directory: dir}
}

// Advance performs exactly one forward transition
func (m *Machine) Advance(s Stage) (Stage, error) {
	switch s := s.(type) {
	case InputReceived:
		a, b, err := m.Directory.LookupPair(s.A, s.B)
		if err != nil {
			return nil, err
		}
		return Located{A: a, B: b}, nil

	case Located:
		return Calculated{A: s.A, B: s.B, Distance: location.TryDistance(s.A, s.B)}, nil

	case Calculated:
		return Show{A: s.A, B: s.B, Distance: option.Map(s.Distance, location.MetersToFeet)}, nil

	case Show:
		return nil, ErrTerminalStage

	case AwaitingInput:
		return nil, ErrAwaitingInput
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownStage, s)
}

// Run enters the pipeline at InputReceived and advances until Show
func (m *Machine) Run(a, b location.City) (Result, error) {
	var stage Stage = InputReceived{A: a, B: b}
	for {
		if show, ok := stage.(Show); ok {
			return show.Result(), nil
		}

		next, err := m.Advance(stage)
		if err != nil {
			return Result{}, fmt.Errorf("advancing from %s: %w", StageName(stage), err)
		}
		stage = next
	}
}
