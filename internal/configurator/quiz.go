package configurator

import (
	"errors"
	"fmt"
	"math"
)

// TotalSteps is the number of quiz questions
const TotalSteps = 7

var (
	// ErrUnknownAction is returned by Apply for an unsupported action type
	ErrUnknownAction = errors.New("unknown quiz action")
	// ErrInvalidAnswer is returned for an unknown field or out-of-vocabulary value
	ErrInvalidAnswer = errors.New("invalid quiz answer")
)

// Quiz action types
const (
	ActionNext     = "next"
	ActionPrev     = "prev"
	ActionSet      = "set"
	ActionToggle   = "toggle"
	ActionComplete = "complete"
	ActionRestart  = "restart"
)

// QuizState is the linear quiz position plus the answers collected so far.
// Every method returns a new state; the receiver is never modified.
type QuizState struct {
	CurrentStep int     `json:"currentStep"`
	TotalSteps  int     `json:"totalSteps"`
	Answers     Answers `json:"answers"`
	Result      *Result `json:"result,omitempty"`
}

// Action is a single reducer input
type Action struct {
	Type  string `json:"type" binding:"required"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// NewQuiz returns the initial state
func NewQuiz() QuizState {
	return QuizState{
		TotalSteps: TotalSteps,
		Answers:    Answers{Features: []Feature{}},
	}
}

// Normalize clamps a state received from a client into the valid range
func (s QuizState) Normalize() QuizState {
	s = s.clone()
	s.TotalSteps = TotalSteps
	if s.CurrentStep < 0 {
		s.CurrentStep = 0
	}
	if s.CurrentStep > TotalSteps {
		s.CurrentStep = TotalSteps
	}
	if s.CurrentStep < TotalSteps {
		s.Result = nil
	}
	return s
}

// CanGoNext reports whether the current question has been answered.
// The features step is optional.
func (s QuizState) CanGoNext() bool {
	a := s.Answers
	switch s.CurrentStep {
	case 0:
		return a.SpaceType != ""
	case 1:
		return a.SpaceSize != ""
	case 2:
		return a.GuestsCount != ""
	case 3:
		return true
	case 4:
		return a.CanopyType != ""
	case 5:
		return a.Style != ""
	case 6:
		return a.Budget != ""
	default:
		return false
	}
}

// CanGoBack reports whether there is a previous step
func (s QuizState) CanGoBack() bool {
	return s.CurrentStep > 0
}

// IsCompleted reports whether the quiz reached the result screen
func (s QuizState) IsCompleted() bool {
	return s.CurrentStep == s.TotalSteps
}

// Progress is the completion percentage
func (s QuizState) Progress() int {
	if s.TotalSteps == 0 {
		return 0
	}
	return int(math.Round(float64(s.CurrentStep) / float64(s.TotalSteps) * 100))
}

// Next advances one question when the current one is answered.
// The last question is left through Complete.
func (s QuizState) Next() QuizState {
	s = s.clone()
	if s.CurrentStep < s.TotalSteps-1 && s.CanGoNext() {
		s.CurrentStep++
	}
	return s
}

// Prev goes back one step and drops any computed result
func (s QuizState) Prev() QuizState {
	s = s.clone()
	if s.CanGoBack() {
		s.CurrentStep--
		s.Result = nil
	}
	return s
}

// SetAnswer stores a single-choice answer. An empty value clears it.
func (s QuizState) SetAnswer(field, value string) (QuizState, error) {
	s = s.clone()
	a := &s.Answers
	switch field {
	case "spaceType":
		v := SpaceType(value)
		if value != "" && !v.Valid() {
			return s, invalid(field, value)
		}
		a.SpaceType = v
	case "spaceSize":
		v := SpaceSize(value)
		if value != "" && !v.Valid() {
			return s, invalid(field, value)
		}
		a.SpaceSize = v
	case "guestsCount":
		v := GuestsCount(value)
		if value != "" && !v.Valid() {
			return s, invalid(field, value)
		}
		a.GuestsCount = v
	case "canopyType":
		v := CanopyType(value)
		if value != "" && !v.Valid() {
			return s, invalid(field, value)
		}
		a.CanopyType = v
	case "style":
		v := Style(value)
		if value != "" && !v.Valid() {
			return s, invalid(field, value)
		}
		a.Style = v
	case "budget":
		v := Budget(value)
		if value != "" && !v.Valid() {
			return s, invalid(field, value)
		}
		a.Budget = v
	default:
		return s, fmt.Errorf("%w: unknown field %q", ErrInvalidAnswer, field)
	}
	return s, nil
}

// ToggleFeature adds the feature if absent and removes it otherwise
func (s QuizState) ToggleFeature(f Feature) (QuizState, error) {
	if !f.Valid() {
		return s.clone(), invalid("features", string(f))
	}
	s = s.clone()
	if s.Answers.HasFeature(f) {
		kept := make([]Feature, 0, len(s.Answers.Features))
		for _, x := range s.Answers.Features {
			if x != f {
				kept = append(kept, x)
			}
		}
		s.Answers.Features = kept
	} else {
		s.Answers.Features = append(s.Answers.Features, f)
	}
	return s, nil
}

// Complete computes the result and moves to the result screen
func (s QuizState) Complete() QuizState {
	s = s.clone()
	r := Calculate(s.Answers)
	s.Result = &r
	s.CurrentStep = s.TotalSteps
	return s
}

// Restart discards all answers
func (s QuizState) Restart() QuizState {
	return NewQuiz()
}

// Apply dispatches an action to the matching reducer
func Apply(s QuizState, act Action) (QuizState, error) {
	s = s.Normalize()
	switch act.Type {
	case ActionNext:
		return s.Next(), nil
	case ActionPrev:
		return s.Prev(), nil
	case ActionSet:
		return s.SetAnswer(act.Field, act.Value)
	case ActionToggle:
		return s.ToggleFeature(Feature(act.Value))
	case ActionComplete:
		return s.Complete(), nil
	case ActionRestart:
		return s.Restart(), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, act.Type)
	}
}

// clone copies the state so reducers never share slices with their input
func (s QuizState) clone() QuizState {
	out := s
	out.Answers.Features = append([]Feature{}, s.Answers.Features...)
	if s.Result != nil {
		r := *s.Result
		out.Result = &r
	}
	return out
}

func invalid(field, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, field, value)
}
