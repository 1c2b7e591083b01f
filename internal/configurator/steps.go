package configurator

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed steps.yaml
var stepsYAML []byte

// QuizOption is one selectable answer of a quiz step
type QuizOption struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Icon         string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	PriceRange   string   `json:"priceRange,omitempty" yaml:"priceRange,omitempty"`
	Price        string   `json:"price,omitempty" yaml:"price,omitempty"`
	Visual       string   `json:"visual,omitempty" yaml:"visual,omitempty"`
	Recommended  bool     `json:"recommended,omitempty" yaml:"recommended,omitempty"`
	Materials    []string `json:"materials,omitempty" yaml:"materials,omitempty"`
	MangalLength string   `json:"mangalLength,omitempty" yaml:"mangalLength,omitempty"`
}

// QuizStep is one question of the configurator quiz
type QuizStep struct {
	ID       int          `json:"id" yaml:"id"`
	Field    string       `json:"field" yaml:"field"`
	Question string       `json:"question" yaml:"question"`
	Type     string       `json:"type" yaml:"type"`
	Visual   string       `json:"visual" yaml:"visual"`
	Note     string       `json:"note,omitempty" yaml:"note,omitempty"`
	Options  []QuizOption `json:"options" yaml:"options"`
}

var (
	stepsOnce sync.Once
	steps     []QuizStep
	stepsErr  error
)

// Steps returns the quiz questions, parsed once from the embedded document
func Steps() ([]QuizStep, error) {
	stepsOnce.Do(func() {
		steps, stepsErr = ParseSteps(stepsYAML)
	})
	return steps, stepsErr
}

// ParseSteps decodes and validates a quiz steps document
func ParseSteps(data []byte) ([]QuizStep, error) {
	var out []QuizStep
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse quiz steps: %w", err)
	}
	if len(out) != TotalSteps {
		return nil, fmt.Errorf("expected %d quiz steps, got %d", TotalSteps, len(out))
	}
	for i, st := range out {
		if len(st.Options) == 0 {
			return nil, fmt.Errorf("quiz step %d has no options", st.ID)
		}
		for _, opt := range st.Options {
			if !validOption(st.Field, opt.ID) {
				return nil, fmt.Errorf("quiz step %d: option %q is not a valid %s", i+1, opt.ID, st.Field)
			}
		}
	}
	return out, nil
}

func validOption(field, id string) bool {
	switch field {
	case "spaceType":
		return SpaceType(id).Valid()
	case "spaceSize":
		return SpaceSize(id).Valid()
	case "guestsCount":
		return GuestsCount(id).Valid()
	case "features":
		return Feature(id).Valid()
	case "canopyType":
		return CanopyType(id).Valid()
	case "style":
		return Style(id).Valid()
	case "budget":
		return Budget(id).Valid()
	}
	return false
}
