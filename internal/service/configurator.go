package service

import (
	"context"
	"errors"
	"log"

	"mangal/internal/configurator"
	"mangal/internal/model"
)

const resultTitle = "Ваше идеальное место силы готово!"

var resultActions = model.ResultActions{
	Primary:   model.Action{Text: "Получить точный расчет", Action: "open-lead-form"},
	Secondary: model.Action{Text: "Изменить параметры", Action: "restart-quiz"},
	Tertiary:  model.Action{Text: "Сохранить конфигурацию", Action: "save-pdf"},
}

// candidateFactor widens the nearest-neighbour query so the ranker can
// reorder by categorical matches
const candidateFactor = 3

// ProjectFinder looks up portfolio projects close to a profile
type ProjectFinder interface {
	NearestProjects(ctx context.Context, profile []float32, limit int) ([]model.Project, error)
}

// ConfiguratorService wraps the recommendation engine with presentation
// data and similar portfolio projects
type ConfiguratorService struct {
	projects  ProjectFinder
	ranker    *Ranker
	similar   int
	priceNote string
}

// NewConfiguratorService creates a new configurator service. projects may be
// nil, in which case no similar projects are suggested.
func NewConfiguratorService(projects ProjectFinder, ranker *Ranker, similar int, priceNote string) *ConfiguratorService {
	return &ConfiguratorService{
		projects:  projects,
		ranker:    ranker,
		similar:   similar,
		priceNote: priceNote,
	}
}

// Steps returns the quiz questions
func (s *ConfiguratorService) Steps() ([]configurator.QuizStep, error) {
	return configurator.Steps()
}

// Calculate builds the result screen for a set of answers. A failing project
// lookup degrades to an empty suggestion list.
func (s *ConfiguratorService) Calculate(ctx context.Context, answers configurator.Answers) *model.ConfiguratorResponse {
	result := configurator.Calculate(answers)

	resp := &model.ConfiguratorResponse{
		Title: resultTitle,
		Gallery: model.Gallery{
			Images:     result.Images,
			MainImage:  result.Images[0],
			Thumbnails: result.Images,
		},
		Solution: model.Solution{
			Name:        result.Name,
			Description: result.Description,
			Features:    result.Features,
			Materials:   result.Materials,
			Dimensions:  result.Dimensions,
			EstimatedPrice: model.EstimatedPrice{
				Min:  result.PriceRange.Min,
				Max:  result.PriceRange.Max,
				Note: s.priceNote,
			},
		},
		Result:          result,
		SimilarProjects: s.similarProjects(ctx, answers),
		Actions:         resultActions,
	}
	return resp
}

func (s *ConfiguratorService) similarProjects(ctx context.Context, answers configurator.Answers) []model.SimilarProject {
	out := []model.SimilarProject{}
	if s.projects == nil || s.similar <= 0 {
		return out
	}

	candidates, err := s.projects.NearestProjects(ctx, configurator.ProfileVector(answers), s.similar*candidateFactor)
	if err != nil {
		log.Printf("⚠️  Similar projects lookup failed: %v", err)
		return out
	}

	ranked := s.ranker.RankProjects(candidates, answers)
	if len(ranked) > s.similar {
		ranked = ranked[:s.similar]
	}
	return append(out, ranked...)
}

// ApplyQuiz applies one action to a quiz state. A nil state starts a new quiz.
func (s *ConfiguratorService) ApplyQuiz(state *configurator.QuizState, act configurator.Action) (*model.QuizResponse, error) {
	current := configurator.NewQuiz()
	if state != nil {
		current = *state
	}

	next, err := configurator.Apply(current, act)
	if err != nil {
		if errors.Is(err, configurator.ErrUnknownAction) || errors.Is(err, configurator.ErrInvalidAnswer) {
			return nil, invalid(err.Error())
		}
		return nil, err
	}

	return &model.QuizResponse{
		State:       next,
		CanGoNext:   next.CanGoNext(),
		CanGoBack:   next.CanGoBack(),
		IsCompleted: next.IsCompleted(),
		Progress:    next.Progress(),
	}, nil
}
