package service

import (
	"sort"

	"mangal/internal/configurator"
	"mangal/internal/model"
)

// Match reason constants
const (
	ReasonSpaceTypeMatch = "Тот же тип пространства"
	ReasonStyleMatch     = "Совпадает стиль"
	ReasonSizeMatch      = "Похожая площадь"
	ReasonGuestsMatch    = "Рассчитан на столько же гостей"
	ReasonCanopyMatch    = "Такая же защита от погоды"
	ReasonBudgetMatch    = "Укладывается в ваш бюджет"
	ReasonGeneralMatch   = "Похожий проект"
)

var budgetCeilings = map[configurator.Budget]int64{
	configurator.BudgetEconomy:  150000,
	configurator.BudgetStandard: 350000,
	configurator.BudgetPremium:  700000,
}

// Ranker handles ranking and scoring of portfolio projects
type Ranker struct {
	weightSpaceType float64
	weightStyle     float64
	weightProfile   float64
}

// NewRanker creates a new ranker with specified weights
func NewRanker(weightSpaceType, weightStyle, weightProfile float64) *Ranker {
	return &Ranker{
		weightSpaceType: weightSpaceType,
		weightStyle:     weightStyle,
		weightProfile:   weightProfile,
	}
}

// RankProjects scores projects against the answers and sorts them by score
// descending. Ties keep the input order.
func (r *Ranker) RankProjects(projects []model.Project, answers configurator.Answers) []model.SimilarProject {
	results := make([]model.SimilarProject, 0, len(projects))
	profile := configurator.ProfileVector(answers)

	for _, p := range projects {
		result := model.SimilarProject{
			Project:        p,
			MatchedReasons: []string{},
		}

		spaceScore := matchScore(answers.SpaceType != "" && p.SpaceType == answers.SpaceType)
		styleScore := matchScore(answers.Style != "" && p.Style == answers.Style)
		profileScore := r.calculateProfileScore(profile, p)

		result.Score = (r.weightSpaceType * spaceScore) +
			(r.weightStyle * styleScore) +
			(r.weightProfile * profileScore)

		result.MatchedReasons = r.generateMatchedReasons(p, answers)

		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// calculateProfileScore maps profile distance to 0-1, 1 being identical.
// A distance computed by the database wins over a local one.
func (r *Ranker) calculateProfileScore(profile []float32, p model.Project) float64 {
	var dist float64
	switch {
	case p.Distance != nil:
		dist = *p.Distance
	case len(p.Profile.Slice()) == configurator.ProfileDimensions:
		dist = configurator.Distance(profile, p.Profile.Slice())
	default:
		dist = configurator.Distance(profile, configurator.ProfileVector(p.Answers()))
	}

	score := 1.0 - dist/configurator.MaxDistance()
	if score < 0 {
		score = 0
	}
	return score
}

// generateMatchedReasons explains in user terms why a project was suggested
func (r *Ranker) generateMatchedReasons(p model.Project, answers configurator.Answers) []string {
	reasons := []string{}

	if answers.SpaceType != "" && p.SpaceType == answers.SpaceType {
		reasons = append(reasons, ReasonSpaceTypeMatch)
	}
	if answers.Style != "" && p.Style == answers.Style {
		reasons = append(reasons, ReasonStyleMatch)
	}
	if answers.SpaceSize != "" && p.SpaceSize == answers.SpaceSize {
		reasons = append(reasons, ReasonSizeMatch)
	}
	if answers.GuestsCount != "" && p.GuestsCount == answers.GuestsCount {
		reasons = append(reasons, ReasonGuestsMatch)
	}
	if answers.CanopyType != "" && p.CanopyType == answers.CanopyType {
		reasons = append(reasons, ReasonCanopyMatch)
	}
	if ceiling, ok := budgetCeilings[answers.Budget]; ok && p.Price > 0 && p.Price <= ceiling {
		reasons = append(reasons, ReasonBudgetMatch)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}

	return reasons
}

func matchScore(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
