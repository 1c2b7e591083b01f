package service

import (
	"testing"

	"mangal/internal/configurator"
	"mangal/internal/model"

	"github.com/pgvector/pgvector-go"
)

func project(id string, a configurator.Answers, price int64) model.Project {
	return model.Project{
		ID:          id,
		Title:       id,
		Price:       price,
		SpaceType:   a.SpaceType,
		SpaceSize:   a.SpaceSize,
		GuestsCount: a.GuestsCount,
		CanopyType:  a.CanopyType,
		Style:       a.Style,
		Profile:     pgvector.NewVector(configurator.ProfileVector(a)),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestRankProjects_Order(t *testing.T) {
	ranker := NewRanker(0.4, 0.2, 0.4)
	answers := configurator.Answers{
		SpaceType:   configurator.SpaceKitchen,
		SpaceSize:   configurator.SizeStandard,
		GuestsCount: configurator.Guests8to10,
		CanopyType:  configurator.CanopyLight,
		Style:       configurator.StyleClassic,
		Budget:      configurator.BudgetPremium,
	}

	exact := project("exact", answers, 400000)
	sameKind := project("same-kind", configurator.Answers{
		SpaceType: configurator.SpaceKitchen, SpaceSize: configurator.SizePremium,
		GuestsCount: configurator.Guests12, CanopyType: configurator.CanopyCapital, Style: configurator.StylePremium,
	}, 900000)
	other := project("other", configurator.Answers{
		SpaceType: configurator.SpaceMangal, SpaceSize: configurator.SizeCompact,
		GuestsCount: configurator.Guests4to6, CanopyType: configurator.CanopyNone, Style: configurator.StyleMinimalist,
	}, 1200000)

	ranked := ranker.RankProjects([]model.Project{other, sameKind, exact}, answers)
	if len(ranked) != 3 {
		t.Fatalf("got %d results", len(ranked))
	}
	got := []string{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	want := []string{"exact", "same-kind", "other"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	if ranked[0].Score < 0.999 || ranked[0].Score > 1.001 {
		t.Errorf("exact match score = %v, want 1", ranked[0].Score)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not descending: %v > %v", ranked[i].Score, ranked[i-1].Score)
		}
	}

	reasons := ranked[0].MatchedReasons
	for _, r := range []string{ReasonSpaceTypeMatch, ReasonStyleMatch, ReasonSizeMatch, ReasonGuestsMatch, ReasonCanopyMatch, ReasonBudgetMatch} {
		if !contains(reasons, r) {
			t.Errorf("exact match reasons %v missing %q", reasons, r)
		}
	}
	if contains(ranked[1].MatchedReasons, ReasonBudgetMatch) {
		t.Error("over-budget project marked as within budget")
	}
	if r := ranked[2].MatchedReasons; len(r) != 1 || r[0] != ReasonGeneralMatch {
		t.Errorf("unrelated project reasons = %v", r)
	}
}

func TestRankProjects_UsesDatabaseDistance(t *testing.T) {
	ranker := NewRanker(0, 0, 1)
	answers := configurator.Answers{SpaceType: configurator.SpaceMangal}

	near := project("near", configurator.Answers{SpaceType: configurator.SpaceComplex}, 0)
	zero := 0.0
	near.Distance = &zero

	ranked := ranker.RankProjects([]model.Project{near}, answers)
	if ranked[0].Score != 1 {
		t.Errorf("Score = %v, want 1 from the supplied distance", ranked[0].Score)
	}
}

func TestRankProjects_MissingProfile(t *testing.T) {
	ranker := NewRanker(0, 0, 1)
	a := configurator.Answers{SpaceType: configurator.SpaceKitchen, Style: configurator.StylePremium}
	p := project("p", a, 0)
	p.Profile = pgvector.Vector{}

	ranked := ranker.RankProjects([]model.Project{p}, a)
	if ranked[0].Score < 0.999 {
		t.Errorf("Score = %v, want the profile rebuilt from attributes", ranked[0].Score)
	}
}

func TestRankProjects_Empty(t *testing.T) {
	ranked := NewRanker(1, 1, 1).RankProjects(nil, configurator.Answers{})
	if ranked == nil || len(ranked) != 0 {
		t.Errorf("RankProjects(nil) = %v, want empty slice", ranked)
	}
}
