package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mangal/internal/configurator"
	"mangal/internal/model"
)

func TestConfiguratorCalculate(t *testing.T) {
	svc := NewConfiguratorService(nil, NewRanker(0.4, 0.2, 0.4), 3, "note")
	answers := configurator.Answers{
		SpaceType:   configurator.SpaceMangal,
		SpaceSize:   configurator.SizeStandard,
		GuestsCount: configurator.Guests8to10,
		Features:    []configurator.Feature{configurator.FeatureWorktop},
		CanopyType:  configurator.CanopyNone,
		Style:       configurator.StyleClassic,
	}

	resp := svc.Calculate(context.Background(), answers)
	if resp.Title != resultTitle {
		t.Errorf("Title = %q", resp.Title)
	}
	if p := resp.Solution.EstimatedPrice; p.Min != 40000 || p.Max != 165000 || p.Note != "note" {
		t.Errorf("EstimatedPrice = %+v", p)
	}
	if resp.Gallery.MainImage != resp.Gallery.Images[0] {
		t.Errorf("MainImage = %q, want first image", resp.Gallery.MainImage)
	}
	if !reflect.DeepEqual(resp.Gallery.Thumbnails, resp.Gallery.Images) {
		t.Errorf("Thumbnails = %v, want the full gallery %v", resp.Gallery.Thumbnails, resp.Gallery.Images)
	}
	if resp.Actions.Primary.Action != "open-lead-form" || resp.Actions.Secondary.Action != "restart-quiz" || resp.Actions.Tertiary.Action != "save-pdf" {
		t.Errorf("Actions = %+v", resp.Actions)
	}
	if resp.SimilarProjects == nil || len(resp.SimilarProjects) != 0 {
		t.Errorf("SimilarProjects = %v, want empty without a project store", resp.SimilarProjects)
	}
	if resp.Result.Name != resp.Solution.Name {
		t.Errorf("Result and Solution disagree: %q vs %q", resp.Result.Name, resp.Solution.Name)
	}
}

func TestConfiguratorCalculate_SimilarProjects(t *testing.T) {
	store := newMemStore()
	kitchen := configurator.Answers{SpaceType: configurator.SpaceKitchen, Style: configurator.StyleClassic}
	for _, id := range []string{"k1", "k2", "k3"} {
		store.projects = append(store.projects, project(id, kitchen, 300000))
	}
	store.projects = append(store.projects, project("m1", configurator.Answers{SpaceType: configurator.SpaceMangal}, 50000))

	svc := NewConfiguratorService(store, NewRanker(0.4, 0.2, 0.4), 2, "")
	resp := svc.Calculate(context.Background(), kitchen)

	if len(resp.SimilarProjects) != 2 {
		t.Fatalf("got %d similar projects, want 2", len(resp.SimilarProjects))
	}
	for _, p := range resp.SimilarProjects {
		if p.SpaceType != configurator.SpaceKitchen {
			t.Errorf("suggested %s of type %q", p.ID, p.SpaceType)
		}
	}
}

func TestConfiguratorCalculate_LookupFailure(t *testing.T) {
	store := newMemStore()
	store.failWith = errors.New("db down")

	svc := NewConfiguratorService(store, NewRanker(1, 1, 1), 3, "")
	resp := svc.Calculate(context.Background(), configurator.Answers{})
	if resp.SimilarProjects == nil || len(resp.SimilarProjects) != 0 {
		t.Errorf("SimilarProjects = %v, want empty", resp.SimilarProjects)
	}
}

func TestConfiguratorApplyQuiz(t *testing.T) {
	svc := NewConfiguratorService(nil, NewRanker(1, 1, 1), 0, "")

	resp, err := svc.ApplyQuiz(nil, configurator.Action{Type: configurator.ActionSet, Field: "spaceType", Value: "kitchen"})
	if err != nil {
		t.Fatalf("ApplyQuiz() error = %v", err)
	}
	if !resp.CanGoNext || resp.CanGoBack || resp.IsCompleted {
		t.Errorf("flags = %+v", resp)
	}

	resp, err = svc.ApplyQuiz(&resp.State, configurator.Action{Type: configurator.ActionNext})
	if err != nil {
		t.Fatalf("ApplyQuiz(next) error = %v", err)
	}
	if resp.State.CurrentStep != 1 || !resp.CanGoBack {
		t.Errorf("after next: step %d canGoBack %v", resp.State.CurrentStep, resp.CanGoBack)
	}

	for _, act := range []configurator.Action{
		{Type: "jump"},
		{Type: configurator.ActionSet, Field: "style", Value: "gothic"},
	} {
		_, err := svc.ApplyQuiz(&resp.State, act)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ApplyQuiz(%+v) error = %v, want ValidationError", act, err)
		}
	}
}

func TestProjectService(t *testing.T) {
	store := newMemStore()
	svc := NewProjectService(store)
	ctx := context.Background()

	p, err := svc.Create(ctx, model.ProjectInput{
		Title:     "Кухня в Подмосковье",
		Price:     420000,
		SpaceType: "kitchen",
		Style:     "premium",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := configurator.ProfileVector(configurator.Answers{SpaceType: configurator.SpaceKitchen, Style: configurator.StylePremium})
	got := p.Profile.Slice()
	if len(got) != len(want) {
		t.Fatalf("Profile = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Profile[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	_, err = svc.Create(ctx, model.ProjectInput{SpaceType: "yacht", Style: "gothic", Price: -1})
	msgs := validationMessages(t, err)
	wantMsgs := []string{msgProjectTitleRequired, msgProjectPriceInvalid, msgSpaceTypeInvalid, msgStyleInvalid}
	if len(msgs) != len(wantMsgs) {
		t.Fatalf("messages = %v, want %v", msgs, wantMsgs)
	}
	for i := range wantMsgs {
		if msgs[i] != wantMsgs[i] {
			t.Errorf("messages[%d] = %q, want %q", i, msgs[i], wantMsgs[i])
		}
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Errorf("List() = %d projects", len(list))
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, p.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestStatsService(t *testing.T) {
	store := newMemStore()
	store.stats = model.Stats{Products: 3, NewLeads: 2}

	stats, err := NewStatsService(store).Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stats.Products != 3 || stats.NewLeads != 2 {
		t.Errorf("stats = %+v", stats)
	}
}
