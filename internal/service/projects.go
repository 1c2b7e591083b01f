package service

import (
	"context"
	"strings"

	"mangal/internal/configurator"
	"mangal/internal/model"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ProjectStore is the persistence for portfolio projects
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	NearestProjects(ctx context.Context, profile []float32, limit int) ([]model.Project, error)
	CreateProject(ctx context.Context, p *model.Project) error
	DeleteProject(ctx context.Context, id string) error
}

// Project validation messages
const (
	msgProjectTitleRequired = "Название проекта обязательно"
	msgProjectPriceInvalid  = "Стоимость проекта не может быть отрицательной"
	msgSpaceTypeInvalid     = "Недопустимый тип пространства"
	msgSpaceSizeInvalid     = "Недопустимая площадь"
	msgGuestsInvalid        = "Недопустимое количество гостей"
	msgCanopyInvalid        = "Недопустимый тип навеса"
	msgStyleInvalid         = "Недопустимый стиль"
)

// ProjectService manages the portfolio
type ProjectService struct {
	store ProjectStore
}

// NewProjectService creates a new project service
func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.store.ListProjects(ctx)
}

// Create validates a project and stores it with its profile vector.
// Attributes are optional but must be known values when present.
func (s *ProjectService) Create(ctx context.Context, in model.ProjectInput) (*model.Project, error) {
	var errs collector
	title := strings.TrimSpace(in.Title)
	errs.check(title != "", msgProjectTitleRequired)
	errs.check(in.Price >= 0, msgProjectPriceInvalid)

	p := &model.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Image:       strings.TrimSpace(in.Image),
		Price:       in.Price,
		Link:        strings.TrimSpace(in.Link),
		SpaceType:   configurator.SpaceType(strings.TrimSpace(in.SpaceType)),
		SpaceSize:   configurator.SpaceSize(strings.TrimSpace(in.SpaceSize)),
		GuestsCount: configurator.GuestsCount(strings.TrimSpace(in.GuestsCount)),
		CanopyType:  configurator.CanopyType(strings.TrimSpace(in.CanopyType)),
		Style:       configurator.Style(strings.TrimSpace(in.Style)),
	}
	errs.check(p.SpaceType == "" || p.SpaceType.Valid(), msgSpaceTypeInvalid)
	errs.check(p.SpaceSize == "" || p.SpaceSize.Valid(), msgSpaceSizeInvalid)
	errs.check(p.GuestsCount == "" || p.GuestsCount.Valid(), msgGuestsInvalid)
	errs.check(p.CanopyType == "" || p.CanopyType.Valid(), msgCanopyInvalid)
	errs.check(p.Style == "" || p.Style.Valid(), msgStyleInvalid)
	if err := errs.err(); err != nil {
		return nil, err
	}

	p.Profile = pgvector.NewVector(configurator.ProfileVector(p.Answers()))
	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}
