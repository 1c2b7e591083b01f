package model

import (
	"time"

	"mangal/internal/configurator"

	"github.com/pgvector/pgvector-go"
)

// Project is a completed portfolio installation described by the same
// attributes the configurator asks for
type Project struct {
	ID          string                   `json:"id" db:"id"`
	Title       string                   `json:"title" db:"title"`
	Image       string                   `json:"image" db:"image"`
	Price       int64                    `json:"price" db:"price"`
	Link        string                   `json:"link" db:"link"`
	SpaceType   configurator.SpaceType   `json:"spaceType" db:"space_type"`
	SpaceSize   configurator.SpaceSize   `json:"spaceSize" db:"space_size"`
	GuestsCount configurator.GuestsCount `json:"guestsCount" db:"guests_count"`
	CanopyType  configurator.CanopyType  `json:"canopyType" db:"canopy_type"`
	Style       configurator.Style       `json:"style" db:"style"`
	Profile     pgvector.Vector          `json:"-" db:"profile"`
	Distance    *float64                 `json:"-" db:"distance"`
	CreatedAt   time.Time                `json:"createdAt" db:"created_at"`
}

// Answers returns the project attributes as configurator answers
func (p Project) Answers() configurator.Answers {
	return configurator.Answers{
		SpaceType:   p.SpaceType,
		SpaceSize:   p.SpaceSize,
		GuestsCount: p.GuestsCount,
		CanopyType:  p.CanopyType,
		Style:       p.Style,
	}
}

// ProjectInput is the admin payload for a portfolio project
type ProjectInput struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Link        string `json:"link"`
	SpaceType   string `json:"spaceType"`
	SpaceSize   string `json:"spaceSize"`
	GuestsCount string `json:"guestsCount"`
	CanopyType  string `json:"canopyType"`
	Style       string `json:"style"`
}

// SimilarProject is a ranked portfolio suggestion
type SimilarProject struct {
	Project
	Score          float64  `json:"score"`
	MatchedReasons []string `json:"matchedReasons"`
}
