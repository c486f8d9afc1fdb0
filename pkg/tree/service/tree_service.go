package service

import (
	"errors"
	"time"

	"farmsurvey/entities"
)

var (
	ErrNotFound       = errors.New("tree not found")
	ErrSurveyNotFound = errors.New("survey not found")
)

type TreeService interface {
	Create(surveyID uint, in TreeCreate) (*TreeView, error)
	Get(id uint) (*TreeView, error)
	ListBySurvey(surveyID uint) ([]TreeView, error)
	UpdatePartial(id uint, patch TreePatch) (*TreeView, error)
	Delete(id uint) error
}

type TreeCreate struct {
	SpeciesName string   `json:"species_name" validate:"required"`
	TreeCount   int      `json:"tree_count" validate:"gt=0"`
	HeightAvg   *float64 `json:"height_avg" validate:"omitempty,gte=0"`
	DiameterAvg *float64 `json:"diameter_avg" validate:"omitempty,gte=0"`
	AgeAvg      *int     `json:"age_avg" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes"`
}

// TreePatch carries only the fields present in the request body; nil means
// "leave unchanged", which is not the same as an explicit zero value.
type TreePatch struct {
	SpeciesName *string  `json:"species_name" validate:"omitempty,min=1"`
	TreeCount   *int     `json:"tree_count" validate:"omitempty,gt=0"`
	HeightAvg   *float64 `json:"height_avg" validate:"omitempty,gte=0"`
	DiameterAvg *float64 `json:"diameter_avg" validate:"omitempty,gte=0"`
	AgeAvg      *int     `json:"age_avg" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes"`
}

type TreeView struct {
	TreeID      uint      `json:"tree_id"`
	SurveyID    uint      `json:"survey_id"`
	SpeciesName string    `json:"species_name"`
	TreeCount   int       `json:"tree_count"`
	HeightAvg   *float64  `json:"height_avg"`
	DiameterAvg *float64  `json:"diameter_avg"`
	AgeAvg      *int      `json:"age_avg"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ViewFrom(t entities.Tree) TreeView {
	return TreeView{
		TreeID:      t.TreeID,
		SurveyID:    t.SurveyID,
		SpeciesName: t.SpeciesName,
		TreeCount:   t.TreeCount,
		HeightAvg:   t.HeightAvg,
		DiameterAvg: t.DiameterAvg,
		AgeAvg:      t.AgeAvg,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ViewsFrom(ts []entities.Tree) []TreeView {
	out := make([]TreeView, 0, len(ts))
	for _, t := range ts {
		out = append(out, ViewFrom(t))
	}
	return out
}
