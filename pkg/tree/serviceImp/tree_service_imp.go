package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"farmsurvey/entities"
	surveyRepo "farmsurvey/pkg/survey/repository"
	"farmsurvey/pkg/tree/repository"
	"farmsurvey/pkg/tree/service"
)

type treeSvc struct {
	trees   repository.TreeRepository
	surveys surveyRepo.SurveyRepository
}

func New(trees repository.TreeRepository, surveys surveyRepo.SurveyRepository) service.TreeService {
	return &treeSvc{trees: trees, surveys: surveys}
}

func (s *treeSvc) Create(surveyID uint, in service.TreeCreate) (*service.TreeView, error) {
	ok, err := s.surveys.Exists(surveyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, service.ErrSurveyNotFound
	}
	t := &entities.Tree{
		SurveyID:    surveyID,
		SpeciesName: in.SpeciesName,
		TreeCount:   in.TreeCount,
		HeightAvg:   in.HeightAvg,
		DiameterAvg: in.DiameterAvg,
		AgeAvg:      in.AgeAvg,
		Notes:       in.Notes,
	}
	if err := s.trees.Create(t); err != nil {
		return nil, err
	}
	v := service.ViewFrom(*t)
	return &v, nil
}

func (s *treeSvc) Get(id uint) (*service.TreeView, error) {
	t, err := s.trees.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	v := service.ViewFrom(*t)
	return &v, nil
}

func (s *treeSvc) ListBySurvey(surveyID uint) ([]service.TreeView, error) {
	ok, err := s.surveys.Exists(surveyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, service.ErrSurveyNotFound
	}
	ts, err := s.trees.ListBySurvey(surveyID)
	if err != nil {
		return nil, err
	}
	return service.ViewsFrom(ts), nil
}

func (s *treeSvc) UpdatePartial(id uint, patch service.TreePatch) (*service.TreeView, error) {
	t, err := s.trees.Update(id, func(cur *entities.Tree) error {
		if patch.SpeciesName != nil {
			cur.SpeciesName = *patch.SpeciesName
		}
		if patch.TreeCount != nil {
			cur.TreeCount = *patch.TreeCount
		}
		if patch.HeightAvg != nil {
			cur.HeightAvg = patch.HeightAvg
		}
		if patch.DiameterAvg != nil {
			cur.DiameterAvg = patch.DiameterAvg
		}
		if patch.AgeAvg != nil {
			cur.AgeAvg = patch.AgeAvg
		}
		if patch.Notes != nil {
			cur.Notes = patch.Notes
		}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	v := service.ViewFrom(*t)
	return &v, nil
}

func (s *treeSvc) Delete(id uint) error {
	if err := s.trees.Delete(id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}
