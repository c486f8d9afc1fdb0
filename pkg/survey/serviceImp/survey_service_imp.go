package serviceImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"farmsurvey/entities"
	"farmsurvey/pkg/survey/repository"
	"farmsurvey/pkg/survey/service"
	treeRepo "farmsurvey/pkg/tree/repository"
	treeSvc "farmsurvey/pkg/tree/service"
)

const defaultListLimit = 100

type surveySvc struct {
	surveys   repository.SurveyRepository
	trees     treeRepo.TreeRepository
	tolerance time.Duration
	now       func() time.Time
}

func New(surveys repository.SurveyRepository, trees treeRepo.TreeRepository, tolerance time.Duration) service.SurveyService {
	return NewWithClock(surveys, trees, tolerance, time.Now)
}

// NewWithClock lets tests pin the timestamps the service writes.
func NewWithClock(surveys repository.SurveyRepository, trees treeRepo.TreeRepository, tolerance time.Duration, now func() time.Time) service.SurveyService {
	return &surveySvc{surveys: surveys, trees: trees, tolerance: tolerance, now: now}
}

func (s *surveySvc) Create(in service.SurveyCreate) (*service.SurveyView, error) {
	rec := &entities.FarmSurvey{
		FarmerName:  in.FarmerName,
		CropType:    in.CropType,
		Latitude:    *in.GeoLocation.Latitude,
		Longitude:   *in.GeoLocation.Longitude,
		SyncStatus:  in.SyncStatus,
		LastUpdated: s.now().UTC(),
	}
	if err := s.surveys.Create(rec); err != nil {
		return nil, err
	}
	return s.view(rec)
}

func (s *surveySvc) Get(id uint) (*service.SurveyView, error) {
	rec, err := s.surveys.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s.view(rec)
}

func (s *surveySvc) List(skip, limit int) ([]service.SurveyView, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	recs, err := s.surveys.List(skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]service.SurveyView, 0, len(recs))
	for i := range recs {
		v, err := s.view(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// UpdatePartial runs the conflict check and the field writes inside the
// repository's transaction, so no other writer can slip between the read of
// last_updated and the commit.
func (s *surveySvc) UpdatePartial(id uint, patch service.SurveyPatch, expected *time.Time) (*service.SurveyView, error) {
	rec, err := s.surveys.Update(id, func(cur *entities.FarmSurvey) error {
		if expected != nil {
			drift := cur.LastUpdated.Sub(*expected)
			if drift < 0 {
				drift = -drift
			}
			if drift > s.tolerance {
				return service.ErrConflict
			}
		}
		if patch.FarmerName != nil {
			cur.FarmerName = *patch.FarmerName
		}
		if patch.CropType != nil {
			cur.CropType = *patch.CropType
		}
		if patch.GeoLocation != nil {
			cur.Latitude = *patch.GeoLocation.Latitude
			cur.Longitude = *patch.GeoLocation.Longitude
		}
		if patch.SyncStatus != nil {
			cur.SyncStatus = *patch.SyncStatus
		}
		cur.LastUpdated = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s.view(rec)
}

func (s *surveySvc) Delete(id uint) error {
	if err := s.surveys.Delete(id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (s *surveySvc) view(rec *entities.FarmSurvey) (*service.SurveyView, error) {
	ts, err := s.trees.ListBySurvey(rec.SurveyID)
	if err != nil {
		return nil, err
	}
	lat, lon := rec.Latitude, rec.Longitude
	return &service.SurveyView{
		SurveyID:    rec.SurveyID,
		FarmerName:  rec.FarmerName,
		CropType:    rec.CropType,
		GeoLocation: service.GeoLocation{Latitude: &lat, Longitude: &lon},
		SyncStatus:  rec.SyncStatus,
		LastUpdated: rec.LastUpdated,
		Trees:       treeSvc.ViewsFrom(ts),
	}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}
