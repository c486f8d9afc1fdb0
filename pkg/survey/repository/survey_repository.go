package repository

import "farmsurvey/entities"

type SurveyRepository interface {
	Create(s *entities.FarmSurvey) error
	FindByID(id uint) (*entities.FarmSurvey, error)
	Exists(id uint) (bool, error)
	List(offset, limit int) ([]entities.FarmSurvey, error)
	// Update loads the row, runs mutate on it and saves, all inside one
	// transaction. A non-nil error from mutate rolls everything back.
	Update(id uint, mutate func(*entities.FarmSurvey) error) (*entities.FarmSurvey, error)
	// Delete removes the survey and every tree referencing it atomically.
	Delete(id uint) error
}
