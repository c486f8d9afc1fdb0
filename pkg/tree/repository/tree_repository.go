package repository

import "farmsurvey/entities"

type TreeRepository interface {
	Create(t *entities.Tree) error
	FindByID(id uint) (*entities.Tree, error)
	ListBySurvey(surveyID uint) ([]entities.Tree, error)
	// Update loads, mutates and saves inside one transaction.
	Update(id uint, mutate func(*entities.Tree) error) (*entities.Tree, error)
	Delete(id uint) error
}
