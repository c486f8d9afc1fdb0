package repositoryImp

import (
	"gorm.io/gorm"

	"farmsurvey/entities"
	"farmsurvey/pkg/tree/repository"
)

type treeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TreeRepository { return &treeRepo{db} }

func (r *treeRepo) Create(t *entities.Tree) error { return r.db.Create(t).Error }

func (r *treeRepo) FindByID(id uint) (*entities.Tree, error) {
	var t entities.Tree
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *treeRepo) ListBySurvey(surveyID uint) ([]entities.Tree, error) {
	var out []entities.Tree
	if err := r.db.Where("survey_id = ?", surveyID).Order("tree_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *treeRepo) Update(id uint, mutate func(*entities.Tree) error) (*entities.Tree, error) {
	var t entities.Tree
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			return err
		}
		if err := mutate(&t); err != nil {
			return err
		}
		return tx.Save(&t).Error
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *treeRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Tree{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
