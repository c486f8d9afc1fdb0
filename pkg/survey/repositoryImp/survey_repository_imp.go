package repositoryImp

import (
	"gorm.io/gorm"

	"farmsurvey/entities"
	"farmsurvey/pkg/survey/repository"
)

type surveyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SurveyRepository { return &surveyRepo{db} }

func (r *surveyRepo) Create(s *entities.FarmSurvey) error { return r.db.Create(s).Error }

func (r *surveyRepo) FindByID(id uint) (*entities.FarmSurvey, error) {
	var s entities.FarmSurvey
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *surveyRepo) Exists(id uint) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.FarmSurvey{}).Where("survey_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *surveyRepo) List(offset, limit int) ([]entities.FarmSurvey, error) {
	var out []entities.FarmSurvey
	if err := r.db.Order("survey_id ASC").Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *surveyRepo) Update(id uint, mutate func(*entities.FarmSurvey) error) (*entities.FarmSurvey, error) {
	var s entities.FarmSurvey
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		if err := mutate(&s); err != nil {
			return err
		}
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *surveyRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s entities.FarmSurvey
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&entities.Tree{}).Error; err != nil {
			return err
		}
		return tx.Delete(&s).Error
	})
}
