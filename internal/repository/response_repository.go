package repository

import (
	"surveytool/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.SurveyResponse) error
	FindByIDWithItems(id uint) (*model.SurveyResponse, error)
	FindAllBySurveyID(surveyID uint) ([]model.SurveyResponse, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.SurveyResponse) error {
	// GORM persists the associated items in the same transaction and assigns
	// response.ID.
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByIDWithItems(id uint) (*model.SurveyResponse, error) {
	var response model.SurveyResponse
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("response_items.id ASC")
	}).First(&response, id).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllBySurveyID(surveyID uint) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.db.Where("survey_id = ?", surveyID).Order("created_at DESC").Find(&responses).Error
	return responses, err
}
