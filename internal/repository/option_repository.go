package repository

import (
	"surveytool/internal/model"

	"gorm.io/gorm"
)

type OptionRepository interface {
	Create(option *model.AnswerOption) error
	FindByID(id uint) (*model.AnswerOption, error)
	Update(option *model.AnswerOption) error
	Delete(id uint) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(option *model.AnswerOption) error {
	return r.db.Create(option).Error
}

func (r *optionRepository) FindByID(id uint) (*model.AnswerOption, error) {
	var option model.AnswerOption
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) Update(option *model.AnswerOption) error {
	return r.db.Save(option).Error
}

func (r *optionRepository) Delete(id uint) error {
	return r.db.Delete(&model.AnswerOption{}, id).Error
}
