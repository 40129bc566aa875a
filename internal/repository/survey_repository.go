package repository

import (
	"surveytool/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithGraph(id uint) (*model.Survey, error)
	FindAllWithQuestionCount() ([]struct {
		model.Survey
		QuestionCount int
	}, error)
	Update(survey *model.Survey) error
	Delete(id uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindByIDWithGraph loads the survey with its full question/option graph. The
// submission engine evaluates visibility and scoring against this snapshot.
func (r *surveyRepository) FindByIDWithGraph(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.id ASC")
		}).
		First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllWithQuestionCount() ([]struct {
	model.Survey
	QuestionCount int
}, error) {
	var results []struct {
		model.Survey
		QuestionCount int
	}
	err := r.db.Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Where("surveys.deleted_at IS NULL").
		Order("surveys.id ASC").
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}

func (r *surveyRepository) Delete(id uint) error {
	return r.db.Delete(&model.Survey{}, id).Error
}
