package service

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"surveytool/internal/dto"
	"surveytool/internal/model"
	"surveytool/internal/repository"
)

type fakeQuestionRepo struct {
	repository.QuestionRepository
	questions map[uint]*model.Question
	nextID    uint
	deleted   []uint
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	f := &fakeQuestionRepo{questions: make(map[uint]*model.Question), nextID: 100}
	for _, q := range questions {
		f.questions[q.ID] = q
	}
	return f
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	f.nextID++
	q.ID = f.nextID
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	if q, ok := f.questions[id]; ok {
		return q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.SurveyID == surveyID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindChildren(parentID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.ParentQuestionID != nil && *q.ParentQuestionID == parentID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Update(q *model.Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	delete(f.questions, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestQuestionService(questions ...*model.Question) (QuestionService, *fakeQuestionRepo) {
	surveyRepo := &fakeSurveyRepo{surveys: map[uint]*model.Survey{1: {ID: 1, Title: "Survey"}}}
	questionRepo := newFakeQuestionRepo(questions...)
	return NewQuestionService(surveyRepo, questionRepo), questionRepo
}

func TestAddQuestion(t *testing.T) {
	t.Run("rejects unknown survey", func(t *testing.T) {
		svc, _ := newTestQuestionService()
		_, err := svc.AddQuestion(42, dto.QuestionCreateDTO{Text: "Q", Type: model.QuestionTypeFreeText})
		if !model.IsValidationError(err) || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not-found validation error, got %v", err)
		}
	})

	t.Run("creates question with valid parent", func(t *testing.T) {
		parent := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		svc, repo := newTestQuestionService(parent)
		resp, err := svc.AddQuestion(1, dto.QuestionCreateDTO{
			Text:             "Child",
			Type:             model.QuestionTypeMultipleChoice,
			ParentQuestionID: uintPtr(1),
			TriggerOptionIDs: []uint{11},
		})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		created := repo.questions[resp.ID]
		if created == nil || created.ParentQuestionID == nil || *created.ParentQuestionID != 1 {
			t.Errorf("created question = %+v, want parent 1", created)
		}
	})

	t.Run("rejects parent from another survey", func(t *testing.T) {
		foreign := &model.Question{ID: 7, SurveyID: 2, Type: model.QuestionTypeSingleChoice}
		svc, _ := newTestQuestionService(foreign)
		_, err := svc.AddQuestion(1, dto.QuestionCreateDTO{
			Text:             "Child",
			Type:             model.QuestionTypeFreeText,
			ParentQuestionID: uintPtr(7),
		})
		if !model.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestUpdateQuestionParentChain(t *testing.T) {
	t.Run("rejects self-parenting", func(t *testing.T) {
		q := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		svc, _ := newTestQuestionService(q)
		err := svc.UpdateQuestion(1, dto.QuestionUpdateDTO{
			Text:             "Q",
			Type:             model.QuestionTypeSingleChoice,
			ParentQuestionID: uintPtr(1),
		})
		if !model.IsValidationError(err) || !strings.Contains(err.Error(), "own parent") {
			t.Fatalf("expected self-parent error, got %v", err)
		}
	})

	t.Run("rejects two-node cycle", func(t *testing.T) {
		q1 := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		q2 := &model.Question{ID: 2, SurveyID: 1, Type: model.QuestionTypeSingleChoice, ParentQuestionID: uintPtr(1)}
		svc, _ := newTestQuestionService(q1, q2)
		err := svc.UpdateQuestion(1, dto.QuestionUpdateDTO{
			Text:             "Q1",
			Type:             model.QuestionTypeSingleChoice,
			ParentQuestionID: uintPtr(2),
		})
		if !model.IsValidationError(err) || !strings.Contains(err.Error(), "cycle") {
			t.Fatalf("expected cycle error, got %v", err)
		}
	})

	t.Run("rejects longer cycle through the chain", func(t *testing.T) {
		q1 := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		q2 := &model.Question{ID: 2, SurveyID: 1, Type: model.QuestionTypeSingleChoice, ParentQuestionID: uintPtr(1)}
		q3 := &model.Question{ID: 3, SurveyID: 1, Type: model.QuestionTypeSingleChoice, ParentQuestionID: uintPtr(2)}
		svc, _ := newTestQuestionService(q1, q2, q3)
		err := svc.UpdateQuestion(1, dto.QuestionUpdateDTO{
			Text:             "Q1",
			Type:             model.QuestionTypeSingleChoice,
			ParentQuestionID: uintPtr(3),
		})
		if !model.IsValidationError(err) || !strings.Contains(err.Error(), "cycle") {
			t.Fatalf("expected cycle error, got %v", err)
		}
	})

	t.Run("accepts valid reparenting and clears parent", func(t *testing.T) {
		q1 := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		q2 := &model.Question{ID: 2, SurveyID: 1, Type: model.QuestionTypeSingleChoice, ParentQuestionID: uintPtr(1)}
		q3 := &model.Question{ID: 3, SurveyID: 1, Type: model.QuestionTypeMultipleChoice}
		svc, repo := newTestQuestionService(q1, q2, q3)

		if err := svc.UpdateQuestion(3, dto.QuestionUpdateDTO{
			Text:             "Q3",
			Type:             model.QuestionTypeMultipleChoice,
			ParentQuestionID: uintPtr(2),
			TriggerOptionIDs: []uint{21},
		}); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got := repo.questions[3].ParentQuestionID; got == nil || *got != 2 {
			t.Errorf("parent = %v, want 2", got)
		}

		if err := svc.UpdateQuestion(3, dto.QuestionUpdateDTO{
			Text: "Q3",
			Type: model.QuestionTypeMultipleChoice,
		}); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if repo.questions[3].ParentQuestionID != nil {
			t.Error("parent should be cleared when update omits it")
		}
	})
}

func TestDeleteQuestion(t *testing.T) {
	t.Run("rejects deleting a parent without cascade", func(t *testing.T) {
		q1 := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		q2 := &model.Question{ID: 2, SurveyID: 1, Type: model.QuestionTypeFreeText, ParentQuestionID: uintPtr(1)}
		svc, _ := newTestQuestionService(q1, q2)
		err := svc.DeleteQuestion(1, false)
		if !model.IsValidationError(err) || !strings.Contains(err.Error(), "cascade") {
			t.Fatalf("expected cascade error, got %v", err)
		}
	})

	t.Run("cascade deletes the whole subtree", func(t *testing.T) {
		q1 := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeSingleChoice}
		q2 := &model.Question{ID: 2, SurveyID: 1, Type: model.QuestionTypeSingleChoice, ParentQuestionID: uintPtr(1)}
		q3 := &model.Question{ID: 3, SurveyID: 1, Type: model.QuestionTypeFreeText, ParentQuestionID: uintPtr(2)}
		svc, repo := newTestQuestionService(q1, q2, q3)
		if err := svc.DeleteQuestion(1, true); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(repo.questions) != 0 {
			t.Errorf("remaining questions = %v, want none", repo.questions)
		}
	})

	t.Run("leaf question deletes without cascade", func(t *testing.T) {
		q1 := &model.Question{ID: 1, SurveyID: 1, Type: model.QuestionTypeFreeText}
		svc, repo := newTestQuestionService(q1)
		if err := svc.DeleteQuestion(1, false); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
			t.Errorf("deleted = %v, want [1]", repo.deleted)
		}
	})
}
