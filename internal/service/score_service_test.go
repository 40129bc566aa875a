package service

import (
	"testing"

	"surveytool/internal/model"
)

func TestAggregateScores(t *testing.T) {
	svc := NewScoreService(nil)

	t.Run("zero responses yields zeros", func(t *testing.T) {
		total, count, average := svc.AggregateScores(nil)
		if total != 0 || count != 0 || average != 0.0 {
			t.Errorf("got (%d, %d, %f), want (0, 0, 0.0)", total, count, average)
		}
	})

	t.Run("sums stored scores and averages them", func(t *testing.T) {
		responses := []model.SurveyResponse{
			{ID: 1, SurveyID: 1, Score: 9},
			{ID: 2, SurveyID: 1, Score: 5},
			{ID: 3, SurveyID: 1, Score: -2},
		}
		total, count, average := svc.AggregateScores(responses)
		if total != 12 || count != 3 {
			t.Errorf("got total=%d count=%d, want total=12 count=3", total, count)
		}
		if average != 4.0 {
			t.Errorf("average = %f, want 4.0", average)
		}
	})
}

func TestGetSurveyScoreSummary(t *testing.T) {
	repo := &fakeResponseRepo{}
	repo.Create(&model.SurveyResponse{SurveyID: 1, Score: 5})
	repo.Create(&model.SurveyResponse{SurveyID: 1, Score: 3})
	repo.Create(&model.SurveyResponse{SurveyID: 2, Score: 100})
	svc := NewScoreService(repo)

	summary, err := svc.GetSurveyScoreSummary(1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if summary.SurveyID != 1 || summary.TotalScore != 8 || summary.ResponseCount != 2 || summary.AverageScore != 4.0 {
		t.Errorf("summary = %+v, want surveyID=1 total=8 count=2 average=4.0", summary)
	}

	empty, err := svc.GetSurveyScoreSummary(3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if empty.TotalScore != 0 || empty.ResponseCount != 0 || empty.AverageScore != 0.0 {
		t.Errorf("summary for empty survey = %+v, want zeros", empty)
	}
}
