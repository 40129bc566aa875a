package service

import (
	"surveytool/internal/dto"
	"surveytool/internal/model"
)

// visibilityResolver decides, per question, whether it may be answered under
// the current submission. A resolver is built once per submission against one
// immutable graph snapshot and discarded afterwards; results are memoized so
// diamond-shaped or deep parent chains are evaluated at most once per question.
type visibilityResolver struct {
	questionsByID map[uint]*model.Question
	answersByQ    map[uint]dto.AnswerItemDTO
	memo          map[uint]bool
	visiting      map[uint]bool
}

func newVisibilityResolver(questionsByID map[uint]*model.Question, answersByQ map[uint]dto.AnswerItemDTO) *visibilityResolver {
	return &visibilityResolver{
		questionsByID: questionsByID,
		answersByQ:    answersByQ,
		memo:          make(map[uint]bool),
		visiting:      make(map[uint]bool),
	}
}

// IsVisible reports whether the question is answerable. A question with no
// parent is always visible; otherwise the parent must exist, be visible
// itself, and have been answered with at least one of the question's trigger
// options. An unanswered parent hides the child without raising an error.
func (r *visibilityResolver) IsVisible(q *model.Question) bool {
	if v, ok := r.memo[q.ID]; ok {
		return v
	}

	// The parent chain is acyclic by construction (question updates reject
	// cycles), but a revisited question must not recurse forever on stale data.
	if r.visiting[q.ID] {
		return false
	}
	r.visiting[q.ID] = true
	defer delete(r.visiting, q.ID)

	v := r.resolve(q)
	r.memo[q.ID] = v
	return v
}

func (r *visibilityResolver) resolve(q *model.Question) bool {
	if q.ParentQuestionID == nil {
		return true
	}

	parent, ok := r.questionsByID[*q.ParentQuestionID]
	if !ok {
		return false
	}
	if !r.IsVisible(parent) {
		return false
	}

	parentAnswer, ok := r.answersByQ[parent.ID]
	if !ok {
		return false // parent not answered => child hidden
	}

	triggers := make(map[uint]bool, len(q.TriggerOptionIDs))
	for _, id := range q.TriggerOptionIDs {
		triggers[uint(id)] = true
	}
	for _, chosen := range parentAnswer.SelectedOptionIDs {
		if triggers[chosen] {
			return true
		}
	}
	return false
}
