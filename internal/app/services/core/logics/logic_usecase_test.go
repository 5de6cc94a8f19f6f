package logics

import (
	"context"
	"qsights-service/internal/app/models"
	"qsights-service/internal/pkg/branching"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeQuestionnaireRepository struct {
	questionnaire *models.Questionnaire
	updated       *models.Questionnaire
}

func (f *fakeQuestionnaireRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	return questionnaire.ID.Hex(), nil
}

func (f *fakeQuestionnaireRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	if f.questionnaire == nil || f.questionnaire.ID.Hex() != questionnaireID {
		return nil, nil
	}
	return f.questionnaire, nil
}

func (f *fakeQuestionnaireRepository) FindAll(ctx context.Context, status string, page, pageSize int) ([]models.Questionnaire, int, error) {
	return nil, 0, nil
}

func (f *fakeQuestionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	f.updated = questionnaire
	return nil
}

func (f *fakeQuestionnaireRepository) DeleteByID(ctx context.Context, questionnaireID string) error {
	f.questionnaire = nil
	return nil
}

func newFakeRepository(questions ...branching.Question) *fakeQuestionnaireRepository {
	return &fakeQuestionnaireRepository{
		questionnaire: &models.Questionnaire{
			ID:        primitive.NewObjectID(),
			Title:     "Onboarding survey",
			Status:    constvars.QuestionnaireStatusDraft,
			Version:   1,
			Questions: questions,
		},
	}
}

func TestLogicUsecase_AttachLogic(t *testing.T) {
	t.Run("rejects a rule pointing at the question itself", func(t *testing.T) {
		repo := newFakeRepository(
			branching.Question{ID: "q1", Type: branching.QuestionTypeMCQ, Text: "Q1", Options: []string{"Yes", "No"}},
			branching.Question{ID: "q2", Type: branching.QuestionTypeText, Text: "Q2"},
		)
		usecase := NewLogicUsecase(repo)

		request := &requests.ConditionalLogic{
			Enabled: true,
			Rules: []requests.ConditionalRule{
				{SourceQuestionID: "q2", Operator: branching.OperatorEquals, Value: requests.StringList{"Yes"}},
			},
		}

		_, err := usecase.AttachLogic(context.Background(), repo.questionnaire.ID.Hex(), "q2", request)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "Circular dependency detected")
		assert.Nil(t, repo.updated, "nothing should be persisted on rejection")
	})

	t.Run("rejects a two question cycle introduced by the attach", func(t *testing.T) {
		repo := newFakeRepository(
			branching.Question{
				ID: "q1", Type: branching.QuestionTypeMCQ, Text: "Q1", Options: []string{"Yes", "No"},
				Logic: &branching.ConditionalLogic{
					ID: "l1", Enabled: true, Action: branching.ActionShow, Combinator: branching.CombinatorAnd,
					Rules: []branching.ConditionalRule{
						{ID: "r1", SourceQuestionID: "q2", Operator: branching.OperatorIsAnswered},
					},
				},
			},
			branching.Question{ID: "q2", Type: branching.QuestionTypeMCQ, Text: "Q2", Options: []string{"A", "B"}},
		)
		usecase := NewLogicUsecase(repo)

		request := &requests.ConditionalLogic{
			Enabled: true,
			Rules: []requests.ConditionalRule{
				{SourceQuestionID: "q1", Operator: branching.OperatorEquals, Value: requests.StringList{"Yes"}},
			},
		}

		_, err := usecase.AttachLogic(context.Background(), repo.questionnaire.ID.Hex(), "q2", request)
		require.Error(t, err)
		assert.Contains(t, err.(*exceptions.CustomError).DevMessage, "Circular dependency detected")
	})

	t.Run("attaches valid logic with defaults filled in", func(t *testing.T) {
		repo := newFakeRepository(
			branching.Question{ID: "q1", Type: branching.QuestionTypeMCQ, Text: "Q1", Options: []string{"Yes", "No"}},
			branching.Question{ID: "q2", Type: branching.QuestionTypeText, Text: "Q2"},
		)
		usecase := NewLogicUsecase(repo)

		request := &requests.ConditionalLogic{
			Enabled: true,
			Rules: []requests.ConditionalRule{
				{SourceQuestionID: "q1", Operator: branching.OperatorEquals, Value: requests.StringList{"Yes"}},
			},
		}

		logic, err := usecase.AttachLogic(context.Background(), repo.questionnaire.ID.Hex(), "q2", request)
		require.NoError(t, err)

		assert.NotEmpty(t, logic.ID)
		assert.Equal(t, branching.ActionShow, logic.Action)
		assert.Equal(t, branching.CombinatorAnd, logic.Combinator)
		require.NotNil(t, repo.updated)
		assert.Equal(t, logic, repo.updated.Questions[1].Logic)
	})

	t.Run("reconciles parent branching mappings from indices on attach", func(t *testing.T) {
		repo := newFakeRepository(
			branching.Question{ID: "parent", Type: branching.QuestionTypeMCQ, Text: "Parent", Options: []string{"Yes", "No"}},
			branching.Question{ID: "child-a", Type: branching.QuestionTypeText, Text: "A"},
			branching.Question{ID: "child-b", Type: branching.QuestionTypeText, Text: "B"},
		)
		usecase := NewLogicUsecase(repo)

		request := &requests.ConditionalLogic{
			Enabled: true,
			Metadata: &requests.BranchingMetadata{
				Type: branching.MetadataTypeParentBranching,
				OptionMappingsWithIndices: map[string]requests.OptionBinding{
					// Stale IDs from an older revision, indices still valid.
					"Yes": {IDs: []string{"gone-1"}, Indices: []int{1}},
					"No":  {IDs: []string{"gone-2"}, Indices: []int{2}},
				},
			},
		}

		logic, err := usecase.AttachLogic(context.Background(), repo.questionnaire.ID.Hex(), "parent", request)
		require.NoError(t, err)

		assert.Equal(t, []string{"child-a"}, logic.Metadata.OptionMappings["Yes"])
		assert.Equal(t, []string{"child-b"}, logic.Metadata.OptionMappings["No"])
	})

	t.Run("rejects parent branching on a text question", func(t *testing.T) {
		repo := newFakeRepository(
			branching.Question{ID: "q1", Type: branching.QuestionTypeText, Text: "Q1"},
			branching.Question{ID: "q2", Type: branching.QuestionTypeText, Text: "Q2"},
		)
		usecase := NewLogicUsecase(repo)

		request := &requests.ConditionalLogic{
			Enabled:  true,
			Metadata: &requests.BranchingMetadata{Type: branching.MetadataTypeParentBranching},
		}

		_, err := usecase.AttachLogic(context.Background(), repo.questionnaire.ID.Hex(), "q1", request)
		require.Error(t, err)
		assert.Contains(t, err.(*exceptions.CustomError).DevMessage, "does not support branching")
	})

	t.Run("unknown question", func(t *testing.T) {
		repo := newFakeRepository(
			branching.Question{ID: "q1", Type: branching.QuestionTypeText, Text: "Q1"},
		)
		usecase := NewLogicUsecase(repo)

		_, err := usecase.AttachLogic(context.Background(), repo.questionnaire.ID.Hex(), "missing", &requests.ConditionalLogic{})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, err.(*exceptions.CustomError).StatusCode)
	})

	t.Run("unknown questionnaire", func(t *testing.T) {
		repo := newFakeRepository()
		usecase := NewLogicUsecase(repo)

		_, err := usecase.AttachLogic(context.Background(), primitive.NewObjectID().Hex(), "q1", &requests.ConditionalLogic{})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestLogicUsecase_ValidateLogic(t *testing.T) {
	repo := newFakeRepository(
		branching.Question{ID: "q1", Type: branching.QuestionTypeMCQ, Text: "Q1", Options: []string{"Yes", "No"}},
		branching.Question{ID: "q2", Type: branching.QuestionTypeText, Text: "Q2"},
	)
	usecase := NewLogicUsecase(repo)

	t.Run("collects errors in rule order without persisting", func(t *testing.T) {
		request := &requests.ConditionalLogic{
			Enabled: true,
			Rules: []requests.ConditionalRule{
				{Operator: branching.OperatorEquals, Value: requests.StringList{"Yes"}},
				{SourceQuestionID: "q1", Operator: branching.OperatorEquals},
			},
		}

		result, err := usecase.ValidateLogic(context.Background(), repo.questionnaire.ID.Hex(), "q2", request)
		require.NoError(t, err)

		assert.False(t, result.Valid)
		assert.Equal(t, []string{
			"Condition 1: Please select a source question",
			"Condition 2: Please enter a value",
		}, result.Errors)
		assert.Nil(t, repo.updated, "dry-run must not persist")
	})

	t.Run("valid logic yields empty error list", func(t *testing.T) {
		request := &requests.ConditionalLogic{
			Enabled: true,
			Rules: []requests.ConditionalRule{
				{SourceQuestionID: "q1", Operator: branching.OperatorEquals, Value: requests.StringList{"Yes"}},
			},
		}

		result, err := usecase.ValidateLogic(context.Background(), repo.questionnaire.ID.Hex(), "q2", request)
		require.NoError(t, err)

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})
}

func TestLogicUsecase_ListCandidates(t *testing.T) {
	t.Run("excludes earlier questions and children claimed by another parent", func(t *testing.T) {
		claimingParent := branching.Question{
			ID: "other-parent", Type: branching.QuestionTypeMCQ, Text: "Other", Options: []string{"A"},
			Logic: &branching.ConditionalLogic{
				ID: "l-other", Enabled: true, Action: branching.ActionShow, Combinator: branching.CombinatorAnd,
				Metadata: &branching.BranchingMetadata{
					Type:           branching.MetadataTypeParentBranching,
					OptionMappings: map[string][]string{"A": {"claimed"}},
				},
			},
		}

		repo := newFakeRepository(
			branching.Question{ID: "before", Type: branching.QuestionTypeText, Text: "Before"},
			claimingParent,
			branching.Question{ID: "owner", Type: branching.QuestionTypeMCQ, Text: "Owner", Options: []string{"Yes", "No"}},
			branching.Question{ID: "claimed", Type: branching.QuestionTypeText, Text: "Claimed"},
			branching.Question{ID: "free", Type: branching.QuestionTypeText, Text: "Free"},
		)
		usecase := NewLogicUsecase(repo)

		candidates, err := usecase.ListCandidates(context.Background(), repo.questionnaire.ID.Hex(), "owner")
		require.NoError(t, err)

		require.Len(t, candidates, 1)
		assert.Equal(t, "free", candidates[0].ID)
		assert.Equal(t, 5, candidates[0].Position)
	})
}

func TestLogicUsecase_DetachLogic(t *testing.T) {
	repo := newFakeRepository(
		branching.Question{
			ID: "q1", Type: branching.QuestionTypeMCQ, Text: "Q1", Options: []string{"Yes"},
			Logic: branching.NewConditionalLogic(),
		},
	)
	usecase := NewLogicUsecase(repo)

	err := usecase.DetachLogic(context.Background(), repo.questionnaire.ID.Hex(), "q1")
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.updated.Questions[0].Logic)
}

func TestLogicUsecase_PreviewLogic(t *testing.T) {
	repo := newFakeRepository(
		branching.Question{ID: "q1", Type: branching.QuestionTypeMCQ, Text: "Q1", Options: []string{"Yes", "No"}},
		branching.Question{
			ID: "q2", Type: branching.QuestionTypeText, Text: "Q2",
			Logic: &branching.ConditionalLogic{
				ID: "l1", Enabled: true, Action: branching.ActionShow, Combinator: branching.CombinatorAnd,
				Rules: []branching.ConditionalRule{
					{ID: "r1", SourceQuestionID: "q1", Operator: branching.OperatorEquals, Values: []string{"Yes"}},
				},
			},
		},
	)
	usecase := NewLogicUsecase(repo)

	t.Run("rule based preview", func(t *testing.T) {
		result, err := usecase.PreviewLogic(context.Background(), repo.questionnaire.ID.Hex(), "q2")
		require.NoError(t, err)
		assert.Equal(t, "Show this question when Q1 equals 'Yes'", result.Preview)
	})

	t.Run("no logic", func(t *testing.T) {
		result, err := usecase.PreviewLogic(context.Background(), repo.questionnaire.ID.Hex(), "q1")
		require.NoError(t, err)
		assert.Equal(t, "Always shown", result.Preview)
	})
}
