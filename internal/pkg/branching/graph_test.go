package branching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withRule(ownerless Question, sourceID string) Question {
	ownerless.Logic = &ConditionalLogic{
		ID:         "logic-test",
		Enabled:    true,
		Action:     ActionShow,
		Combinator: CombinatorAnd,
		Rules: []ConditionalRule{
			{ID: "rule-test", SourceQuestionID: sourceID, Operator: OperatorIsAnswered},
		},
	}
	return ownerless
}

func TestDetectCircularDependency(t *testing.T) {
	t.Run("Self Reference", func(t *testing.T) {
		questions := []Question{{ID: "q1", Type: QuestionTypeText}}

		assert.True(t, DetectCircularDependency("q1", "q1", questions))
	})

	t.Run("Direct Cycle", func(t *testing.T) {
		// A already depends on B; adding B -> A closes A -> B -> A.
		questions := []Question{
			withRule(Question{ID: "a", Type: QuestionTypeText}, "b"),
			{ID: "b", Type: QuestionTypeText},
		}

		assert.True(t, DetectCircularDependency("b", "a", questions))
	})

	t.Run("Transitive Cycle", func(t *testing.T) {
		questions := []Question{
			withRule(Question{ID: "a", Type: QuestionTypeText}, "b"),
			withRule(Question{ID: "b", Type: QuestionTypeText}, "c"),
			{ID: "c", Type: QuestionTypeText},
		}

		assert.True(t, DetectCircularDependency("c", "a", questions))
	})

	t.Run("Linear Chain Passes", func(t *testing.T) {
		questions := []Question{
			{ID: "a", Type: QuestionTypeText},
			withRule(Question{ID: "b", Type: QuestionTypeText}, "a"),
			withRule(Question{ID: "c", Type: QuestionTypeText}, "b"),
			withRule(Question{ID: "d", Type: QuestionTypeText}, "c"),
		}

		assert.False(t, DetectCircularDependency("d", "a", questions))
		assert.False(t, DetectCircularDependency("d", "b", questions))
		assert.False(t, DetectCircularDependency("d", "c", questions))
	})

	t.Run("Terminates On Malformed Cyclic Data", func(t *testing.T) {
		// b and c already reference each other; the traversal must not loop.
		questions := []Question{
			withRule(Question{ID: "b", Type: QuestionTypeText}, "c"),
			withRule(Question{ID: "c", Type: QuestionTypeText}, "b"),
			{ID: "d", Type: QuestionTypeText},
		}

		assert.False(t, DetectCircularDependency("d", "b", questions))
	})

	t.Run("Missing Source Question", func(t *testing.T) {
		questions := []Question{{ID: "a", Type: QuestionTypeText}}

		assert.False(t, DetectCircularDependency("a", "deleted", questions))
	})
}

func TestClaimedPositions(t *testing.T) {
	parent := Question{
		ID:      "p",
		Type:    QuestionTypeMCQ,
		Options: []string{"Yes", "No"},
		Logic: &ConditionalLogic{
			ID:      "logic-p",
			Enabled: true,
			Action:  ActionShow,
			Metadata: &BranchingMetadata{
				Type: MetadataTypeParentBranching,
				OptionMappingsWithIndices: map[string]OptionBinding{
					"Yes": {IDs: []string{"q2"}, Indices: []int{2}},
				},
			},
		},
	}
	questions := []Question{
		parent,
		{ID: "q1", Type: QuestionTypeText},
		{ID: "q2", Type: QuestionTypeText},
	}

	t.Run("Claim Visible To Other Questions", func(t *testing.T) {
		claimed := ClaimedPositions(questions, "q1")

		assert.True(t, claimed[2])
		assert.False(t, claimed[1])
	})

	t.Run("Owner Claims Excluded", func(t *testing.T) {
		claimed := ClaimedPositions(questions, "p")

		assert.Empty(t, claimed)
	})
}

func TestChildCandidates(t *testing.T) {
	t.Run("Global Exclusivity", func(t *testing.T) {
		// p at position 0 maps the question at position 2; q1's candidate
		// list must exclude it.
		questions := []Question{
			{
				ID:      "p",
				Type:    QuestionTypeMCQ,
				Options: []string{"Yes"},
				Logic: &ConditionalLogic{
					ID:      "logic-p",
					Enabled: true,
					Metadata: &BranchingMetadata{
						Type: MetadataTypeParentBranching,
						OptionMappingsWithIndices: map[string]OptionBinding{
							"Yes": {IDs: []string{"q2"}, Indices: []int{2}},
						},
					},
				},
			},
			{ID: "q1", Type: QuestionTypeMCQ, Options: []string{"A"}},
			{ID: "q2", Type: QuestionTypeText},
			{ID: "q3", Type: QuestionTypeText},
		}

		candidates := ChildCandidates(questions, "q1")

		ids := make([]string, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"q3"}, ids)
	})

	t.Run("Only Later Questions Offered", func(t *testing.T) {
		questions := []Question{
			{ID: "q1", Type: QuestionTypeText},
			{ID: "q2", Type: QuestionTypeMCQ, Options: []string{"A"}},
			{ID: "q3", Type: QuestionTypeText},
		}

		candidates := ChildCandidates(questions, "q2")

		assert.Len(t, candidates, 1)
		assert.Equal(t, "q3", candidates[0].ID)
	})

	t.Run("Unknown Owner", func(t *testing.T) {
		questions := []Question{{ID: "q1", Type: QuestionTypeText}}

		assert.Nil(t, ChildCandidates(questions, "missing"))
	})
}
