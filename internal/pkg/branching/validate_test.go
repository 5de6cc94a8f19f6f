package branching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRules(t *testing.T) {
	questions := []Question{
		{ID: "a", Type: QuestionTypeMCQ, Options: []string{"Yes", "No"}},
		{ID: "b", Type: QuestionTypeText},
	}

	t.Run("Missing Source Question", func(t *testing.T) {
		rules := []ConditionalRule{
			{ID: "r1", Operator: OperatorEquals, Values: []string{"Yes"}},
		}

		errs := ValidateRules("b", rules, questions)

		assert.Equal(t, []string{"Condition 1: Please select a source question"}, errs)
	})

	t.Run("Missing Required Value", func(t *testing.T) {
		rules := []ConditionalRule{
			{ID: "r1", SourceQuestionID: "a", Operator: OperatorEquals},
		}

		errs := ValidateRules("b", rules, questions)

		assert.Equal(t, []string{"Condition 1: Please enter a value"}, errs)
	})

	t.Run("Blank Values Count As Missing", func(t *testing.T) {
		rules := []ConditionalRule{
			{ID: "r1", SourceQuestionID: "a", Operator: OperatorEquals, Values: []string{""}},
		}

		errs := ValidateRules("b", rules, questions)

		assert.Equal(t, []string{"Condition 1: Please enter a value"}, errs)
	})

	t.Run("Value Less Operator Needs No Value", func(t *testing.T) {
		rules := []ConditionalRule{
			{ID: "r1", SourceQuestionID: "a", Operator: OperatorIsAnswered},
		}

		errs := ValidateRules("b", rules, questions)

		assert.Empty(t, errs)
	})

	t.Run("Circular Dependency", func(t *testing.T) {
		cyclic := []Question{
			withRule(Question{ID: "a", Type: QuestionTypeText}, "b"),
			{ID: "b", Type: QuestionTypeText},
		}
		rules := []ConditionalRule{
			{ID: "r1", SourceQuestionID: "a", Operator: OperatorIsAnswered},
		}

		errs := ValidateRules("b", rules, cyclic)

		assert.Equal(t, []string{"Condition 1: Circular dependency detected"}, errs)
	})

	t.Run("Errors Reported In Rule Order", func(t *testing.T) {
		rules := []ConditionalRule{
			{ID: "r1", Operator: OperatorEquals, Values: []string{"Yes"}},
			{ID: "r2", SourceQuestionID: "a", Operator: OperatorEquals},
		}

		errs := ValidateRules("b", rules, questions)

		assert.Equal(t, []string{
			"Condition 1: Please select a source question",
			"Condition 2: Please enter a value",
		}, errs)
	})

	t.Run("Valid Rules", func(t *testing.T) {
		rules := []ConditionalRule{
			{ID: "r1", SourceQuestionID: "a", Operator: OperatorEquals, Values: []string{"Yes"}},
		}

		assert.Empty(t, ValidateRules("b", rules, questions))
	})
}

func TestValidateParentBranching(t *testing.T) {
	t.Run("Choice Question Supported", func(t *testing.T) {
		owner := Question{ID: "p", Type: QuestionTypeMCQ, Options: []string{"A", "B"}}

		assert.Empty(t, ValidateParentBranching(owner))
	})

	t.Run("Boolean Has Implicit Options", func(t *testing.T) {
		owner := Question{ID: "p", Type: QuestionTypeBoolean}

		assert.Empty(t, ValidateParentBranching(owner))
	})

	t.Run("Text Question Rejected", func(t *testing.T) {
		owner := Question{ID: "p", Type: QuestionTypeText}

		errs := ValidateParentBranching(owner)

		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0], "does not support branching")
	})

	t.Run("Choice Question Without Options Rejected", func(t *testing.T) {
		owner := Question{ID: "p", Type: QuestionTypeMCQ}

		assert.Len(t, ValidateParentBranching(owner), 1)
	})
}

func TestValidateLogic(t *testing.T) {
	t.Run("Nil Logic Is Valid", func(t *testing.T) {
		owner := Question{ID: "q", Type: QuestionTypeText}

		assert.Empty(t, ValidateLogic(owner, nil, nil))
	})

	t.Run("Parent Branching Mode Checks Owner Type", func(t *testing.T) {
		owner := Question{ID: "q", Type: QuestionTypeText}
		logic := &ConditionalLogic{
			Enabled:  true,
			Metadata: &BranchingMetadata{Type: MetadataTypeParentBranching},
		}

		assert.Len(t, ValidateLogic(owner, logic, nil), 1)
	})
}
