package branching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRule(t *testing.T) {
	questions := []Question{
		{ID: "color", Type: QuestionTypeMCQ, Options: []string{"red", "blue"}},
		{ID: "score", Type: QuestionTypeNumber},
		{ID: "multi", Type: QuestionTypeMulti, Options: []string{"a", "b", "c"}},
		{ID: "letter", Type: QuestionTypeText},
		{ID: "optional", Type: QuestionTypeText},
	}
	answers := Answers{
		"color":  {"red"},
		"score":  {"7"},
		"multi":  {"a", "b"},
		"letter": {"abcdef"},
	}

	t.Run("Equals", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "color", Operator: OperatorEquals, Values: []string{"red"}}
		assert.True(t, EvaluateRule(rule, answers, questions))

		rule.Values = []string{"blue"}
		assert.False(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Equals Matches Any Of Multiple Values", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "color", Operator: OperatorEquals, Values: []string{"blue", "red"}}
		assert.True(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Multi Select Intersection", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "multi", Operator: OperatorEquals, Values: []string{"b"}}
		assert.True(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Not Equals", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "color", Operator: OperatorNotEquals, Values: []string{"blue"}}
		assert.True(t, EvaluateRule(rule, answers, questions))

		rule.Values = []string{"red"}
		assert.False(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Contains", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "letter", Operator: OperatorContains, Values: []string{"cde"}}
		assert.True(t, EvaluateRule(rule, answers, questions))

		rule.Operator = OperatorNotContains
		assert.False(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Numeric Comparison", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "score", Operator: OperatorGreaterThan, Values: []string{"5"}}
		assert.True(t, EvaluateRule(rule, answers, questions))

		rule.Operator = OperatorLessThan
		assert.False(t, EvaluateRule(rule, answers, questions))

		rule.Operator = OperatorGreaterOrEqual
		rule.Values = []string{"7"}
		assert.True(t, EvaluateRule(rule, answers, questions))

		rule.Operator = OperatorLessOrEqual
		assert.True(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Numeric Comparison On Text Fails Closed", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "color", Operator: OperatorGreaterThan, Values: []string{"5"}}
		assert.False(t, EvaluateRule(rule, answers, questions))

		rule = ConditionalRule{SourceQuestionID: "score", Operator: OperatorGreaterThan, Values: []string{"lots"}}
		assert.False(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Is Answered And Is Empty", func(t *testing.T) {
		assert.True(t, EvaluateRule(ConditionalRule{SourceQuestionID: "color", Operator: OperatorIsAnswered}, answers, questions))
		assert.False(t, EvaluateRule(ConditionalRule{SourceQuestionID: "optional", Operator: OperatorIsAnswered}, answers, questions))
		assert.True(t, EvaluateRule(ConditionalRule{SourceQuestionID: "optional", Operator: OperatorIsEmpty}, answers, questions))
	})

	t.Run("Deleted Source Fails Closed", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "deleted", Operator: OperatorEquals, Values: []string{"x"}}
		assert.False(t, EvaluateRule(rule, answers, questions))

		// An unanswered-but-existing source satisfies is_empty; a source that
		// no longer exists must not.
		rule = ConditionalRule{SourceQuestionID: "deleted", Operator: OperatorIsEmpty}
		assert.False(t, EvaluateRule(rule, answers, questions))

		rule.Operator = OperatorIsAnswered
		assert.False(t, EvaluateRule(rule, answers, questions))
	})

	t.Run("Unknown Operator Fails Closed", func(t *testing.T) {
		rule := ConditionalRule{SourceQuestionID: "color", Operator: "matches_regex", Values: []string{".*"}}
		assert.False(t, EvaluateRule(rule, answers, questions))
	})
}

func TestEvaluateLogic(t *testing.T) {
	questions := []Question{
		{ID: "src", Type: QuestionTypeMCQ, Options: []string{"yes", "no"}},
		{ID: "gated", Type: QuestionTypeText},
	}
	answers := Answers{"src": {"yes"}}
	ruleTrue := ConditionalRule{SourceQuestionID: "src", Operator: OperatorEquals, Values: []string{"yes"}}
	ruleFalse := ConditionalRule{SourceQuestionID: "src", Operator: OperatorEquals, Values: []string{"no"}}

	t.Run("Nil Logic Visible", func(t *testing.T) {
		assert.True(t, EvaluateLogic(nil, answers, questions))
	})

	t.Run("Empty Rules Visible", func(t *testing.T) {
		logic := &ConditionalLogic{Enabled: true, Action: ActionShow, Combinator: CombinatorAnd}
		assert.True(t, EvaluateLogic(logic, answers, questions))
	})

	t.Run("Disabled Logic Visible", func(t *testing.T) {
		logic := &ConditionalLogic{Enabled: false, Action: ActionShow, Combinator: CombinatorAnd, Rules: []ConditionalRule{ruleFalse}}
		assert.True(t, EvaluateLogic(logic, answers, questions))
	})

	t.Run("AND Combinator", func(t *testing.T) {
		logic := &ConditionalLogic{Enabled: true, Action: ActionShow, Combinator: CombinatorAnd, Rules: []ConditionalRule{ruleTrue, ruleFalse}}
		assert.False(t, EvaluateLogic(logic, answers, questions))
	})

	t.Run("OR Combinator", func(t *testing.T) {
		logic := &ConditionalLogic{Enabled: true, Action: ActionShow, Combinator: CombinatorOr, Rules: []ConditionalRule{ruleTrue, ruleFalse}}
		assert.True(t, EvaluateLogic(logic, answers, questions))
	})

	t.Run("Hide Action Inverts", func(t *testing.T) {
		logic := &ConditionalLogic{Enabled: true, Action: ActionHide, Combinator: CombinatorAnd, Rules: []ConditionalRule{ruleTrue}}
		assert.False(t, EvaluateLogic(logic, answers, questions))

		logic.Rules = []ConditionalRule{ruleFalse}
		assert.True(t, EvaluateLogic(logic, answers, questions))
	})
}

func branchingParent(id string, options []string, bindings map[string]OptionBinding) Question {
	return Question{
		ID:      id,
		Type:    QuestionTypeMCQ,
		Options: options,
		Logic: &ConditionalLogic{
			ID:      "logic-" + id,
			Enabled: true,
			Action:  ActionShow,
			Metadata: &BranchingMetadata{
				Type:                      MetadataTypeParentBranching,
				OptionMappingsWithIndices: bindings,
			},
		},
	}
}

func TestVisibleQuestions(t *testing.T) {
	t.Run("Parent Branching Reveal Flips With Answer", func(t *testing.T) {
		questions := []Question{
			branchingParent("p", []string{"Yes", "No"}, map[string]OptionBinding{
				"Yes": {IDs: []string{"q1"}, Indices: []int{1}},
				"No":  {IDs: []string{"q2"}, Indices: []int{2}},
			}),
			{ID: "q1", Type: QuestionTypeText},
			{ID: "q2", Type: QuestionTypeText},
		}

		visible := VisibleQuestions(questions, Answers{"p": {"Yes"}})
		assert.True(t, visible["p"])
		assert.True(t, visible["q1"])
		assert.False(t, visible["q2"])

		visible = VisibleQuestions(questions, Answers{"p": {"No"}})
		assert.False(t, visible["q1"])
		assert.True(t, visible["q2"])
	})

	t.Run("Unmapped Option Reveals Nothing", func(t *testing.T) {
		questions := []Question{
			branchingParent("q0", []string{"A", "B"}, map[string]OptionBinding{
				"A": {IDs: []string{"q1"}, Indices: []int{1}},
			}),
			{ID: "q1", Type: QuestionTypeText},
			{ID: "q2", Type: QuestionTypeText},
		}

		visible := VisibleQuestions(questions, Answers{"q0": {"A"}})
		assert.True(t, visible["q1"])
		assert.False(t, visible["q2"])

		visible = VisibleQuestions(questions, Answers{"q0": {"B"}})
		assert.False(t, visible["q1"])
		assert.False(t, visible["q2"])
	})

	t.Run("Multi Select Parent Unions Selected Options", func(t *testing.T) {
		questions := []Question{
			branchingParent("p", []string{"A", "B", "C"}, map[string]OptionBinding{
				"A": {Indices: []int{1}},
				"B": {Indices: []int{2}},
				"C": {Indices: []int{3}},
			}),
			{ID: "q1", Type: QuestionTypeText},
			{ID: "q2", Type: QuestionTypeText},
			{ID: "q3", Type: QuestionTypeText},
		}
		questions[0].Type = QuestionTypeMulti

		visible := VisibleQuestions(questions, Answers{"p": {"A", "C"}})

		assert.True(t, visible["q1"])
		assert.False(t, visible["q2"])
		assert.True(t, visible["q3"])
	})

	t.Run("Hidden Parent Reveals Nothing", func(t *testing.T) {
		// p1 is a branch child of p0 and is not revealed, so its own
		// mapping must not reveal q2.
		questions := []Question{
			branchingParent("p0", []string{"Yes", "No"}, map[string]OptionBinding{
				"Yes": {Indices: []int{1}},
			}),
			branchingParent("p1", []string{"A"}, map[string]OptionBinding{
				"A": {Indices: []int{1}},
			}),
			{ID: "q2", Type: QuestionTypeText},
		}

		visible := VisibleQuestions(questions, Answers{"p0": {"No"}, "p1": {"A"}})

		assert.False(t, visible["p1"])
		assert.False(t, visible["q2"])
	})

	t.Run("Nested Branching Chain", func(t *testing.T) {
		questions := []Question{
			branchingParent("p0", []string{"Yes", "No"}, map[string]OptionBinding{
				"Yes": {Indices: []int{1}},
			}),
			branchingParent("p1", []string{"A"}, map[string]OptionBinding{
				"A": {Indices: []int{1}},
			}),
			{ID: "q2", Type: QuestionTypeText},
		}

		visible := VisibleQuestions(questions, Answers{"p0": {"Yes"}, "p1": {"A"}})

		assert.True(t, visible["p1"])
		assert.True(t, visible["q2"])
	})

	t.Run("Advanced Rules Gate Their Owner", func(t *testing.T) {
		questions := []Question{
			{ID: "q1", Type: QuestionTypeMCQ, Options: []string{"Yes", "No"}},
			withRule(Question{ID: "q2", Type: QuestionTypeText}, "q1"),
		}

		visible := VisibleQuestions(questions, Answers{})
		assert.False(t, visible["q2"])

		visible = VisibleQuestions(questions, Answers{"q1": {"Yes"}})
		assert.True(t, visible["q2"])
	})

	t.Run("Rule On Deleted Source Hides Its Owner", func(t *testing.T) {
		questions := []Question{
			{ID: "q1", Type: QuestionTypeText},
			{
				ID: "gated", Type: QuestionTypeText,
				Logic: &ConditionalLogic{
					ID: "l1", Enabled: true, Action: ActionShow, Combinator: CombinatorAnd,
					Rules: []ConditionalRule{
						{ID: "r1", SourceQuestionID: "ghost", Operator: OperatorIsEmpty},
					},
				},
			},
		}

		assert.False(t, VisibleQuestions(questions, Answers{})["gated"])
		assert.False(t, IsQuestionVisible("gated", questions, Answers{}))
	})

	t.Run("Evaluation Is Idempotent", func(t *testing.T) {
		questions := []Question{
			branchingParent("p", []string{"Yes"}, map[string]OptionBinding{
				"Yes": {Indices: []int{1}},
			}),
			{ID: "q1", Type: QuestionTypeText},
		}
		answers := Answers{"p": {"Yes"}}

		first := VisibleQuestions(questions, answers)
		second := VisibleQuestions(questions, answers)

		assert.Equal(t, first, second)
	})
}

func TestIsQuestionVisible(t *testing.T) {
	questions := []Question{
		branchingParent("p", []string{"Yes"}, map[string]OptionBinding{
			"Yes": {Indices: []int{1}},
		}),
		{ID: "q1", Type: QuestionTypeText},
	}

	t.Run("Known Question", func(t *testing.T) {
		assert.False(t, IsQuestionVisible("q1", questions, Answers{}))
		assert.True(t, IsQuestionVisible("q1", questions, Answers{"p": {"Yes"}}))
	})

	t.Run("Unknown Question Defaults Visible", func(t *testing.T) {
		assert.True(t, IsQuestionVisible("ghost", questions, Answers{}))
	})
}
