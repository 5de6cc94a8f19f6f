package branching

import (
	"strconv"
	"strings"
)

// EvaluateRule evaluates one advanced-mode rule against the respondent's
// current answers. Sources no longer present in the question list, empty
// answers and unknown operators all evaluate to false so conditionally
// gated content fails closed; a dangling is_empty rule must not reveal
// anything either.
func EvaluateRule(rule ConditionalRule, answers Answers, questions []Question) bool {
	if indexOfQuestion(questions, rule.SourceQuestionID) < 0 {
		return false
	}

	values := answers[rule.SourceQuestionID]
	answered := hasValue(values)

	switch rule.Operator {
	case OperatorIsAnswered:
		return answered
	case OperatorIsEmpty:
		return !answered
	}

	if !answered {
		return false
	}

	switch rule.Operator {
	case OperatorEquals:
		return anyEqual(values, rule.Values)
	case OperatorNotEquals:
		return !anyEqual(values, rule.Values)
	case OperatorContains:
		return anyContains(values, rule.Values)
	case OperatorNotContains:
		return !anyContains(values, rule.Values)
	case OperatorGreaterThan:
		return compareNumeric(values, rule.Values, func(a, b float64) bool { return a > b })
	case OperatorLessThan:
		return compareNumeric(values, rule.Values, func(a, b float64) bool { return a < b })
	case OperatorGreaterOrEqual:
		return compareNumeric(values, rule.Values, func(a, b float64) bool { return a >= b })
	case OperatorLessOrEqual:
		return compareNumeric(values, rule.Values, func(a, b float64) bool { return a <= b })
	}

	return false
}

// EvaluateLogic decides whether the owner of an advanced-mode logic object
// is visible for the current answers. Disabled logic, an empty rule list
// and parent-branching metadata (whose effect is applied to children, not
// the owner) all mean unconditionally visible.
func EvaluateLogic(logic *ConditionalLogic, answers Answers, questions []Question) bool {
	if logic == nil || !logic.Enabled || logic.IsParentBranching() || len(logic.Rules) == 0 {
		return true
	}

	matched := logic.Combinator != CombinatorOr
	for _, rule := range logic.Rules {
		ok := EvaluateRule(rule, answers, questions)
		if logic.Combinator == CombinatorOr {
			matched = matched || ok
		} else {
			matched = matched && ok
		}
	}

	if logic.Action == ActionHide {
		return !matched
	}
	return matched
}

// VisibleQuestions recomputes the full visibility set from scratch: a pure
// function of the question list and the current answers, re-run on every
// answer change. Advanced rules gate their owner; enabled parent-branching
// questions claim their downstream flow, so questions positioned after a
// branching parent stay hidden unless some currently selected option
// reveals them. Parents hidden by an earlier parent reveal nothing.
func VisibleQuestions(questions []Question, answers Answers) map[string]bool {
	visible := make(map[string]bool, len(questions))
	for _, q := range questions {
		visible[q.ID] = EvaluateLogic(q.Logic, answers, questions)
	}

	controlled := map[string]bool{}
	revealed := map[string]bool{}

	for i, p := range questions {
		if !p.Logic.IsParentBranching() || !p.Logic.Enabled {
			continue
		}
		if !visible[p.ID] || (controlled[p.ID] && !revealed[p.ID]) {
			continue
		}

		resolved := ReconcileOptionMappings(p.ID, p.Logic.Metadata, questions)
		shownByParent := map[string]bool{}
		for _, selected := range answers[p.ID] {
			for _, id := range resolved[selected] {
				shownByParent[id] = true
			}
		}

		invert := p.Logic.Action == ActionHide
		for j := i + 1; j < len(questions); j++ {
			child := questions[j]
			controlled[child.ID] = true
			if shownByParent[child.ID] != invert {
				revealed[child.ID] = true
			}
		}
	}

	for id := range controlled {
		if !revealed[id] {
			visible[id] = false
		}
	}

	return visible
}

// IsQuestionVisible reports whether a single question should currently be
// shown. Unknown question IDs are visible: only attached logic or a
// claiming parent may hide a question.
func IsQuestionVisible(questionID string, questions []Question, answers Answers) bool {
	if indexOfQuestion(questions, questionID) < 0 {
		return true
	}
	return VisibleQuestions(questions, answers)[questionID]
}

func anyEqual(answers, ruleValues []string) bool {
	for _, a := range answers {
		for _, v := range ruleValues {
			if a == v {
				return true
			}
		}
	}
	return false
}

func anyContains(answers, ruleValues []string) bool {
	for _, a := range answers {
		for _, v := range ruleValues {
			if v != "" && strings.Contains(a, v) {
				return true
			}
		}
	}
	return false
}

func compareNumeric(answers, ruleValues []string, cmp func(a, b float64) bool) bool {
	if len(answers) == 0 || len(ruleValues) == 0 {
		return false
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(answers[0]), 64)
	if err != nil {
		return false
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(ruleValues[0]), 64)
	if err != nil {
		return false
	}
	return cmp(a, b)
}
