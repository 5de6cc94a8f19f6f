package branching

import (
	"fmt"
	"sort"
	"strings"
)

// LogicPreviewText renders a one-line human-readable summary of a logic
// object for the editor UI. It has no bearing on evaluation.
func LogicPreviewText(owner Question, logic *ConditionalLogic, questions []Question) string {
	if logic == nil || !logic.Enabled {
		return "Always shown"
	}

	if logic.IsParentBranching() {
		return parentBranchingPreview(owner, logic, questions)
	}

	if len(logic.Rules) == 0 {
		return "Always shown"
	}

	parts := make([]string, 0, len(logic.Rules))
	for _, rule := range logic.Rules {
		parts = append(parts, rulePreview(rule, questions))
	}

	verb := "Show"
	if logic.Action == ActionHide {
		verb = "Hide"
	}
	joiner := " and "
	if logic.Combinator == CombinatorOr {
		joiner = " or "
	}
	return fmt.Sprintf("%s this question when %s", verb, strings.Join(parts, joiner))
}

func rulePreview(rule ConditionalRule, questions []Question) string {
	source := rule.SourceQuestionID
	if idx := indexOfQuestion(questions, rule.SourceQuestionID); idx >= 0 {
		source = fmt.Sprintf("Q%d", idx+1)
	}

	label := GetOperatorLabel(rule.Operator)
	if label == "" {
		label = rule.Operator
	}

	if !OperatorRequiresValue(rule.Operator) {
		return fmt.Sprintf("%s %s", source, label)
	}
	return fmt.Sprintf("%s %s '%s'", source, label, strings.Join(rule.Values, "', '"))
}

func parentBranchingPreview(owner Question, logic *ConditionalLogic, questions []Question) string {
	resolved := ReconcileOptionMappings(owner.ID, logic.Metadata, questions)
	if len(resolved) == 0 {
		return "Branches by answer (no options mapped)"
	}

	options := make([]string, 0, len(resolved))
	for option := range resolved {
		options = append(options, option)
	}
	sort.Strings(options)

	parts := make([]string, 0, len(options))
	for _, option := range options {
		count := len(resolved[option])
		noun := "questions"
		if count == 1 {
			noun = "question"
		}
		parts = append(parts, fmt.Sprintf("'%s' reveals %d %s", option, count, noun))
	}
	return "Branches by answer: " + strings.Join(parts, ", ")
}
