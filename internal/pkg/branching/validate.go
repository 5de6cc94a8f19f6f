package branching

import "fmt"

// ValidateRules checks the advanced-mode rule list of ownerID against the
// current question list and returns human-readable errors in rule order.
// An empty result means the logic may be persisted.
func ValidateRules(ownerID string, rules []ConditionalRule, questions []Question) []string {
	errs := []string{}

	for i, rule := range rules {
		position := i + 1

		if rule.SourceQuestionID == "" {
			errs = append(errs, fmt.Sprintf("Condition %d: Please select a source question", position))
		}

		if OperatorRequiresValue(rule.Operator) && !hasValue(rule.Values) {
			errs = append(errs, fmt.Sprintf("Condition %d: Please enter a value", position))
		}

		if rule.SourceQuestionID != "" && DetectCircularDependency(ownerID, rule.SourceQuestionID, questions) {
			errs = append(errs, fmt.Sprintf("Condition %d: Circular dependency detected", position))
		}
	}

	return errs
}

// ValidateParentBranching checks whether the owner question may carry a
// parent-branching mapping at all.
func ValidateParentBranching(owner Question) []string {
	if !owner.SupportsBranching() {
		return []string{"This question type does not support branching. Use a multiple-choice, multi-select or yes/no question with options."}
	}
	return []string{}
}

// ValidateLogic validates a logic object in whichever mode it is in.
func ValidateLogic(owner Question, logic *ConditionalLogic, questions []Question) []string {
	if logic == nil {
		return []string{}
	}
	if logic.IsParentBranching() {
		return ValidateParentBranching(owner)
	}
	return ValidateRules(owner.ID, logic.Rules, questions)
}

func hasValue(values []string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}
