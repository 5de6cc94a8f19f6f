package branching

const (
	OperatorEquals         = "equals"
	OperatorNotEquals      = "not_equals"
	OperatorContains       = "contains"
	OperatorNotContains    = "not_contains"
	OperatorGreaterThan    = "greater_than"
	OperatorLessThan       = "less_than"
	OperatorGreaterOrEqual = "greater_or_equal"
	OperatorLessOrEqual    = "less_or_equal"
	OperatorIsAnswered     = "is_answered"
	OperatorIsEmpty        = "is_empty"
)

type operatorSpec struct {
	Label         string
	RequiresValue bool
	SupportsMulti bool
}

var operatorTable = map[string]operatorSpec{
	OperatorEquals:         {Label: "equals", RequiresValue: true, SupportsMulti: true},
	OperatorNotEquals:      {Label: "does not equal", RequiresValue: true, SupportsMulti: true},
	OperatorContains:       {Label: "contains", RequiresValue: true},
	OperatorNotContains:    {Label: "does not contain", RequiresValue: true},
	OperatorGreaterThan:    {Label: "is greater than", RequiresValue: true},
	OperatorLessThan:       {Label: "is less than", RequiresValue: true},
	OperatorGreaterOrEqual: {Label: "is greater than or equal to", RequiresValue: true},
	OperatorLessOrEqual:    {Label: "is less than or equal to", RequiresValue: true},
	OperatorIsAnswered:     {Label: "is answered"},
	OperatorIsEmpty:        {Label: "is empty"},
}

// GetOperatorLabel returns the display label for an operator. Unknown
// operators map to an empty string; question metadata may come from newer
// product configurations.
func GetOperatorLabel(operator string) string {
	return operatorTable[operator].Label
}

// OperatorRequiresValue reports whether the operator needs a comparison
// value. Total over any input; unknown operators require nothing.
func OperatorRequiresValue(operator string) bool {
	return operatorTable[operator].RequiresValue
}

// OperatorSupportsMultipleValues reports whether the operator accepts a
// value list rather than a single value.
func OperatorSupportsMultipleValues(operator string) bool {
	return operatorTable[operator].SupportsMulti
}

// AvailableOperators returns the operators legal for a question type:
// equality/membership for choice types, text operators for free-text
// types, numeric comparisons for numeric-like types. Unknown types get an
// empty result.
func AvailableOperators(questionType QuestionType) []string {
	switch questionType {
	case QuestionTypeMCQ, QuestionTypeMulti, QuestionTypeBoolean:
		return []string{OperatorEquals, OperatorNotEquals, OperatorIsAnswered, OperatorIsEmpty}
	case QuestionTypeText, QuestionTypeTextarea, QuestionTypeEmail:
		return []string{OperatorEquals, OperatorNotEquals, OperatorContains, OperatorNotContains, OperatorIsAnswered, OperatorIsEmpty}
	case QuestionTypeNumber, QuestionTypeSlider, QuestionTypeRating, QuestionTypeScale:
		return []string{OperatorEquals, OperatorNotEquals, OperatorGreaterThan, OperatorLessThan, OperatorGreaterOrEqual, OperatorLessOrEqual, OperatorIsAnswered, OperatorIsEmpty}
	}
	return []string{}
}
