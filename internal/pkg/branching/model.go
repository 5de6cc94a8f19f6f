package branching

import (
	"fmt"
	"time"
)

type QuestionType string

const (
	QuestionTypeMCQ      QuestionType = "mcq"
	QuestionTypeMulti    QuestionType = "multi"
	QuestionTypeBoolean  QuestionType = "boolean"
	QuestionTypeText     QuestionType = "text"
	QuestionTypeTextarea QuestionType = "textarea"
	QuestionTypeEmail    QuestionType = "email"
	QuestionTypeNumber   QuestionType = "number"
	QuestionTypeSlider   QuestionType = "slider"
	QuestionTypeRating   QuestionType = "rating"
	QuestionTypeScale    QuestionType = "scale"
)

const (
	ActionShow = "show"
	ActionHide = "hide"

	CombinatorAnd = "AND"
	CombinatorOr  = "OR"

	MetadataTypeParentBranching = "parent-branching"
)

// Question is one item of an ordered questionnaire definition. Its position
// in the slice is significant: branching may only reference questions that
// appear strictly before the owner.
type Question struct {
	ID      string            `json:"id" bson:"id"`
	Type    QuestionType      `json:"type" bson:"type"`
	Text    string            `json:"text" bson:"text"`
	Options []string          `json:"options,omitempty" bson:"options,omitempty"`
	Logic   *ConditionalLogic `json:"conditionalLogic,omitempty" bson:"conditionalLogic,omitempty"`
}

// ConditionalLogic is the rule set controlling a question's visibility.
// When Metadata carries the parent-branching type, Rules is not the active
// mechanism; the option mapping is.
type ConditionalLogic struct {
	ID         string             `json:"id" bson:"id"`
	Enabled    bool               `json:"enabled" bson:"enabled"`
	Action     string             `json:"action" bson:"action"`
	Combinator string             `json:"combinator" bson:"combinator"`
	Rules      []ConditionalRule  `json:"rules" bson:"rules"`
	Metadata   *BranchingMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// ConditionalRule is one atomic condition in advanced mode.
type ConditionalRule struct {
	ID               string   `json:"id" bson:"id"`
	SourceQuestionID string   `json:"sourceQuestionId" bson:"sourceQuestionId"`
	Operator         string   `json:"operator" bson:"operator"`
	Values           []string `json:"value" bson:"value"`
}

// BranchingMetadata is the simple-mode (parent-branching) representation:
// an option label maps to the downstream questions it reveals. Identifiers
// are not stable across backend save/reload cycles, so each option also
// stores parent-relative positional offsets captured at save time.
type BranchingMetadata struct {
	Type                      string                   `json:"type" bson:"type"`
	OptionMappings            map[string][]string      `json:"optionMappings,omitempty" bson:"optionMappings,omitempty"`
	OptionMappingsWithIndices map[string]OptionBinding `json:"optionMappingsWithIndices,omitempty" bson:"optionMappingsWithIndices,omitempty"`
}

// OptionBinding is the persisted dual encoding for one option: the absolute
// identifiers observed at save time plus offsets relative to the owner's
// position (always >= 1).
type OptionBinding struct {
	IDs     []string `json:"ids" bson:"ids"`
	Indices []int    `json:"indices" bson:"indices"`
}

// Answers maps a question identifier to the respondent's current answer
// values. Single-valued answers are a one-element slice.
type Answers map[string][]string

// NewConditionalLogic returns the default logic object created when the
// editor is opened for a question without one: enabled, empty rules, no
// metadata.
func NewConditionalLogic() *ConditionalLogic {
	return &ConditionalLogic{
		ID:         NewLogicID(),
		Enabled:    true,
		Action:     ActionShow,
		Combinator: CombinatorAnd,
		Rules:      []ConditionalRule{},
	}
}

// NewLogicID generates a locally unique, timestamp-based identifier for
// logic and rule instances. These IDs are not required to be durable.
func NewLogicID() string {
	return fmt.Sprintf("logic-%d", time.Now().UnixNano())
}

// IsParentBranching reports whether the logic is driven by the simple-mode
// option mapping rather than by its rules.
func (l *ConditionalLogic) IsParentBranching() bool {
	return l != nil && l.Metadata != nil && l.Metadata.Type == MetadataTypeParentBranching
}

// EffectiveOptions returns the answer vocabulary of a choice-like question.
// Boolean questions carry an implicit {Yes, No} pair.
func (q Question) EffectiveOptions() []string {
	if q.Type == QuestionTypeBoolean && len(q.Options) == 0 {
		return []string{"Yes", "No"}
	}
	return q.Options
}

// SupportsBranching reports whether the question may act as a
// parent-branching trigger: choice-like and carrying at least one option.
func (q Question) SupportsBranching() bool {
	switch q.Type {
	case QuestionTypeMCQ, QuestionTypeMulti, QuestionTypeBoolean:
		return len(q.EffectiveOptions()) > 0
	}
	return false
}

func indexOfQuestion(questions []Question, questionID string) int {
	for i, q := range questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}
