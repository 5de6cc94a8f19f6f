package requests

import "qsights-service/internal/pkg/branching"

type ConditionalLogic struct {
	ID         string             `json:"id"`
	Enabled    bool               `json:"enabled"`
	Action     string             `json:"action" validate:"logic_action"`
	Combinator string             `json:"combinator" validate:"logic_combinator"`
	Rules      []ConditionalRule  `json:"rules" validate:"dive"`
	Metadata   *BranchingMetadata `json:"metadata,omitempty"`
}

type ConditionalRule struct {
	ID               string     `json:"id"`
	SourceQuestionID string     `json:"sourceQuestionId"`
	Operator         string     `json:"operator" validate:"required"`
	Value            StringList `json:"value"`
}

type BranchingMetadata struct {
	Type                      string                   `json:"type"`
	OptionMappings            map[string][]string      `json:"optionMappings,omitempty"`
	OptionMappingsWithIndices map[string]OptionBinding `json:"optionMappingsWithIndices,omitempty"`
}

type OptionBinding struct {
	IDs     []string `json:"ids"`
	Indices []int    `json:"indices"`
}

func (l *ConditionalLogic) ToModel() *branching.ConditionalLogic {
	if l == nil {
		return nil
	}

	logic := &branching.ConditionalLogic{
		ID:         l.ID,
		Enabled:    l.Enabled,
		Action:     l.Action,
		Combinator: l.Combinator,
		Rules:      make([]branching.ConditionalRule, 0, len(l.Rules)),
	}
	if logic.ID == "" {
		logic.ID = branching.NewLogicID()
	}
	if logic.Action == "" {
		logic.Action = branching.ActionShow
	}
	if logic.Combinator == "" {
		logic.Combinator = branching.CombinatorAnd
	}

	for _, rule := range l.Rules {
		modelRule := branching.ConditionalRule{
			ID:               rule.ID,
			SourceQuestionID: rule.SourceQuestionID,
			Operator:         rule.Operator,
			Values:           []string(rule.Value),
		}
		if modelRule.ID == "" {
			modelRule.ID = branching.NewLogicID()
		}
		logic.Rules = append(logic.Rules, modelRule)
	}

	if l.Metadata != nil {
		meta := &branching.BranchingMetadata{
			Type:           l.Metadata.Type,
			OptionMappings: l.Metadata.OptionMappings,
		}
		if len(l.Metadata.OptionMappingsWithIndices) > 0 {
			meta.OptionMappingsWithIndices = make(map[string]branching.OptionBinding, len(l.Metadata.OptionMappingsWithIndices))
			for option, binding := range l.Metadata.OptionMappingsWithIndices {
				meta.OptionMappingsWithIndices[option] = branching.OptionBinding{
					IDs:     binding.IDs,
					Indices: binding.Indices,
				}
			}
		}
		logic.Metadata = meta
	}

	return logic
}
