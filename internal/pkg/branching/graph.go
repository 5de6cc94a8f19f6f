package branching

// DetectCircularDependency reports whether making candidateSourceID a rule
// source for ownerID would close a cycle in the depends-on graph implied by
// every question's current rules. A question is never a legal source for
// itself. The traversal tracks visited nodes so malformed, already-cyclic
// data cannot loop forever.
func DetectCircularDependency(ownerID, candidateSourceID string, questions []Question) bool {
	if ownerID == candidateSourceID {
		return true
	}

	visited := map[string]bool{}
	stack := []string{candidateSourceID}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == ownerID {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		idx := indexOfQuestion(questions, current)
		if idx < 0 || questions[idx].Logic == nil {
			continue
		}
		for _, rule := range questions[idx].Logic.Rules {
			if rule.SourceQuestionID != "" {
				stack = append(stack, rule.SourceQuestionID)
			}
		}
	}

	return false
}

// ClaimedPositions returns the absolute positions already claimed as branch
// children by any question's parent-branching mapping, excluding claims
// made by excludeOwnerID. A question claimed by one trigger must not be
// offered as a candidate child to another.
func ClaimedPositions(questions []Question, excludeOwnerID string) map[int]bool {
	claimed := map[int]bool{}

	for ownerIdx, q := range questions {
		if q.ID == excludeOwnerID || !q.Logic.IsParentBranching() {
			continue
		}
		meta := q.Logic.Metadata
		for _, binding := range meta.OptionMappingsWithIndices {
			for _, rel := range binding.Indices {
				if rel >= 1 && ownerIdx+rel < len(questions) {
					claimed[ownerIdx+rel] = true
				}
			}
			for _, id := range binding.IDs {
				if idx := indexOfQuestion(questions, id); idx >= 0 {
					claimed[idx] = true
				}
			}
		}
		for _, ids := range meta.OptionMappings {
			for _, id := range ids {
				if idx := indexOfQuestion(questions, id); idx >= 0 {
					claimed[idx] = true
				}
			}
		}
	}

	return claimed
}

// ChildCandidates returns the questions that ownerID may still claim as
// branch children: strictly after the owner in the sequence and not yet
// claimed by any other question's mapping.
func ChildCandidates(questions []Question, ownerID string) []Question {
	ownerIdx := indexOfQuestion(questions, ownerID)
	if ownerIdx < 0 {
		return nil
	}

	claimed := ClaimedPositions(questions, ownerID)
	candidates := []Question{}
	for i := ownerIdx + 1; i < len(questions); i++ {
		if !claimed[i] {
			candidates = append(candidates, questions[i])
		}
	}
	return candidates
}
