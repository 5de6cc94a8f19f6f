package branching

// ReconcileOptionMappings resolves a stored option mapping against the
// current question list, healing the identifier drift a backend round-trip
// may introduce. Relative indices are resolved first against the owner's
// current unclaimed child list; identifier matching is the fallback, used
// per option only when no stored index resolves for it. Entries neither
// representation can resolve are dropped. Positional resolution survives
// identifier reassignment, which is why it is strictly preferred.
func ReconcileOptionMappings(ownerID string, meta *BranchingMetadata, questions []Question) map[string][]string {
	resolved := map[string][]string{}
	if meta == nil {
		return resolved
	}

	children := ChildCandidates(questions, ownerID)
	childIDs := map[string]bool{}
	for _, c := range children {
		childIDs[c.ID] = true
	}

	if len(meta.OptionMappingsWithIndices) > 0 {
		for option, binding := range meta.OptionMappingsWithIndices {
			ids := resolveBinding(binding, children, childIDs)
			if len(ids) > 0 {
				resolved[option] = ids
			}
		}
		return resolved
	}

	// Legacy shape: identifiers only.
	for option, mapped := range meta.OptionMappings {
		ids := []string{}
		for _, id := range mapped {
			if childIDs[id] {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			resolved[option] = ids
		}
	}
	return resolved
}

// RebindOptionMappings recaptures a parent's option mapping from current
// question positions at save time. Incoming child identifiers anchor the
// author's intent: an index captured before a question was inserted between
// parent and child is stale the moment the reordered list is saved, so
// indices are consulted only when no incoming identifier survives in the
// owner's child list. Both representations are rewritten from the resolved
// children, keeping the persisted dual encoding internally consistent.
func RebindOptionMappings(ownerID string, meta *BranchingMetadata, questions []Question) {
	if meta == nil {
		return
	}

	children := ChildCandidates(questions, ownerID)
	relByID := map[string]int{}
	for i, c := range children {
		relByID[c.ID] = i + 1
	}

	bindings := meta.OptionMappingsWithIndices
	if len(bindings) == 0 {
		// Legacy shape: capture the dual encoding from the stored identifiers.
		bindings = map[string]OptionBinding{}
		for option, ids := range meta.OptionMappings {
			bindings[option] = OptionBinding{IDs: ids}
		}
	}

	rebound := map[string]OptionBinding{}
	mappings := map[string][]string{}
	for option, binding := range bindings {
		ids := []string{}
		for _, id := range binding.IDs {
			if _, ok := relByID[id]; ok {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			for _, rel := range binding.Indices {
				if rel >= 1 && rel-1 < len(children) {
					ids = append(ids, children[rel-1].ID)
				}
			}
		}
		if len(ids) == 0 {
			continue
		}

		indices := make([]int, 0, len(ids))
		for _, id := range ids {
			indices = append(indices, relByID[id])
		}
		rebound[option] = OptionBinding{IDs: ids, Indices: indices}
		mappings[option] = ids
	}

	meta.OptionMappingsWithIndices = rebound
	meta.OptionMappings = mappings
}

func resolveBinding(binding OptionBinding, children []Question, childIDs map[string]bool) []string {
	ids := []string{}
	for _, rel := range binding.Indices {
		if rel >= 1 && rel-1 < len(children) {
			ids = append(ids, children[rel-1].ID)
		}
	}
	if len(ids) > 0 {
		return ids
	}

	for _, id := range binding.IDs {
		if childIDs[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
