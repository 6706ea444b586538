package results

import "math"

// MemberSummary is the condensed per-member view of a results walk:
// strong-axis moment, in-plane shear and axial extremes.
type MemberSummary struct {
	MaxMoment float64
	MinMoment float64
	MaxShear  float64
	MinShear  float64
	MaxAxial  float64
	MinAxial  float64
}

// Summary is the translator's results walk over every (element,
// combination) pair. Outer keys are element identifiers, inner keys are
// combination names. Warnings records members whose extraction failed
// and was replaced with an all-zero placeholder.
type Summary struct {
	Combos []string

	Displacements map[string]map[string]NodalDisplacement
	Reactions     map[string]map[string]NodalReaction
	Members       map[string]map[string]MemberSummary

	Warnings []string
}

// NewSummary returns an empty summary for the given combinations.
func NewSummary(combos []string) *Summary {
	return &Summary{
		Combos:        append([]string(nil), combos...),
		Displacements: map[string]map[string]NodalDisplacement{},
		Reactions:     map[string]map[string]NodalReaction{},
		Members:       map[string]map[string]MemberSummary{},
	}
}

// Combinations returns the combination names the summary covers.
func (s *Summary) Combinations() []string {
	return append([]string(nil), s.Combos...)
}

// NodalDisplacement returns the displacement record for one node and
// combination.
func (s *Summary) NodalDisplacement(node, combo string) (NodalDisplacement, bool) {
	byCombo, ok := s.Displacements[node]
	if !ok {
		return NodalDisplacement{}, false
	}
	d, ok := byCombo[combo]
	return d, ok
}

// MemberResult returns the member summary for one member and combination.
func (s *Summary) MemberResult(member, combo string) (MemberSummary, bool) {
	byCombo, ok := s.Members[member]
	if !ok {
		return MemberSummary{}, false
	}
	m, ok := byCombo[combo]
	return m, ok
}

// MaxDisplacementByCombo returns the largest translational displacement
// magnitude across all nodes for one combination, and the node carrying
// it.
func (s *Summary) MaxDisplacementByCombo(combo string) (node string, magnitude float64) {
	for id, byCombo := range s.Displacements {
		d, ok := byCombo[combo]
		if !ok {
			continue
		}
		mag := d.Displacement.Magnitude()
		if node == "" || mag > magnitude {
			node, magnitude = id, mag
		}
	}
	return node, magnitude
}

// MaxMemberMomentByCombo returns the largest absolute strong-axis moment
// across all members for one combination, and the member carrying it.
func (s *Summary) MaxMemberMomentByCombo(combo string) (member string, moment float64) {
	for id, byCombo := range s.Members {
		m, ok := byCombo[combo]
		if !ok {
			continue
		}
		abs := math.Max(math.Abs(m.MaxMoment), math.Abs(m.MinMoment))
		if member == "" || abs > moment {
			member, moment = id, abs
		}
	}
	return member, moment
}
