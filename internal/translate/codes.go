package translate

import "github.com/alexiusacademia/gostral/internal/solver"

// ParseRestraints decodes a support restraint code into per-DOF
// restraint flags. Position k of the code maps to DOF k in
// [Dx,Dy,Dz,Rx,Ry,Rz] order; 'T' (case-insensitive) restrains the DOF,
// any other character leaves it free. Codes shorter than 6 characters
// restrain nothing.
//
// Common codes: "TTTTTT" fixed, "TTTFFF" pinned, "TTFFFF" roller,
// "FFFFFF" free.
func ParseRestraints(code string) solver.Restraints {
	if len(code) < 6 {
		return solver.Restraints{}
	}
	restrained := func(i int) bool { return code[i] == 'T' || code[i] == 't' }
	return solver.Restraints{
		DX: restrained(0),
		DY: restrained(1),
		DZ: restrained(2),
		RX: restrained(3),
		RY: restrained(4),
		RZ: restrained(5),
	}
}

// ParseReleases decodes a member end fixity code into per-DOF release
// flags. Position k of the code maps to DOF k in [Dx,Dy,Dz,Rx,Ry,Rz]
// order; 'R' (case-insensitive) releases the DOF, any other character
// keeps it fixed. Codes shorter than 6 characters yield no releases and
// ok=false. This is a different encoding from support restraint codes.
func ParseReleases(code string) (rel solver.Releases, ok bool) {
	if len(code) < 6 {
		return solver.Releases{}, false
	}
	released := func(i int) bool { return code[i] == 'R' || code[i] == 'r' }
	return solver.Releases{
		Dx: released(0),
		Dy: released(1),
		Dz: released(2),
		Rx: released(3),
		Ry: released(4),
		Rz: released(5),
	}, true
}
