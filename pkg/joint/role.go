package joint

// Role says which of two mating edges starts with a tab.
type Role int

const (
	// Male edges start and end with a protruding tab.
	Male Role = iota + 1
	// Female edges start and end with a recessed notch.
	Female
)

func (r Role) String() string {
	switch r {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "invalid"
	}
}

// Complement returns the role of the mating edge.
func (r Role) Complement() Role {
	if r == Male {
		return Female
	}
	return Male
}

// IsOuter reports whether segment i sits at the outer level for this role.
func (r Role) IsOuter(i int) bool {
	return (i%2 == 0) == (r == Male)
}
