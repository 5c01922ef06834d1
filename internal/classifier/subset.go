package classifier

import "fmt"

// Subset names one of the word lists a round can draw from
type Subset int

const (
	NeverTried Subset = iota
	All
	Correct
	Incorrect
)

// String returns the selector label of the subset
func (s Subset) String() string {
	switch s {
	case NeverTried:
		return "neverTriedWords"
	case All:
		return "allWords"
	case Correct:
		return "correctWords"
	case Incorrect:
		return "incorrectWords"
	default:
		return fmt.Sprintf("Subset(%d)", int(s))
	}
}

// Valid reports whether s is one of the four known subsets
func (s Subset) Valid() bool {
	return s >= NeverTried && s <= Incorrect
}

// Subsets returns all subsets in selector order
func Subsets() []Subset {
	return []Subset{NeverTried, All, Correct, Incorrect}
}

// SubsetNames returns the selector labels in selector order
func SubsetNames() []string {
	subsets := Subsets()
	names := make([]string, len(subsets))
	for i, s := range subsets {
		names[i] = s.String()
	}
	return names
}

// ParseSubset maps a selector label back to its Subset
func ParseSubset(name string) (Subset, error) {
	for _, s := range Subsets() {
		if s.String() == name {
			return s, nil
		}
	}
	return NeverTried, fmt.Errorf("unknown word list: %q", name)
}
