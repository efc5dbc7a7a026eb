package names

import "namefully/src/internal/config"

// Index maps token positions of a flat 2-5 token list to roles; -1 marks an
// unused role.
type Index struct {
	Prefix     int
	FirstName  int
	MiddleName int
	LastName   int
	Suffix     int
}

// BaseIndex is the two-token, first-name-first layout.
func BaseIndex() Index { return Index{-1, 0, -1, 1, -1} }

var (
	firstNameFirst = map[int]Index{
		2: {-1, 0, -1, 1, -1},
		3: {-1, 0, 1, 2, -1},
		4: {0, 1, 2, 3, -1},
		5: {0, 1, 2, 3, 4},
	}
	lastNameFirst = map[int]Index{
		2: {-1, 1, -1, 0, -1},
		3: {-1, 1, 2, 0, -1},
		4: {0, 2, 3, 1, -1},
		5: {0, 2, 3, 1, 4},
	}
)

// IndexFor looks up the layout for count tokens in the given order. Counts
// outside 2-5 fall back to BaseIndex.
func IndexFor(order config.Order, count int) Index {
	table := firstNameFirst
	if order == config.ByLastName {
		table = lastNameFirst
	}
	if idx, ok := table[count]; ok {
		return idx
	}
	return BaseIndex()
}

// Positions returns the role-to-position view of the index.
func (i Index) Positions() map[Namon]int {
	return map[Namon]int{
		PrefixKind:     i.Prefix,
		FirstNameKind:  i.FirstName,
		MiddleNameKind: i.MiddleName,
		LastNameKind:   i.LastName,
		SuffixKind:     i.Suffix,
	}
}
