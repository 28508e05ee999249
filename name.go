package tsym

import "strings"

// Name is the immutable identifier of §3: a user-visible base string plus
// an optional subscript decoration, with equality and a total order.
type Name struct {
	Base string
	Sub  string
}

// NewName returns an undecorated name.
func NewName(base string) Name { return Name{Base: base} }

// NewDecoratedName returns a name with a subscript, e.g. x_1.
func NewDecoratedName(base, sub string) Name { return Name{Base: base, Sub: sub} }

func (n Name) String() string {
	if n.Sub == "" {
		return n.Base
	}
	return n.Base + "_" + n.Sub
}

func (n Name) Equal(o Name) bool { return n.Base == o.Base && n.Sub == o.Sub }

// Compare gives the total order on names used by §4.4 rule 2.
func (n Name) Compare(o Name) int {
	if c := strings.Compare(n.Base, o.Base); c != 0 {
		return c
	}
	return strings.Compare(n.Sub, o.Sub)
}

func (n Name) Less(o Name) bool { return n.Compare(o) < 0 }
