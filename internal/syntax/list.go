package syntax

// SeparatedList is a thin view over the alternating item/separator buffer
// produced by parseSeparatedList (§4.C): even indices are items, odd indices
// are separators, both preserved losslessly as TokenOrSyntax.
type SeparatedList struct {
	Elems []TokenOrSyntax
}

// Count returns the number of items (not separators) in the list.
func (l SeparatedList) Count() int {
	if len(l.Elems) == 0 {
		return 0
	}
	return (len(l.Elems) + 1) / 2
}

// Item returns the i'th item (0-based).
func (l SeparatedList) Item(i int) TokenOrSyntax {
	return l.Elems[i*2]
}

// Separator returns the separator following the i'th item, if any.
func (l SeparatedList) Separator(i int) (TokenOrSyntax, bool) {
	idx := i*2 + 1
	if idx >= len(l.Elems) {
		return TokenOrSyntax{}, false
	}
	return l.Elems[idx], true
}
