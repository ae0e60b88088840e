package pack

// Longest returns the longest of matches. When several matches have the same
// length, the one with the earliest source wins, so that results don't
// depend on the order a Searcher reports them in.
func Longest(matches []AbsoluteMatch) AbsoluteMatch {
	var longest AbsoluteMatch

	for _, m := range matches {
		switch {
		case m.Length() > longest.Length():
			longest = m
		case m.Length() == longest.Length() && m.Length() > 0 && m.Match < longest.Match:
			longest = m
		}
	}

	return longest
}

// LongestAt is a convenience wrapper that asks s for the matches at pos and
// returns the longest. The cache slice is reused and returned for the next
// call.
func LongestAt(s Searcher, cache []AbsoluteMatch, pos, end int) (AbsoluteMatch, []AbsoluteMatch) {
	cache = s.Search(cache[:0], pos, 0, end)
	return Longest(cache), cache
}
