package html2richtext

import "github.com/alnah/go-html2richtext/richtext"

// mergeMarks returns the marks a subtree sees when added is introduced below
// an ancestor chain that already carries active. Added marks come first, in
// the order given. A mark type appears once, at its nearest position.
//
// The result never shares a backing array with active when added is
// non-empty, so siblings cannot observe each other's marks.
func mergeMarks(added, active []richtext.Mark) []richtext.Mark {
	if len(added) == 0 {
		return active
	}
	out := make([]richtext.Mark, 0, len(added)+len(active))
	seen := make(map[richtext.MarkType]struct{}, len(added)+len(active))
	for _, group := range [][]richtext.Mark{added, active} {
		for _, m := range group {
			if _, dup := seen[m.Type]; dup {
				continue
			}
			seen[m.Type] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
