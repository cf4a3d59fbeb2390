package completion

import (
	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/lister"
)

// Separator is appended to directory candidates.
const Separator = "/"

// Candidate is one suggestion for the host to show.
type Candidate struct {
	Label      string
	Kind       lister.Kind
	InsertText string
	// Continue asks the host to reopen completion right after inserting the
	// candidate, so the user can keep drilling into directories.
	Continue bool
}

// Synthesize turns listed entries into candidates, one per entry, in order.
func Synthesize(entries []lister.Entry) []Candidate {
	candidates := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		if e.Kind == lister.KindDirectory {
			candidates = append(candidates, Candidate{
				Label:      e.Name + Separator,
				Kind:       lister.KindDirectory,
				InsertText: e.Name + Separator,
				Continue:   true,
			})
			continue
		}
		candidates = append(candidates, Candidate{
			Label:      e.Name,
			Kind:       lister.KindFile,
			InsertText: e.Name,
		})
	}
	return candidates
}
