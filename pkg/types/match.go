package types

// Match records one link that points at the queried package. Matches are
// produced during a single query and never persisted.
type Match struct {
	// SourceName is the canonical name of the depending package
	SourceName string

	PrettyName       string
	PrettyVersion    string
	LinkType         LinkType
	PrettyConstraint string
}

// NewMatch builds the match record for link declared by pkg
func NewMatch(pkg *Package, link Link) Match {
	return Match{
		SourceName:       pkg.Name,
		PrettyName:       pkg.PrettyName,
		PrettyVersion:    pkg.PrettyVersion,
		LinkType:         link.Type,
		PrettyConstraint: link.PrettyConstraint,
	}
}
