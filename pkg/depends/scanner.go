package depends

import (
	"fmt"
	"iter"

	"github.com/arthur-debert/pkgdeps/pkg/linktypes"
	"github.com/arthur-debert/pkgdeps/pkg/logging"
	"github.com/arthur-debert/pkgdeps/pkg/output"
	"github.com/arthur-debert/pkgdeps/pkg/repository"
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// Result summarizes a finished invocation
type Result struct {
	// Target is the queried package name
	Target string

	// Count is the number of matching links
	Count int

	// Matches holds every matching link in scan order
	Matches []types.Match

	// Dependents lists the pretty names of depending packages, once each,
	// in first-seen order
	Dependents []string
}

// Found reports whether at least one link matched
func (r Result) Found() bool {
	return r.Count > 0
}

// Invocation carries the state of one query across the repositories it
// scans. It must not be reused for another query.
type Invocation struct {
	target    string
	linkTypes []types.LinkType
	verbose   bool
	sink      output.Sink

	reported   map[string]struct{}
	dependents []string
	matches    []types.Match
}

// NewInvocation prepares a query for target. linkTypes must come from
// linktypes.Normalize or linktypes.Known.
func NewInvocation(target string, linkTypes []types.LinkType, verbose bool, sink output.Sink) *Invocation {
	return &Invocation{
		target:    target,
		linkTypes: append([]types.LinkType(nil), linkTypes...),
		verbose:   verbose,
		sink:      sink,
		reported:  make(map[string]struct{}),
	}
}

// Scan walks repo and reports its matches. It returns the number of
// matching links found in repo.
func (inv *Invocation) Scan(repo repository.Repository) int {
	log := logging.GetLogger("depends.Invocation")

	before := len(inv.matches)
	repo.FilterPackages(func(pkg *types.Package) bool {
		eachMatch(inv.target, inv.linkTypes, pkg, func(m types.Match) bool {
			inv.report(m)
			return true
		})
		return true
	})

	found := len(inv.matches) - before
	log.Debug().
		Str("repository", repo.Name()).
		Str("target", inv.target).
		Int("matches", found).
		Msg("Scanned repository")
	return found
}

func (inv *Invocation) report(m types.Match) {
	inv.matches = append(inv.matches, m)

	_, seen := inv.reported[m.SourceName]
	if !seen {
		inv.reported[m.SourceName] = struct{}{}
		inv.dependents = append(inv.dependents, m.PrettyName)
	}

	switch {
	case inv.verbose:
		inv.sink.Writeln(VerboseLine(m))
	case !seen:
		inv.sink.Writeln(TerseLine(m))
	}
}

// Count returns the number of matching links so far
func (inv *Invocation) Count() int {
	return len(inv.matches)
}

// Found reports whether any link matched so far
func (inv *Invocation) Found() bool {
	return len(inv.matches) > 0
}

// Result returns a snapshot of the invocation
func (inv *Invocation) Result() Result {
	return Result{
		Target:     inv.target,
		Count:      len(inv.matches),
		Matches:    append([]types.Match(nil), inv.matches...),
		Dependents: append([]string(nil), inv.dependents...),
	}
}

// Scan runs a single invocation over one package sequence
func Scan(target string, linkTypes []types.LinkType, packages []*types.Package, verbose bool, sink output.Sink) Result {
	inv := NewInvocation(target, linkTypes, verbose, sink)
	inv.Scan(repository.NewArrayRepository("packages", packages...))
	return inv.Result()
}

// Matches yields every link of the selected types that points at target, in
// scan order. Stopping the iteration early stops the traversal.
func Matches(target string, linkTypes []types.LinkType, packages []*types.Package) iter.Seq[types.Match] {
	return func(yield func(types.Match) bool) {
		for _, pkg := range packages {
			if !eachMatch(target, linkTypes, pkg, yield) {
				return
			}
		}
	}
}

// eachMatch calls yield for every matching link of pkg and reports whether
// the traversal should continue
func eachMatch(target string, linkTypes []types.LinkType, pkg *types.Package, yield func(types.Match) bool) bool {
	for _, lt := range linkTypes {
		for _, link := range linktypes.AccessorFor(lt)(pkg) {
			if link.Target != target {
				continue
			}
			m := types.NewMatch(pkg, link)
			m.LinkType = lt
			if !yield(m) {
				return false
			}
		}
	}
	return true
}

// TerseLine formats a match for terse output
func TerseLine(m types.Match) string {
	return output.Escape(m.PrettyName)
}

// VerboseLine formats a match for verbose output. Package data is escaped
// so it never carries markup.
func VerboseLine(m types.Match) string {
	return fmt.Sprintf("%s %s <info>%s</info> %s",
		output.Escape(m.PrettyName), output.Escape(m.PrettyVersion), m.LinkType, output.Escape(m.PrettyConstraint))
}

// NoDependentsLine is written when a query matched nothing
func NoDependentsLine(target string) string {
	return fmt.Sprintf(`<info>There is no installed package depending on "%s".</info>`, output.Escape(target))
}
