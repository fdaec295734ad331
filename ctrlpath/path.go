// Package ctrlpath implements the control-path model shared by the Liu
// and SBD solvers: a small tagged union over stem, bud, open-walk, and
// closed-walk, plus edge enumeration and textual form for the
// annotated-graph output mode.
//
// A bud may reference the stem it is attached to for presentation, but
// the reference is a non-owning index into the owning solver's path
// list, never a pointer into another path's storage — see spec.md §9
// ("bud-to-stem attachment as a weak reference"). Ownership of every
// path's backing storage belongs to the solver that produced it;
// this package only holds the vertex sequence and tag.
package ctrlpath

import (
	"fmt"
	"strings"
)

// Kind tags which of the four concrete path shapes a Path represents,
// mirroring the small White/Gray/Black constant-set style lvlath/dfs
// uses for traversal state.
type Kind int

const (
	// Stem is a directed chain of matched edges rooted at a driver.
	Stem Kind = iota
	// Bud is a directed cycle of matched edges, optionally attached to a
	// stem.
	Bud
	// OpenWalk is an SBD trail with distinct endpoints.
	OpenWalk
	// ClosedWalk is an SBD trail that returns to its starting vertex.
	ClosedWalk
)

// String renders the textual form spec.md's annotated-graph output mode
// uses for the path_type edge attribute.
func (k Kind) String() string {
	switch k {
	case Stem:
		return "stem"
	case Bud:
		return "bud"
	case OpenWalk:
		return "open walk"
	case ClosedWalk:
		return "closed walk"
	default:
		return "unknown"
	}
}

// noAttachment is the sentinel "no attached stem" value for
// Path.AttachedStem.
const noAttachment = -1

// Path is one control path: an ordered vertex sequence plus its Kind.
//
// Vertices holds the path in traversal order. For a Bud, Vertices is the
// cycle without a repeated closing vertex (v0...v(k-1)); the implicit
// closing edge is v(k-1)->v0.
//
// AttachedStem is a non-owning index into the owning solver's path list
// identifying the stem a Bud is attached to, or noAttachment if the bud
// stands alone. It is meaningless for every other Kind.
type Path struct {
	Kind         Kind
	Vertices     []int
	AttachedStem int
}

// NewStem returns a Stem over the given vertex sequence.
func NewStem(vertices []int) *Path {
	return &Path{Kind: Stem, Vertices: vertices, AttachedStem: noAttachment}
}

// NewBud returns an unattached Bud over the given cycle vertices.
func NewBud(vertices []int) *Path {
	return &Path{Kind: Bud, Vertices: vertices, AttachedStem: noAttachment}
}

// NewOpenWalk returns an OpenWalk over the given vertex sequence.
func NewOpenWalk(vertices []int) *Path {
	return &Path{Kind: OpenWalk, Vertices: vertices, AttachedStem: noAttachment}
}

// NewClosedWalk returns a ClosedWalk over the given vertex sequence.
func NewClosedWalk(vertices []int) *Path {
	return &Path{Kind: ClosedWalk, Vertices: vertices, AttachedStem: noAttachment}
}

// AttachToStem records that p (a Bud) is attached to the stem at index
// stemIndex within the owning solver's path list. It is the caller's
// responsibility to only call this on a Bud.
func (p *Path) AttachToStem(stemIndex int) {
	p.AttachedStem = stemIndex
}

// IsAttached reports whether a Bud has an attached stem.
func (p *Path) IsAttached() bool {
	return p.AttachedStem != noAttachment
}

// Root returns the path's entry vertex (the driver-node end for a Stem;
// an arbitrary cycle vertex for a Bud).
func (p *Path) Root() int {
	return p.Vertices[0]
}

// Tip returns the path's terminal vertex. For Stem and OpenWalk this is
// the last element; Bud and ClosedWalk have no distinguished tip so this
// returns the last element of Vertices as a representative endpoint.
func (p *Path) Tip() int {
	return p.Vertices[len(p.Vertices)-1]
}

// NeedsInputSignal reports whether this path requires its own
// independent input signal, per spec.md's glossary: every Stem and
// OpenWalk does; a Bud needs one only if unattached; a ClosedWalk never
// does (SBD's balanced-component driver already accounts for it).
func (p *Path) NeedsInputSignal() bool {
	switch p.Kind {
	case Stem, OpenWalk:
		return true
	case Bud:
		return !p.IsAttached()
	case ClosedWalk:
		return false
	default:
		return false
	}
}

// Edges enumerates the directed edges (as vertex pairs) this path
// traverses, in order. A Bud and a ClosedWalk include the closing edge
// back to the first vertex; a Stem and an OpenWalk do not.
func (p *Path) Edges() [][2]int {
	n := len(p.Vertices)
	if n == 0 {
		return nil
	}
	closed := p.Kind == Bud || p.Kind == ClosedWalk
	count := n - 1
	if closed {
		count = n
	}
	if count <= 0 {
		return nil
	}
	edges := make([][2]int, count)
	for i := 0; i < count; i++ {
		edges[i] = [2]int{p.Vertices[i], p.Vertices[(i+1)%n]}
	}
	return edges
}

// String renders a human-readable form: "<kind> [v0 v1 ... vk]".
func (p *Path) String() string {
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%s [%s]", p.Kind, strings.Join(parts, " "))
}
