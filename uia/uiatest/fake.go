package uiatest

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tsawler/wordfields/uia"
)

// Doc is an in-memory document implementing uia.Document. Offsets are rune
// offsets into the document text.
type Doc struct {
	runes []rune
	root  *Node
	runs  map[uia.AttributeID][]Run
	caret int

	// BrokenLineExpand reproduces the Word bug where expanding to a line
	// fails silently, leaving the range collapsed.
	BrokenLineExpand bool

	// LegacyLocation, when set, makes the document answer legacy
	// location-text queries.
	LegacyLocation func(x, y int) (string, bool)
}

// Run is one attribute run over [Start, End).
type Run struct {
	Start, End int
	Value      any
}

// NewDoc creates a document over the given text.
func NewDoc(text string) *Doc {
	return &Doc{
		runes: []rune(text),
		runs:  make(map[uia.AttributeID][]Run),
	}
}

// Text returns the full document text.
func (d *Doc) Text() string { return string(d.runes) }

// Len returns the document length in runes.
func (d *Doc) Len() int { return len(d.runes) }

// SetRoot installs the element tree and wires parent links.
func (d *Doc) SetRoot(root *Node) {
	d.root = root
	wire(root, nil, d)
}

// SetCaret places the caret at a rune offset.
func (d *Doc) SetCaret(pos int) { d.caret = clamp(pos, 0, len(d.runes)) }

// AddRun records an attribute run.
func (d *Doc) AddRun(attr uia.AttributeID, start, end int, value any) {
	d.runs[attr] = append(d.runs[attr], Run{Start: start, End: end, Value: value})
}

// Range returns a range over [start, end).
func (d *Doc) Range(start, end int) *Range {
	start = clamp(start, 0, len(d.runes))
	end = clamp(end, start, len(d.runes))
	return &Range{doc: d, start: start, end: end}
}

// DocumentRange implements uia.Document.
func (d *Doc) DocumentRange() uia.TextRange { return d.Range(0, len(d.runes)) }

// CaretRange implements uia.Document.
func (d *Doc) CaretRange() uia.TextRange { return d.Range(d.caret, d.caret) }

// AttributeRuns implements uia.Document.
func (d *Doc) AttributeRuns(attr uia.AttributeID) []uia.AttributeRun {
	var out []uia.AttributeRun
	for _, r := range d.runs[attr] {
		out = append(out, uia.AttributeRun{Range: d.Range(r.Start, r.End), Value: r.Value})
	}
	return out
}

// LocationTextAt implements uia.LegacyLocator when LegacyLocation is set.
func (d *Doc) LocationTextAt(x, y int) (string, bool) {
	if d.LegacyLocation == nil {
		return "", false
	}
	return d.LegacyLocation(x, y)
}

func wire(n *Node, parent *Node, d *Doc) {
	n.parent = parent
	n.doc = d
	for _, k := range n.Kids {
		wire(k, n, d)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Node is an element in the fake tree. Start and End are the rune span of
// the node's content.
type Node struct {
	Props      map[uia.PropertyID]any
	Start, End int
	Kids       []*Node

	doc    *Doc
	parent *Node
}

// NewNode builds a node over [start, end) with the given properties.
func NewNode(start, end int, props map[uia.PropertyID]any, kids ...*Node) *Node {
	if props == nil {
		props = make(map[uia.PropertyID]any)
	}
	return &Node{Props: props, Start: start, End: end, Kids: kids}
}

// Property implements uia.Element.
func (n *Node) Property(id uia.PropertyID) (any, bool) {
	v, ok := n.Props[id]
	return v, ok
}

// Parent implements uia.Element.
func (n *Node) Parent() uia.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// PreviousSibling implements uia.Element.
func (n *Node) PreviousSibling() uia.Element {
	if n.parent == nil {
		return nil
	}
	for i, k := range n.parent.Kids {
		if k == n {
			if i == 0 {
				return nil
			}
			return n.parent.Kids[i-1]
		}
	}
	return nil
}

// Children implements uia.Element.
func (n *Node) Children() []uia.Element {
	out := make([]uia.Element, len(n.Kids))
	for i, k := range n.Kids {
		out[i] = k
	}
	return out
}

// TextRange implements uia.Element.
func (n *Node) TextRange() uia.TextRange {
	if n.doc == nil {
		return nil
	}
	return n.doc.Range(n.Start, n.End)
}

// Registrar is a fake annotation-type registration service. It hands out
// sequential ids starting at 60100 and is idempotent per guid.
type Registrar struct {
	mu    sync.Mutex
	next  int
	ids   map[uuid.UUID]int
	Calls int
	Err   error
}

// NewRegistrar creates a fake registrar.
func NewRegistrar() *Registrar {
	return &Registrar{next: 60100, ids: make(map[uuid.UUID]int)}
}

// RegisterAnnotationType implements uia.Registrar.
func (r *Registrar) RegisterAnnotationType(guid uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return 0, r.Err
	}
	if id, ok := r.ids[guid]; ok {
		return id, nil
	}
	id := r.next
	r.next++
	r.ids[guid] = id
	return id, nil
}
