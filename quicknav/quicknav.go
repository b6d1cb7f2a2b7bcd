// Package quicknav adapts annotation and revision attribute ranges into
// navigable search results with human-readable labels, for "jump to next
// comment/revision" style navigation.
package quicknav

import (
	"fmt"

	"github.com/tsawler/wordfields"
	"github.com/tsawler/wordfields/annotate"
	"github.com/tsawler/wordfields/uia"
)

// Direction of a scan relative to the starting position.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Item is a navigable search result wrapping a sub-range and a label.
type Item interface {
	Range() *wordfields.Range
	Label() string
}

// RevisionItem is a tracked-change run. The label classifies the change by
// which annotation type is present on the run.
type RevisionItem struct {
	rng   *wordfields.Range
	types []int
}

// revisionWanted is the set of annotation type ids accepted as revisions.
var revisionWanted = map[int]bool{
	uia.AnnotationInsertionChange: true,
	uia.AnnotationDeletionChange:  true,
	uia.AnnotationTrackChanges:    true,
}

// Range implements Item.
func (i *RevisionItem) Range() *wordfields.Range { return i.rng }

// Label implements Item.
func (i *RevisionItem) Label() string {
	text := i.rng.Text()
	switch {
	case containsType(i.types, uia.AnnotationInsertionChange):
		return fmt.Sprintf("insertion: %s", text)
	case containsType(i.types, uia.AnnotationDeletionChange):
		return fmt.Sprintf("deletion: %s", text)
	default:
		return fmt.Sprintf("track change: %s", text)
	}
}

// CommentItem is a commented run; its label carries the comment metadata.
type CommentItem struct {
	rng *wordfields.Range
}

var commentWanted = map[int]bool{
	uia.AnnotationComment: true,
}

// Range implements Item.
func (i *CommentItem) Range() *wordfields.Range { return i.rng }

// Label implements Item.
func (i *CommentItem) Label() string {
	info, ok := annotate.LookupComment(i.rng.Host())
	if !ok {
		return i.rng.Text()
	}
	return annotate.FormatCommentInfo(info)
}

// Kind selects which items a scan yields.
type Kind int

const (
	Revisions Kind = iota
	Comments
)

// Scan walks the document's annotation-type attribute runs and returns the
// items of the requested kind on the requested side of from, nearest
// first. A nil from scans the whole document.
func Scan(doc *wordfields.Document, kind Kind, from *wordfields.Range, dir Direction) []Item {
	wanted := revisionWanted
	if kind == Comments {
		wanted = commentWanted
	}
	var items []Item
	for _, run := range doc.Host().AttributeRuns(uia.AttrAnnotationTypes) {
		types := annotationTypes(run.Value)
		matched := intersect(types, wanted)
		if len(matched) == 0 {
			continue
		}
		if from != nil && !onSide(run.Range, from.Host(), dir) {
			continue
		}
		rng := doc.Wrap(run.Range)
		if kind == Comments {
			items = append(items, &CommentItem{rng: rng})
		} else {
			items = append(items, &RevisionItem{rng: rng, types: matched})
		}
	}
	if dir == Previous {
		reverse(items)
	}
	return items
}

// annotationTypes widens the host's attribute value, which may be a single
// id or a list, into a slice of ids.
func annotationTypes(v any) []int {
	switch t := v.(type) {
	case int:
		return []int{t}
	case []int:
		return t
	case []any:
		out := make([]int, 0, len(t))
		for _, x := range t {
			if id, ok := x.(int); ok {
				out = append(out, id)
			}
		}
		return out
	}
	return nil
}

func intersect(types []int, wanted map[int]bool) []int {
	var out []int
	for _, t := range types {
		if wanted[t] {
			out = append(out, t)
		}
	}
	return out
}

func containsType(types []int, id int) bool {
	for _, t := range types {
		if t == id {
			return true
		}
	}
	return false
}

// onSide reports whether run lies strictly after (Next) or before
// (Previous) the reference position.
func onSide(run, ref uia.TextRange, dir Direction) bool {
	if dir == Next {
		return run.CompareEndpoints(uia.EndpointStart, ref, uia.EndpointStart) > 0
	}
	return run.CompareEndpoints(uia.EndpointStart, ref, uia.EndpointStart) < 0
}

func reverse(items []Item) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
