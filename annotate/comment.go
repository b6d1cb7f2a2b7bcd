// Package annotate retrieves comment and revision metadata from the host's
// annotation object graph, and owns the process-wide registry of custom
// annotation type ids.
package annotate

import (
	"fmt"

	"github.com/tsawler/wordfields/internal/diag"
	"github.com/tsawler/wordfields/uia"
)

// CommentInfo describes one comment. It is constructed per lookup and
// never persisted. Date is empty when the host did not expose one.
type CommentInfo struct {
	Comment string
	Author  string
	Date    string
}

// commentStrategy is one way of reading comment metadata off an annotation
// element. Strategies are tried in a fixed order; each returns a definite
// found/absent answer.
type commentStrategy struct {
	name   string
	lookup func(el uia.Element) (CommentInfo, bool)
}

// commentStrategies is the fallback policy for comment extraction: prefer
// the explicitly typed annotation element, then the positional sibling
// walk used by hosts that predate explicit annotation typing.
var commentStrategies = []commentStrategy{
	{name: "typed", lookup: typedComment},
	{name: "siblingWalk", lookup: siblingComment},
}

// LookupComment fetches information about the comment located at the given
// position. The second return value is false when no comment annotation is
// present or accessible there; that is a normal outcome, not an error.
func LookupComment(pos uia.TextRange) (CommentInfo, bool) {
	val, err := pos.GetAttributeValue(uia.AttrAnnotationObjects)
	if err != nil || val == nil {
		return CommentInfo{}, false
	}
	elements, ok := val.([]uia.Element)
	if !ok {
		return CommentInfo{}, false
	}
	for _, el := range elements {
		for _, strat := range commentStrategies {
			if info, ok := strat.lookup(el); ok {
				lg := diag.Logger()
				lg.Debug().Str("strategy", strat.name).Msg("comment resolved")
				return info, true
			}
		}
	}
	return CommentInfo{}, false
}

// typedComment reads metadata off an element whose annotation type is
// explicitly Comment.
func typedComment(el uia.Element) (CommentInfo, bool) {
	v, ok := el.Property(uia.PropAnnotationTypeID)
	if !ok {
		return CommentInfo{}, false
	}
	typeID, ok := v.(int)
	if !ok || typeID != uia.AnnotationComment {
		return CommentInfo{}, false
	}
	info := CommentInfo{
		Comment: uia.Name(el),
		Author:  propString(el, uia.PropAnnotationAuthor),
		Date:    propString(el, uia.PropAnnotationDateTime),
	}
	return info, true
}

// siblingComment recovers comment metadata positionally on hosts without
// explicit annotation typing. The element's name is language sensitive, so
// the parent must expose the annotation pattern instead; the comment body
// is the element's own text, the author sits two siblings back, and the
// date one back when both siblings exist. With a single sibling the walk
// degrades to comment and author only.
func siblingComment(el uia.Element) (CommentInfo, bool) {
	parent := el.Parent()
	if parent == nil || !uia.BoolProperty(parent, uia.PropIsAnnotationPatternAvailable) {
		return CommentInfo{}, false
	}
	tr := el.TextRange()
	if tr == nil {
		return CommentInfo{}, false
	}
	body, err := tr.GetText(-1)
	if err != nil {
		return CommentInfo{}, false
	}
	info := CommentInfo{Comment: body}
	prev := el.PreviousSibling()
	if prev == nil {
		return info, true
	}
	prev2 := prev.PreviousSibling()
	if prev2 == nil {
		info.Author = uia.Name(prev)
		return info, true
	}
	info.Author = uia.Name(prev2)
	info.Date = uia.Name(prev)
	return info, true
}

// FormatCommentInfo renders a comment for presentation.
func FormatCommentInfo(info CommentInfo) string {
	if info.Date == "" {
		return fmt.Sprintf("Comment: %s by %s", info.Comment, info.Author)
	}
	return fmt.Sprintf("Comment: %s by %s on %s", info.Comment, info.Author, info.Date)
}

func propString(el uia.Element, id uia.PropertyID) string {
	v, ok := el.Property(id)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
