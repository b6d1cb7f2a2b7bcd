// Package uia defines the narrow surface of the UI Automation host API that
// the rest of this module depends on. The host is treated as a black box:
// it supplies text ranges over a document's linear text model, structural
// elements, attribute values, and annotation metadata. Implementations are
// expected to be local, synchronous calls; the library tolerates hosts that
// return inconsistent or duplicated structural data.
package uia

import "errors"

// ErrNotSupported is returned when the host does not support a requested
// attribute or property on the given object.
var ErrNotSupported = errors.New("uia: not supported")

// TextUnit identifies a unit of text movement or expansion.
type TextUnit int

const (
	UnitCharacter TextUnit = iota
	UnitWord
	UnitLine
	UnitParagraph
	UnitDocument
)

// String returns the lowercase name of the unit.
func (u TextUnit) String() string {
	switch u {
	case UnitCharacter:
		return "character"
	case UnitWord:
		return "word"
	case UnitLine:
		return "line"
	case UnitParagraph:
		return "paragraph"
	case UnitDocument:
		return "document"
	}
	return "unknown"
}

// Endpoint selects one end of a text range.
type Endpoint int

const (
	EndpointStart Endpoint = iota
	EndpointEnd
)

// TextRange is a handle denoting a span (or point, when collapsed) within a
// document's linear text model. Start is never after End. Handles are scoped
// resources: callers acquire them per operation and must not cache them
// across calls.
type TextRange interface {
	// Clone returns an independent copy of the range.
	Clone() TextRange

	// GetText returns up to maxLength characters of the raw range text.
	// A negative maxLength returns the entire text.
	GetText(maxLength int) (string, error)

	// Move shifts the range by count units and returns the number of units
	// actually moved. Zero means the host boundary was reached.
	Move(unit TextUnit, count int) int

	// MoveEndpoint shifts a single endpoint by count units and returns the
	// number of units actually moved.
	MoveEndpoint(ep Endpoint, unit TextUnit, count int) int

	// ExpandToEnclosingUnit grows the range to cover the enclosing unit.
	// Hosts are known to fail this silently in some positions; callers must
	// check the resulting span.
	ExpandToEnclosingUnit(unit TextUnit)

	// Collapse shrinks the range to a point at its start, or at its end
	// when toEnd is true.
	Collapse(toEnd bool)

	// CompareEndpoints returns a negative, zero, or positive value as the
	// chosen endpoint of this range is before, at, or after the chosen
	// endpoint of other.
	CompareEndpoints(ep Endpoint, other TextRange, otherEp Endpoint) int

	// SetEndpoint moves the chosen endpoint of this range to the chosen
	// endpoint of other.
	SetEndpoint(ep Endpoint, other TextRange, otherEp Endpoint)

	// GetAttributeValue returns the value of a text attribute over the
	// range, or ErrNotSupported.
	GetAttributeValue(attr AttributeID) (any, error)

	// Children returns the structural elements contained in the range, in
	// document order.
	Children() []Element

	// EnclosingElement returns the deepest element that contains the whole
	// range, or nil.
	EnclosingElement() Element
}

// Element is a node in the host's accessibility tree.
type Element interface {
	// Property returns a cached property value, reporting false when the
	// host does not expose it on this element.
	Property(id PropertyID) (any, bool)

	// Parent returns the parent element, or nil at the root.
	Parent() Element

	// PreviousSibling returns the preceding sibling, or nil.
	PreviousSibling() Element

	// Children returns the child elements in document order.
	Children() []Element

	// TextRange returns the range spanning the element's content, or nil
	// when the element exposes no text.
	TextRange() TextRange
}

// Document is the root handle for one open document.
type Document interface {
	// DocumentRange returns a range spanning the entire document.
	DocumentRange() TextRange

	// CaretRange returns a collapsed range at the caret.
	CaretRange() TextRange

	// AttributeRuns returns the contiguous runs of the given text attribute
	// across the whole document, in document order.
	AttributeRuns(attr AttributeID) []AttributeRun
}

// AttributeRun is one contiguous span over which a text attribute holds a
// single value.
type AttributeRun struct {
	Range TextRange
	Value any
}

// ScreenLocator is optionally implemented by TextRange handles that can
// report the screen coordinates of their start.
type ScreenLocator interface {
	PointAtStart() (x, y int, ok bool)
}

// LegacyLocator is optionally implemented by Document hosts that expose the
// application's own object model for position-to-location queries.
type LegacyLocator interface {
	LocationTextAt(x, y int) (string, bool)
}
