// Package fields defines the flat field-stream representation of a document
// fragment and the normalizer that corrects known host quirks in it. A
// stream is an ordered sequence of control boundary markers, format-change
// markers, and literal text runs; a speech or braille renderer consumes the
// normalized stream without special-casing the source application.
package fields

import "sort"

// Kind identifies the kind of a field command.
type Kind int

const (
	ControlStart Kind = iota + 1
	ControlEnd
	FormatChange
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case ControlStart:
		return "controlStart"
	case ControlEnd:
		return "controlEnd"
	case FormatChange:
		return "formatChange"
	}
	return "unknown"
}

// Roles carried on control attributes.
const (
	RoleDocument       = "document"
	RoleEditableText   = "editableText"
	RoleEmbeddedObject = "embeddedObject"
	RoleGraphic        = "graphic"
	RoleGrouping       = "grouping"
	RoleHeader         = "header"
	RoleLink           = "link"
	RoleList           = "list"
	RoleListItem       = "listItem"
	RoleTable          = "table"
	RoleText           = "text"
	RoleUnknown        = "unknown"
)

// States carried on control attributes.
const (
	StateReadonly = "readonly"
)

// ControlAttrs is the payload of a controlStart command. A matching
// controlEnd shares the same ControlAttrs value, which is how start/end
// pairs stay associated through rewrites. Attributes the normalizer does
// not interpret ride along in Extra.
type ControlAttrs struct {
	Role        string
	States      map[string]bool
	RuntimeID   string
	PageNumber  string
	Content     string
	Name        string
	Description string

	// StartOfNode and EndOfNode report whether the stream covers the
	// element's own boundaries, as opposed to a slice of its interior.
	StartOfNode bool
	EndOfNode   bool

	// AlwaysReportName forces the renderer to announce Name even when it
	// would normally be suppressed.
	AlwaysReportName bool

	Extra map[string]string
}

// AddState marks a state flag on the control.
func (a *ControlAttrs) AddState(state string) {
	if a.States == nil {
		a.States = make(map[string]bool)
	}
	a.States[state] = true
}

// HasState reports whether a state flag is set.
func (a *ControlAttrs) HasState(state string) bool {
	return a.States[state]
}

// StateList returns the set states in sorted order.
func (a *ControlAttrs) StateList() []string {
	if len(a.States) == 0 {
		return nil
	}
	out := make([]string, 0, len(a.States))
	for s := range a.States {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// FormatAttrs is the payload of a formatChange command.
type FormatAttrs struct {
	// LinePrefix holds text, such as a list bullet, that belongs before
	// the line rather than inside it. LinePrefixSpeakAlways marks it safe
	// to speak every time because it only appears on the first format
	// field of its line.
	LinePrefix            string
	LinePrefixSpeakAlways bool

	PageNumber string
	FontName   string

	Extra map[string]string
}

// Field is one entry in a stream: either a *Command or a Text run.
type Field interface {
	isField()
}

// Text is a literal text run between commands.
type Text string

func (Text) isField() {}

// Command is a control boundary or format change marker.
type Command struct {
	Kind    Kind
	Control *ControlAttrs // ControlStart and ControlEnd
	Format  *FormatAttrs  // FormatChange
}

func (*Command) isField() {}

// Start returns a controlStart command carrying attrs.
func Start(attrs *ControlAttrs) *Command {
	return &Command{Kind: ControlStart, Control: attrs}
}

// EndOf returns the controlEnd command matching a controlStart that carries
// attrs. Passing the same attrs value keeps the pair associated.
func EndOf(attrs *ControlAttrs) *Command {
	return &Command{Kind: ControlEnd, Control: attrs}
}

// Format returns a formatChange command carrying attrs.
func Format(attrs *FormatAttrs) *Command {
	return &Command{Kind: FormatChange, Format: attrs}
}

// Stream is an ordered field sequence. After normalization, controlStart
// and controlEnd nesting is stack-balanced.
type Stream []Field
