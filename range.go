package wordfields

import (
	"github.com/tsawler/wordfields/fields"
	"github.com/tsawler/wordfields/internal/diag"
	"github.com/tsawler/wordfields/uia"
)

// Range wraps a host text range with the Word-specific workarounds for
// movement, expansion, text extraction, and field fetching.
type Range struct {
	doc  *Document
	host uia.TextRange
}

// Host returns the underlying host range.
func (r *Range) Host() uia.TextRange {
	return r.host
}

// Clone returns an independent copy of the range.
func (r *Range) Clone() *Range {
	return &Range{doc: r.doc, host: r.host.Clone()}
}

// IsCollapsed reports whether the range denotes a single point.
func (r *Range) IsCollapsed() bool {
	return r.host.CompareEndpoints(uia.EndpointStart, r.host, uia.EndpointEnd) == 0
}

// Text returns the cleaned text of the range: vertical tabs become carriage
// returns and end-of-row marks are stripped.
func (r *Range) Text() string {
	t, err := r.host.GetText(-1)
	if err != nil {
		lg := diag.Logger()
		lg.Debug().Err(err).Msg("range text fetch failed")
		return ""
	}
	if t == "" {
		return t
	}
	return CleanText(t)
}

// Move shifts the range by one unit at a time in the given direction and
// returns the result of the initial host move. Positions landing on an
// end-of-row mark are skipped by advancing further in the same direction;
// reaching the host boundary stops the skip without error.
func (r *Range) Move(unit uia.TextUnit, direction int) int {
	res := r.host.Move(unit, direction)
	if res == 0 {
		return 0
	}
	step := 1
	if direction < 0 {
		step = -1
	}
	for r.IsEndOfRow() {
		if r.host.Move(unit, step) == 0 {
			break
		}
	}
	return res
}

// Expand grows the range to the enclosing unit. Word refuses to expand to
// a line on a trailing blank line, leaving the range collapsed; in that
// case the end boundary is extended manually, as far as the document end
// if need be.
func (r *Range) Expand(unit uia.TextUnit) {
	r.host.ExpandToEnclosingUnit(unit)
	if !r.IsCollapsed() {
		return
	}
	if r.host.MoveEndpoint(uia.EndpointEnd, unit, 1) == 0 {
		docRange := r.doc.host.DocumentRange()
		r.host.SetEndpoint(uia.EndpointEnd, docRange, uia.EndpointEnd)
	}
}

// IsEndOfRow reports whether the single character at the range position is
// an end-of-row mark.
func (r *Range) IsEndOfRow() bool {
	c := r.host.Clone()
	c.ExpandToEnclosingUnit(uia.UnitCharacter)
	t, err := c.GetText(-1)
	return err == nil && t == endOfRowMark
}

// LocationText returns a human-readable location description for the range
// start via the application's legacy object model, when the host exposes
// one. Absence of the capability is not an error.
func (r *Range) LocationText() (string, bool) {
	loc, ok := r.host.(uia.ScreenLocator)
	if !ok {
		return "", false
	}
	x, y, ok := loc.PointAtStart()
	if !ok {
		return "", false
	}
	legacy, ok := r.doc.host.(uia.LegacyLocator)
	if !ok {
		return "", false
	}
	s, ok := legacy.LocationTextAt(x, y)
	if !ok {
		lg := diag.Logger()
		lg.Debug().Msg("object model does not support location from point")
		return "", false
	}
	return s, true
}

// Fields fetches the raw field stream for the range and normalizes it.
//
// A non-collapsed range positioned within a blank table cell does not
// report the cell as an enclosing element. The situation is detectable by
// asking for the first two characters of the raw text: an empty string or a
// lone end-of-row mark means the range covers nothing but the empty cell,
// and a collapsed copy fetches the structure correctly.
func (r *Range) Fields() fields.Stream {
	src := r.host
	if !r.IsCollapsed() {
		raw, err := src.GetText(2)
		if err == nil && (raw == "" || raw == endOfRowMark) {
			c := src.Clone()
			c.Collapse(false)
			src = c
		}
	}
	rawFields := translate(r.doc, src)
	if len(rawFields) == 0 {
		// Nothing to do. Probably a collapsed range.
		return rawFields
	}
	return r.doc.norm.Normalize(rawFields)
}
