package uiatest

import "github.com/tsawler/wordfields/uia"

// Range implements uia.TextRange over a Doc. Offsets are rune offsets and
// start is never after end.
type Range struct {
	doc        *Doc
	start, end int
}

// Start returns the start offset. Test helper.
func (r *Range) Start() int { return r.start }

// End returns the end offset. Test helper.
func (r *Range) End() int { return r.end }

// Clone implements uia.TextRange.
func (r *Range) Clone() uia.TextRange {
	c := *r
	return &c
}

// GetText implements uia.TextRange.
func (r *Range) GetText(maxLength int) (string, error) {
	runes := r.doc.runes[r.start:r.end]
	if maxLength >= 0 && len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return string(runes), nil
}

// Move implements uia.TextRange. The range collapses to its start and then
// shifts unit by unit; the signed number of units moved is returned.
func (r *Range) Move(unit uia.TextUnit, count int) int {
	pos := r.start
	moved := 0
	dir := 1
	if count < 0 {
		dir = -1
		count = -count
	}
	for i := 0; i < count; i++ {
		next, ok := r.doc.movePos(pos, unit, dir)
		if !ok {
			break
		}
		pos = next
		moved++
	}
	r.start, r.end = pos, pos
	return moved * dir
}

// MoveEndpoint implements uia.TextRange.
func (r *Range) MoveEndpoint(ep uia.Endpoint, unit uia.TextUnit, count int) int {
	pos := r.start
	if ep == uia.EndpointEnd {
		pos = r.end
	}
	moved := 0
	dir := 1
	if count < 0 {
		dir = -1
		count = -count
	}
	for i := 0; i < count; i++ {
		next, ok := r.doc.movePos(pos, unit, dir)
		if !ok {
			break
		}
		pos = next
		moved++
	}
	if ep == uia.EndpointEnd {
		r.end = pos
		if r.start > r.end {
			r.start = r.end
		}
	} else {
		r.start = pos
		if r.end < r.start {
			r.end = r.start
		}
	}
	return moved * dir
}

// ExpandToEnclosingUnit implements uia.TextRange.
func (r *Range) ExpandToEnclosingUnit(unit uia.TextUnit) {
	d := r.doc
	switch unit {
	case uia.UnitCharacter:
		if r.start < len(d.runes) {
			r.end = r.start + 1
		} else {
			r.end = r.start
		}
	case uia.UnitWord:
		r.start, r.end = d.wordSpan(r.start)
	case uia.UnitLine, uia.UnitParagraph:
		if d.BrokenLineExpand {
			// Word's bug: expansion to line fails silently, leaving
			// the range untouched.
			return
		}
		r.start, r.end = d.lineSpan(r.start)
	case uia.UnitDocument:
		r.start, r.end = 0, len(d.runes)
	}
}

// Collapse implements uia.TextRange.
func (r *Range) Collapse(toEnd bool) {
	if toEnd {
		r.start = r.end
	} else {
		r.end = r.start
	}
}

// CompareEndpoints implements uia.TextRange.
func (r *Range) CompareEndpoints(ep uia.Endpoint, other uia.TextRange, otherEp uia.Endpoint) int {
	o := other.(*Range)
	return r.offset(ep) - o.offset(otherEp)
}

// SetEndpoint implements uia.TextRange.
func (r *Range) SetEndpoint(ep uia.Endpoint, other uia.TextRange, otherEp uia.Endpoint) {
	pos := other.(*Range).offset(otherEp)
	if ep == uia.EndpointStart {
		r.start = pos
		if r.end < r.start {
			r.end = r.start
		}
	} else {
		r.end = pos
		if r.start > r.end {
			r.start = r.end
		}
	}
}

// GetAttributeValue implements uia.TextRange. The value of the run
// containing the range start is returned.
func (r *Range) GetAttributeValue(attr uia.AttributeID) (any, error) {
	for _, run := range r.doc.runs[attr] {
		if run.Start <= r.start && (r.start < run.End || run.Start == run.End && r.start == run.Start) {
			return run.Value, nil
		}
	}
	return nil, uia.ErrNotSupported
}

// Children implements uia.TextRange: the topmost elements fully contained
// in the range, in document order.
func (r *Range) Children() []uia.Element {
	var out []uia.Element
	if r.doc.root == nil {
		return out
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		if r.start <= n.Start && n.End <= r.end && !(r.start == r.end) {
			out = append(out, n)
			return
		}
		for _, k := range n.Kids {
			walk(k)
		}
	}
	walk(r.doc.root)
	return out
}

// EnclosingElement implements uia.TextRange: the deepest element whose span
// contains the whole range.
func (r *Range) EnclosingElement() uia.Element {
	var found *Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Start <= r.start && r.end <= n.End {
			found = n
			for _, k := range n.Kids {
				walk(k)
			}
		}
	}
	if r.doc.root != nil {
		walk(r.doc.root)
	}
	if found == nil {
		return nil
	}
	return found
}

// PointAtStart implements uia.ScreenLocator. The fake maps a rune offset to
// a fixed screen row.
func (r *Range) PointAtStart() (x, y int, ok bool) {
	return r.start, 0, true
}

func (r *Range) offset(ep uia.Endpoint) int {
	if ep == uia.EndpointEnd {
		return r.end
	}
	return r.start
}

func (d *Doc) movePos(pos int, unit uia.TextUnit, dir int) (int, bool) {
	n := len(d.runes)
	switch unit {
	case uia.UnitCharacter:
		next := pos + dir
		if next < 0 || next > n {
			return pos, false
		}
		return next, true
	case uia.UnitWord:
		if dir > 0 {
			i := pos
			for i < n && !isSpace(d.runes[i]) {
				i++
			}
			for i < n && isSpace(d.runes[i]) {
				i++
			}
			if i == pos {
				return pos, false
			}
			return i, true
		}
		i := pos
		for i > 0 && isSpace(d.runes[i-1]) {
			i--
		}
		for i > 0 && !isSpace(d.runes[i-1]) {
			i--
		}
		if i == pos {
			return pos, false
		}
		return i, true
	case uia.UnitLine, uia.UnitParagraph:
		if dir > 0 {
			for i := pos; i < n; i++ {
				if d.runes[i] == '\n' {
					return i + 1, true
				}
			}
			return pos, false
		}
		lineStart, _ := d.lineSpan(pos)
		if lineStart == pos {
			if lineStart == 0 {
				return pos, false
			}
			prevStart, _ := d.lineSpan(lineStart - 1)
			return prevStart, true
		}
		return lineStart, true
	case uia.UnitDocument:
		if dir > 0 {
			if pos == n {
				return pos, false
			}
			return n, true
		}
		if pos == 0 {
			return pos, false
		}
		return 0, true
	}
	return pos, false
}

// lineSpan returns the span of the line containing pos, including the
// trailing newline when present.
func (d *Doc) lineSpan(pos int) (int, int) {
	n := len(d.runes)
	start := pos
	for start > 0 && d.runes[start-1] != '\n' {
		start--
	}
	end := pos
	for end < n && d.runes[end] != '\n' {
		end++
	}
	if end < n {
		end++
	}
	return start, end
}

// wordSpan returns the span of the word containing pos, including trailing
// spaces.
func (d *Doc) wordSpan(pos int) (int, int) {
	n := len(d.runes)
	start := pos
	for start > 0 && !isSpace(d.runes[start-1]) {
		start--
	}
	end := pos
	for end < n && !isSpace(d.runes[end]) {
		end++
	}
	for end < n && isSpace(d.runes[end]) {
		end++
	}
	return start, end
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
