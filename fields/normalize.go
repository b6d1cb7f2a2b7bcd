package fields

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tsawler/wordfields/internal/diag"
)

// Normalizer rewrites a raw field stream to correct known Microsoft Word
// host quirks. It applies four independent passes in a fixed order:
//
//  1. ensure the first group of controlStarts contains at least one
//     content unit, so boundary announcements are not dropped;
//  2. move a fused list bullet out of the text and into the format field's
//     line prefix;
//  3. propagate the leading control's page number onto every format field;
//  4. remove control pairs the host emitted twice for the same tree node.
//
// All passes are defensive: malformed or empty input passes through
// unchanged, and normalizing an already-normalized stream is a no-op.
type Normalizer struct {
	log zerolog.Logger
}

// NewNormalizer returns a Normalizer that reports diagnostics through the
// module's diag logger.
func NewNormalizer() *Normalizer {
	return &Normalizer{log: diag.Logger()}
}

// NewNormalizerWithLogger returns a Normalizer with an explicit diagnostics
// logger.
func NewNormalizerWithLogger(log zerolog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize is a convenience wrapper around NewNormalizer().Normalize.
func Normalize(s Stream) Stream {
	return NewNormalizer().Normalize(s)
}

// Normalize applies the corrective passes and returns the resulting stream.
// The input slice may be modified; callers must not retain aliases to it.
func (n *Normalizer) Normalize(s Stream) Stream {
	if len(s) == 0 {
		return s
	}
	s = n.ensureLeadingContent(s)
	n.extractListPrefix(s)
	propagatePageNumber(s)
	return removeDuplicateAncestors(s)
}

// ensureLeadingContent inserts an empty formatChange and empty text run when
// the first group of controlStarts closes with no content between. Embedded
// objects and graphics in Word can produce such empty groups, and the
// renderer drops the boundary announcement entirely when the first group
// carries no content unit.
func (n *Normalizer) ensureLeadingContent(s Stream) Stream {
	for i, f := range s {
		cmd, ok := f.(*Command)
		if ok && cmd.Kind == ControlStart {
			continue
		}
		if ok && cmd.Kind == ControlEnd {
			out := make(Stream, 0, len(s)+2)
			out = append(out, s[:i]...)
			out = append(out, Format(&FormatAttrs{}), Text(""))
			out = append(out, s[i:]...)
			return out
		}
		break
	}
	return s
}

// extractListPrefix strips the list bullet Word fuses into the first text
// run of a list item and stores it as the current format field's line
// prefix. Braille cursor routing requires a one-to-one mapping between text
// characters and character moves, which the fused bullet breaks. Only a
// list item at the head of the stream is processed.
func (n *Normalizer) extractListPrefix(s Stream) {
	started := false
	var lastFormat *FormatAttrs
	for i, f := range s {
		switch v := f.(type) {
		case *Command:
			switch v.Kind {
			case ControlStart:
				if v.Control != nil && v.Control.Role == RoleListItem && v.Control.StartOfNode {
					started = true
				}
			case FormatChange:
				lastFormat = v.Format
			default:
				return
			}
		case Text:
			if !started {
				return
			}
			// First text run inside the list item.
			space := strings.IndexByte(string(v), ' ')
			if space < 0 {
				n.log.Debug().Str("text", string(v)).Msg("no space found in list item text")
				return
			}
			if lastFormat == nil {
				n.log.Debug().Msg("list item text with no preceding format field")
				return
			}
			if lastFormat.LinePrefixSpeakAlways {
				// Already extracted, possibly with an empty prefix; keeps
				// the pass idempotent.
				return
			}
			lastFormat.LinePrefix = string(v[:space])
			lastFormat.LinePrefixSpeakAlways = true
			s[i] = v[space+1:]
			return
		default:
			return
		}
	}
}

// propagatePageNumber copies the page number from the leading control field
// onto every format field in the stream, where the renderer expects it.
func propagatePageNumber(s Stream) {
	if len(s) == 0 {
		return
	}
	first, ok := s[0].(*Command)
	if !ok || first.Control == nil || first.Control.PageNumber == "" {
		return
	}
	page := first.Control.PageNumber
	for _, f := range s {
		if cmd, ok := f.(*Command); ok && cmd.Kind == FormatChange && cmd.Format != nil {
			cmd.Format.PageNumber = page
		}
	}
}

// removeDuplicateAncestors drops control pairs whose runtime id was already
// seen within one contiguous run of controlStarts. Word sometimes returns a
// higher ancestor as a child of itself, for example a table inside a table
// header; the duplicate doubles the reported information without creating a
// loop. The scan marks duplicates first and a rebuild removes them, so the
// stream is never mutated while being walked.
func removeDuplicateAncestors(s Stream) Stream {
	seen := make(map[string]bool)
	remove := make(map[*ControlAttrs]bool)
	for _, f := range s {
		cmd, ok := f.(*Command)
		if ok && cmd.Kind == ControlStart {
			if cmd.Control == nil || cmd.Control.RuntimeID == "" {
				continue
			}
			id := cmd.Control.RuntimeID
			if seen[id] {
				remove[cmd.Control] = true
			} else {
				seen[id] = true
			}
			continue
		}
		if ok && cmd.Kind == ControlEnd {
			// Closing a nested control keeps the ancestor chain's
			// accumulation run alive.
			continue
		}
		if len(seen) > 0 {
			clear(seen)
		}
	}
	if len(remove) == 0 {
		return s
	}
	out := make(Stream, 0, len(s)-len(remove))
	for _, f := range s {
		if cmd, ok := f.(*Command); ok && cmd.Control != nil && remove[cmd.Control] {
			continue
		}
		out = append(out, f)
	}
	return out
}
