package fields

import (
	"encoding/json"
	"fmt"
)

// Wire format: a stream is a JSON array whose entries are single-key
// objects. {"control": {...}} opens a control, {"end": {}} closes the most
// recently opened one, {"format": {...}} is a format change and
// {"text": "..."} is a literal run. Decoding matches each end to its open
// control so rewrites keep start/end pairs associated.

type controlJSON struct {
	Role             string            `json:"role,omitempty"`
	States           []string          `json:"states,omitempty"`
	RuntimeID        string            `json:"runtimeID,omitempty"`
	PageNumber       string            `json:"page-number,omitempty"`
	Content          string            `json:"content,omitempty"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	StartOfNode      bool              `json:"_startOfNode,omitempty"`
	EndOfNode        bool              `json:"_endOfNode,omitempty"`
	AlwaysReportName bool              `json:"alwaysReportName,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

type formatJSON struct {
	LinePrefix            string            `json:"line-prefix,omitempty"`
	LinePrefixSpeakAlways bool              `json:"line-prefix_speakAlways,omitempty"`
	PageNumber            string            `json:"page-number,omitempty"`
	FontName              string            `json:"font-name,omitempty"`
	Extra                 map[string]string `json:"extra,omitempty"`
}

type fieldJSON struct {
	Control *controlJSON `json:"control,omitempty"`
	End     *struct{}    `json:"end,omitempty"`
	Format  *formatJSON  `json:"format,omitempty"`
	Text    *string      `json:"text,omitempty"`
}

// MarshalStream encodes a stream in the wire format.
func MarshalStream(s Stream) ([]byte, error) {
	entries := make([]fieldJSON, 0, len(s))
	for _, f := range s {
		switch v := f.(type) {
		case Text:
			t := string(v)
			entries = append(entries, fieldJSON{Text: &t})
		case *Command:
			switch v.Kind {
			case ControlStart:
				entries = append(entries, fieldJSON{Control: controlToJSON(v.Control)})
			case ControlEnd:
				entries = append(entries, fieldJSON{End: &struct{}{}})
			case FormatChange:
				entries = append(entries, fieldJSON{Format: formatToJSON(v.Format)})
			default:
				return nil, fmt.Errorf("fields: cannot marshal command kind %d", v.Kind)
			}
		default:
			return nil, fmt.Errorf("fields: cannot marshal field of type %T", f)
		}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// UnmarshalStream decodes a stream from the wire format. Ends are matched
// to their opening controls by nesting; an unbalanced end decodes as a
// controlEnd without attributes rather than failing.
func UnmarshalStream(data []byte) (Stream, error) {
	var entries []fieldJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("fields: decode stream: %w", err)
	}
	out := make(Stream, 0, len(entries))
	var open []*ControlAttrs
	for i, e := range entries {
		switch {
		case e.Text != nil:
			out = append(out, Text(*e.Text))
		case e.Control != nil:
			attrs := controlFromJSON(e.Control)
			open = append(open, attrs)
			out = append(out, Start(attrs))
		case e.End != nil:
			var attrs *ControlAttrs
			if len(open) > 0 {
				attrs = open[len(open)-1]
				open = open[:len(open)-1]
			}
			out = append(out, EndOf(attrs))
		case e.Format != nil:
			out = append(out, Format(formatFromJSON(e.Format)))
		default:
			return nil, fmt.Errorf("fields: entry %d has no recognized key", i)
		}
	}
	return out, nil
}

func controlToJSON(a *ControlAttrs) *controlJSON {
	if a == nil {
		return &controlJSON{}
	}
	return &controlJSON{
		Role:             a.Role,
		States:           a.StateList(),
		RuntimeID:        a.RuntimeID,
		PageNumber:       a.PageNumber,
		Content:          a.Content,
		Name:             a.Name,
		Description:      a.Description,
		StartOfNode:      a.StartOfNode,
		EndOfNode:        a.EndOfNode,
		AlwaysReportName: a.AlwaysReportName,
		Extra:            a.Extra,
	}
}

func controlFromJSON(c *controlJSON) *ControlAttrs {
	attrs := &ControlAttrs{
		Role:             c.Role,
		RuntimeID:        c.RuntimeID,
		PageNumber:       c.PageNumber,
		Content:          c.Content,
		Name:             c.Name,
		Description:      c.Description,
		StartOfNode:      c.StartOfNode,
		EndOfNode:        c.EndOfNode,
		AlwaysReportName: c.AlwaysReportName,
		Extra:            c.Extra,
	}
	for _, s := range c.States {
		attrs.AddState(s)
	}
	return attrs
}

func formatToJSON(a *FormatAttrs) *formatJSON {
	if a == nil {
		return &formatJSON{}
	}
	return &formatJSON{
		LinePrefix:            a.LinePrefix,
		LinePrefixSpeakAlways: a.LinePrefixSpeakAlways,
		PageNumber:            a.PageNumber,
		FontName:              a.FontName,
		Extra:                 a.Extra,
	}
}

func formatFromJSON(f *formatJSON) *FormatAttrs {
	return &FormatAttrs{
		LinePrefix:            f.LinePrefix,
		LinePrefixSpeakAlways: f.LinePrefixSpeakAlways,
		PageNumber:            f.PageNumber,
		FontName:              f.FontName,
		Extra:                 f.Extra,
	}
}
