package wordfields

import (
	"github.com/tsawler/wordfields/fields"
	"github.com/tsawler/wordfields/internal/diag"
	"github.com/tsawler/wordfields/uia"
)

// translate walks the structural elements of a host range depth first and
// emits the raw field stream: each element contributes a controlStart and
// controlEnd pair sharing one attribute record, and leaves contribute a
// formatChange followed by their cleaned text. The stream is raw in the
// sense that known host quirks are still present; the normalizer fixes
// them afterwards.
func translate(d *Document, r uia.TextRange) fields.Stream {
	var out fields.Stream
	kids := r.Children()
	if len(kids) == 0 {
		encl := r.EnclosingElement()
		if encl == nil {
			return appendTextRun(d, out, r)
		}
		attrs := controlAttrsFor(encl, r)
		out = append(out, fields.Start(attrs))
		out = appendTextRun(d, out, r)
		return append(out, fields.EndOf(attrs))
	}
	for _, el := range kids {
		out = translateElement(d, out, el, r)
	}
	return out
}

func translateElement(d *Document, out fields.Stream, el uia.Element, bounds uia.TextRange) fields.Stream {
	attrs := controlAttrsFor(el, bounds)
	out = append(out, fields.Start(attrs))
	kids := el.Children()
	if len(kids) == 0 {
		if tr := el.TextRange(); tr != nil {
			out = appendTextRun(d, out, tr)
		}
	} else {
		for _, k := range kids {
			out = translateElement(d, out, k, bounds)
		}
	}
	return append(out, fields.EndOf(attrs))
}

func appendTextRun(d *Document, out fields.Stream, tr uia.TextRange) fields.Stream {
	t, err := tr.GetText(-1)
	if err != nil {
		lg := diag.Logger()
		lg.Debug().Err(err).Msg("text run fetch failed")
		return out
	}
	if t == "" {
		return out
	}
	attrs := &fields.FormatAttrs{}
	if d.opts.reportFontNames {
		if v, err := tr.GetAttributeValue(uia.AttrFontName); err == nil {
			if name, ok := v.(string); ok {
				attrs.FontName = name
			}
		}
	}
	return append(out, fields.Format(attrs), fields.Text(CleanText(t)))
}
