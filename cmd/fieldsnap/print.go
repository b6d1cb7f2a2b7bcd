package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tsawler/wordfields/fields"
)

var (
	startColor  = color.New(color.FgGreen)
	endColor    = color.New(color.FgGreen, color.Faint)
	formatColor = color.New(color.FgCyan)
	textColor   = color.New(color.FgHiWhite)
)

// printStream writes a human-readable listing of the stream, one field per
// line, indented by control nesting depth.
func printStream(w io.Writer, s fields.Stream, colorize bool) error {
	color.NoColor = !colorize
	depth := 0
	for _, f := range s {
		switch v := f.(type) {
		case fields.Text:
			indent(w, depth)
			textColor.Fprintf(w, "text %q\n", string(v))
		case *fields.Command:
			switch v.Kind {
			case fields.ControlStart:
				indent(w, depth)
				startColor.Fprintf(w, "controlStart%s\n", controlSummary(v.Control))
				depth++
			case fields.ControlEnd:
				if depth > 0 {
					depth--
				}
				indent(w, depth)
				endColor.Fprintln(w, "controlEnd")
			case fields.FormatChange:
				indent(w, depth)
				formatColor.Fprintf(w, "formatChange%s\n", formatSummary(v.Format))
			}
		default:
			return fmt.Errorf("unknown field type %T", f)
		}
	}
	return nil
}

func controlSummary(a *fields.ControlAttrs) string {
	if a == nil {
		return ""
	}
	var b strings.Builder
	appendAttr(&b, "role", a.Role)
	appendAttr(&b, "runtimeID", a.RuntimeID)
	appendAttr(&b, "page-number", a.PageNumber)
	appendAttr(&b, "name", a.Name)
	appendAttr(&b, "content", a.Content)
	if states := a.StateList(); len(states) > 0 {
		appendAttr(&b, "states", strings.Join(states, ","))
	}
	if a.StartOfNode {
		b.WriteString(" _startOfNode")
	}
	if a.EndOfNode {
		b.WriteString(" _endOfNode")
	}
	return b.String()
}

func formatSummary(a *fields.FormatAttrs) string {
	if a == nil {
		return ""
	}
	var b strings.Builder
	appendAttr(&b, "line-prefix", a.LinePrefix)
	if a.LinePrefixSpeakAlways {
		b.WriteString(" line-prefix_speakAlways")
	}
	appendAttr(&b, "page-number", a.PageNumber)
	appendAttr(&b, "font-name", a.FontName)
	return b.String()
}

func appendAttr(b *strings.Builder, key, val string) {
	if val == "" {
		return
	}
	fmt.Fprintf(b, " %s=%q", key, val)
}

func indent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat("  ", depth))
}

// autoColor captures the color package's terminal detection at startup,
// before printStream starts overriding color.NoColor per call.
var autoColor = !color.NoColor

// useColor resolves the color mode; "auto" follows the terminal detection
// captured at startup.
func useColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return autoColor
}
