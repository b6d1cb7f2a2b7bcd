package fields

import (
	"bytes"
	"testing"
)

// streamEqual compares two streams through the wire encoding.
func streamEqual(t *testing.T, a, b Stream) bool {
	t.Helper()
	da, err := MarshalStream(a)
	if err != nil {
		t.Fatalf("marshal a: %v", err)
	}
	db, err := MarshalStream(b)
	if err != nil {
		t.Fatalf("marshal b: %v", err)
	}
	return bytes.Equal(da, db)
}

// cloneStream rebuilds a stream through the codec so the original is safe
// to mutate.
func cloneStream(t *testing.T, s Stream) Stream {
	t.Helper()
	data, err := MarshalStream(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	c, err := UnmarshalStream(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return c
}

func TestNormalizeEmptyStream(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("expected empty stream, got %d fields", len(got))
	}
	if got := Normalize(Stream{}); len(got) != 0 {
		t.Errorf("expected empty stream, got %d fields", len(got))
	}
}

func TestNormalizeInsertsLeadingContent(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleEmbeddedObject, RuntimeID: "E:1"}
	in := Stream{Start(attrs), EndOf(attrs)}

	got := Normalize(in)

	if len(got) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(got))
	}
	if cmd, ok := got[0].(*Command); !ok || cmd.Kind != ControlStart {
		t.Errorf("field 0: expected controlStart, got %v", got[0])
	}
	cmd, ok := got[1].(*Command)
	if !ok || cmd.Kind != FormatChange {
		t.Fatalf("field 1: expected formatChange, got %v", got[1])
	}
	if cmd.Format == nil || cmd.Format.LinePrefix != "" {
		t.Errorf("inserted format field should be empty")
	}
	if text, ok := got[2].(Text); !ok || text != "" {
		t.Errorf("field 2: expected empty text, got %v", got[2])
	}
	if cmd, ok := got[3].(*Command); !ok || cmd.Kind != ControlEnd {
		t.Errorf("field 3: expected controlEnd, got %v", got[3])
	}
}

func TestNormalizeInsertsLeadingContentAfterNestedStarts(t *testing.T) {
	outer := &ControlAttrs{Role: RoleGrouping, RuntimeID: "G:1"}
	inner := &ControlAttrs{Role: RoleGraphic, RuntimeID: "G:2"}
	in := Stream{Start(outer), Start(inner), EndOf(inner), EndOf(outer)}

	got := Normalize(in)

	if len(got) != 6 {
		t.Fatalf("expected 6 fields, got %d", len(got))
	}
	if cmd, ok := got[2].(*Command); !ok || cmd.Kind != FormatChange {
		t.Errorf("field 2: expected formatChange, got %v", got[2])
	}
	if text, ok := got[3].(Text); !ok || text != "" {
		t.Errorf("field 3: expected empty text, got %v", got[3])
	}
}

func TestNormalizeLeavesNonEmptyFirstGroupAlone(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleText, RuntimeID: "T:1"}
	in := Stream{Start(attrs), Format(&FormatAttrs{}), Text("hello"), EndOf(attrs)}
	want := cloneStream(t, in)

	got := Normalize(in)

	if !streamEqual(t, got, want) {
		t.Errorf("normalization modified a stream with a non-empty first group")
	}
}

func TestNormalizeExtractsListBullet(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
	format := &FormatAttrs{}
	in := Stream{Start(attrs), Format(format), Text("• item one"), EndOf(attrs)}

	got := Normalize(in)

	if text, ok := got[2].(Text); !ok || text != "item one" {
		t.Errorf("expected text %q, got %v", "item one", got[2])
	}
	if format.LinePrefix != "•" {
		t.Errorf("expected line prefix %q, got %q", "•", format.LinePrefix)
	}
	if !format.LinePrefixSpeakAlways {
		t.Errorf("expected line-prefix_speakAlways to be set")
	}
}

func TestNormalizeListBulletNumbered(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
	format := &FormatAttrs{}
	in := Stream{Start(attrs), Format(format), Text("1. first point"), EndOf(attrs)}

	got := Normalize(in)

	if text, ok := got[2].(Text); !ok || text != "first point" {
		t.Errorf("expected text %q, got %v", "first point", got[2])
	}
	if format.LinePrefix != "1." {
		t.Errorf("expected line prefix %q, got %q", "1.", format.LinePrefix)
	}
}

func TestNormalizeListBulletWithoutSpace(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
	format := &FormatAttrs{}
	in := Stream{Start(attrs), Format(format), Text("NoSpace"), EndOf(attrs)}
	want := cloneStream(t, in)

	got := Normalize(in)

	if !streamEqual(t, got, want) {
		t.Errorf("pass should leave the stream unmodified when no space exists")
	}
	if format.LinePrefix != "" {
		t.Errorf("line prefix should stay empty, got %q", format.LinePrefix)
	}
}

func TestNormalizeListBulletRequiresStartOfNode(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1"}
	format := &FormatAttrs{}
	in := Stream{Start(attrs), Format(format), Text("• item one"), EndOf(attrs)}

	got := Normalize(in)

	if text, ok := got[2].(Text); !ok || text != "• item one" {
		t.Errorf("mid-node list item must keep its text, got %v", got[2])
	}
}

func TestNormalizeListBulletOnlyAtHead(t *testing.T) {
	plain := &ControlAttrs{Role: RoleText, RuntimeID: "T:1"}
	li := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
	format := &FormatAttrs{}
	in := Stream{
		Start(plain), Format(&FormatAttrs{}), Text("intro"), EndOf(plain),
		Start(li), Format(format), Text("• item"), EndOf(li),
	}

	got := Normalize(in)

	if text, ok := got[6].(Text); !ok || text != "• item" {
		t.Errorf("list item past the head of the stream must keep its text, got %v", got[6])
	}
	if format.LinePrefix != "" {
		t.Errorf("line prefix should stay empty, got %q", format.LinePrefix)
	}
}

func TestNormalizePropagatesPageNumber(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleGrouping, RuntimeID: "P:1", PageNumber: "3"}
	f1 := &FormatAttrs{}
	f2 := &FormatAttrs{PageNumber: "9"}
	in := Stream{Start(attrs), Format(f1), Text("one"), Format(f2), Text("two"), EndOf(attrs)}

	Normalize(in)

	if f1.PageNumber != "3" {
		t.Errorf("format 1: expected page-number 3, got %q", f1.PageNumber)
	}
	if f2.PageNumber != "3" {
		t.Errorf("format 2: expected existing page-number overwritten with 3, got %q", f2.PageNumber)
	}
}

func TestNormalizeNoPageNumberIsNoOp(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleGrouping, RuntimeID: "P:1"}
	f := &FormatAttrs{PageNumber: "9"}
	in := Stream{Start(attrs), Format(f), Text("one"), EndOf(attrs)}

	Normalize(in)

	if f.PageNumber != "9" {
		t.Errorf("page-number should be untouched, got %q", f.PageNumber)
	}
}

func runtimeIDs(s Stream) []string {
	var out []string
	for _, f := range s {
		if cmd, ok := f.(*Command); ok && cmd.Kind == ControlStart && cmd.Control != nil {
			out = append(out, cmd.Control.RuntimeID)
		}
	}
	return out
}

func TestNormalizeRemovesDuplicateAncestor(t *testing.T) {
	outer := &ControlAttrs{Role: RoleTable, RuntimeID: "42;1"}
	dup := &ControlAttrs{Role: RoleTable, RuntimeID: "42;1"}
	in := Stream{
		Start(outer), Start(dup),
		Format(&FormatAttrs{}), Text("cell"),
		EndOf(dup), EndOf(outer),
	}

	got := Normalize(in)

	ids := runtimeIDs(got)
	if len(ids) != 1 || ids[0] != "42;1" {
		t.Fatalf("expected one controlStart left, got %v", ids)
	}
	// The duplicate's controlEnd goes with it, keeping nesting balanced.
	ends := 0
	for _, f := range got {
		if cmd, ok := f.(*Command); ok && cmd.Kind == ControlEnd {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("expected one controlEnd left, got %d", ends)
	}
}

func TestNormalizeKeepsDuplicateSeparatedByText(t *testing.T) {
	first := &ControlAttrs{Role: RoleTable, RuntimeID: "42;1"}
	second := &ControlAttrs{Role: RoleTable, RuntimeID: "42;1"}
	in := Stream{
		Start(first), Format(&FormatAttrs{}), Text("row one"), EndOf(first),
		Start(second), Format(&FormatAttrs{}), Text("row two"), EndOf(second),
	}

	got := Normalize(in)

	ids := runtimeIDs(got)
	if len(ids) != 2 {
		t.Fatalf("expected both controlStarts kept, got %v", ids)
	}
}

// A table nested inside a table header makes Word re-emit the outer table
// as its own descendant, with only controlEnds between the two emissions.
// Closing a control must not reset duplicate detection.
func TestNormalizeNestedTableDuplicate(t *testing.T) {
	table := &ControlAttrs{Role: RoleTable, RuntimeID: "T:1"}
	header := &ControlAttrs{Role: RoleHeader, RuntimeID: "H:1"}
	dup := &ControlAttrs{Role: RoleTable, RuntimeID: "T:1"}
	cell := &ControlAttrs{Role: RoleEditableText, RuntimeID: "C:1"}
	in := Stream{
		Start(table), Start(header), EndOf(header),
		Start(dup), Start(cell),
		Format(&FormatAttrs{}), Text("data"),
		EndOf(cell), EndOf(dup), EndOf(table),
	}

	got := Normalize(in)

	ids := runtimeIDs(got)
	want := []string{"T:1", "H:1", "C:1"}
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

func TestNormalizeKeepsEmptyRuntimeIDs(t *testing.T) {
	a := &ControlAttrs{Role: RoleGrouping}
	b := &ControlAttrs{Role: RoleGrouping}
	in := Stream{Start(a), Start(b), Format(&FormatAttrs{}), Text("x"), EndOf(b), EndOf(a)}

	got := Normalize(in)

	if len(got) != 6 {
		t.Errorf("controls without runtime ids must never be removed, got %d fields", len(got))
	}
}

// A list item whose text begins with the separating space extracts an empty
// prefix; the pass must still recognize the stream as already processed.
func TestNormalizeIdempotentWithEmptyPrefix(t *testing.T) {
	attrs := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
	format := &FormatAttrs{}
	in := Stream{Start(attrs), Format(format), Text(" item one"), EndOf(attrs)}

	once := Normalize(in)

	if text, ok := once[2].(Text); !ok || text != "item one" {
		t.Fatalf("expected text %q, got %v", "item one", once[2])
	}
	if format.LinePrefix != "" || !format.LinePrefixSpeakAlways {
		t.Errorf("expected an empty spoken prefix, got %+v", format)
	}

	twice := Normalize(cloneStream(t, once))

	if !streamEqual(t, once, twice) {
		t.Errorf("second normalization re-split the list item text")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	build := func() Stream {
		page := &ControlAttrs{Role: RoleGrouping, RuntimeID: "P:1", PageNumber: "2"}
		li := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
		dup := &ControlAttrs{Role: RoleListItem, RuntimeID: "L:1", StartOfNode: true}
		return Stream{
			Start(page), Start(li), Start(dup),
			Format(&FormatAttrs{}), Text("• apples and pears"),
			EndOf(dup), EndOf(li), EndOf(page),
		}
	}

	once := Normalize(build())
	twice := Normalize(cloneStream(t, once))

	if !streamEqual(t, once, twice) {
		t.Errorf("normalizing an already-normalized stream must be a no-op")
	}
}
