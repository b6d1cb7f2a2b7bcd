// Package wordfields normalizes Microsoft Word UI Automation text-range
// snapshots into flat, linear field streams suitable for speech and braille
// rendering.
//
// Basic usage:
//
//	doc := wordfields.New(host)
//	r := doc.EntireRange()
//	stream := r.Fields()
//
// The host API is abstracted behind the uia package; the fields package
// holds the stream model and the quirk-correcting normalizer, which can
// also be used on its own against captured snapshots.
package wordfields

import (
	"github.com/tsawler/wordfields/fields"
	"github.com/tsawler/wordfields/uia"
)

// Document wraps one open document exposed by the host.
type Document struct {
	host uia.Document
	norm *fields.Normalizer
	opts Options
}

// New wraps a host document for field extraction.
func New(host uia.Document, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	norm := o.normalizer
	if norm == nil {
		norm = fields.NewNormalizer()
	}
	return &Document{host: host, norm: norm, opts: o}
}

// Host returns the underlying host document.
func (d *Document) Host() uia.Document {
	return d.host
}

// EntireRange returns a Range spanning the whole document.
func (d *Document) EntireRange() *Range {
	return d.Wrap(d.host.DocumentRange())
}

// CaretRange returns a collapsed Range at the caret.
func (d *Document) CaretRange() *Range {
	return d.Wrap(d.host.CaretRange())
}

// Wrap adapts a raw host range into a Range carrying the Word-specific
// motion, expansion, and extraction workarounds.
func (d *Document) Wrap(r uia.TextRange) *Range {
	return &Range{doc: d, host: r}
}
