package render

import (
	"encoding/json"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/style"
)

// Document is the JSON form of a rendered cloud.
type Document struct {
	Center     geometry.Point     `json:"center"`
	Frame      geometry.Rectangle `json:"frame"`
	Background string             `json:"background"`
	Tags       []style.Drawing    `json:"tags"`
}

// NewDocument builds the document for drawings.
func NewDocument(drawings []style.Drawing, opts ...Option) Document {
	r := newRenderer(opts...)
	tags := drawings
	if tags == nil {
		tags = []style.Drawing{}
	}
	return Document{
		Center:     r.center,
		Frame:      Frame(drawings, r.center, r.padding),
		Background: r.background,
		Tags:       tags,
	}
}

// RenderJSON renders drawings as an indented JSON document.
func RenderJSON(drawings []style.Drawing, opts ...Option) ([]byte, error) {
	return json.MarshalIndent(NewDocument(drawings, opts...), "", "  ")
}

// ParseJSON reads a document written by RenderJSON.
func ParseJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid layout document")
	}
	return doc, nil
}

// Options returns render options that reproduce the document's frame.
func (d Document) Options() []Option {
	return []Option{WithCenter(d.Center), WithBackground(d.Background)}
}
