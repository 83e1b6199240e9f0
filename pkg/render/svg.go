package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/style"
)

const defaultTextColor = "#000000"

// RenderSVG renders drawings as an SVG document. Each word is centered in its
// rectangle at a font size equal to the rectangle height and stretched to its
// width. Drawings without a font family use style.DefaultFontFamily.
func RenderSVG(drawings []style.Drawing, opts ...Option) []byte {
	r := newRenderer(opts...)
	f := Frame(drawings, r.center, r.padding)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%d" height="%d">`+"\n",
		f.X, f.Y, f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
		f.X, f.Y, f.Width, f.Height, escapeXML(r.background))

	for _, d := range drawings {
		renderText(&buf, d)
	}
	if r.outlines {
		buf.WriteString(`  <g fill="none" stroke="#ff00ff" stroke-width="1">` + "\n")
		for _, d := range drawings {
			p := d.Rect.Location()
			fmt.Fprintf(&buf, `    <rect x="%d" y="%d" width="%d" height="%d"/>`+"\n",
				p.X, p.Y, d.Rect.Width, d.Rect.Height)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderText(buf *bytes.Buffer, d style.Drawing) {
	family := d.Font.Family
	if family == "" {
		family = style.DefaultFontFamily
	}
	color := d.Color
	if color == "" {
		color = defaultTextColor
	}
	c := d.Rect.Center()

	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s"`,
		c.X, c.Y, escapeXML(family), d.Rect.Height, escapeXML(color))
	if name, value := d.Font.Style.SVGAttrs(); name != "" {
		fmt.Fprintf(buf, ` %s="%s"`, name, value)
	}
	fmt.Fprintf(buf, ` textLength="%d" lengthAdjust="spacingAndGlyphs" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		d.Rect.Width, escapeXML(d.Word))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
