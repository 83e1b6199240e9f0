// Package render turns placed, styled tags into output documents.
//
// # Frame
//
// The image is sized symmetrically about the layout center so that the
// first, heaviest tag sits in the middle of the picture. [Frame] computes
// that rectangle in layout coordinates; renderers use it as the viewBox, so
// tag rectangles are written unchanged.
//
// # Formats
//
//   - SVG: [RenderSVG], one <text> element per tag, scaled to its rectangle
//   - JSON: [RenderJSON], the frame plus every drawing, readable by [ParseJSON]
//   - PNG and PDF: [ToPNG] and [ToPDF] convert SVG with rsvg-convert
//
//	svg := render.RenderSVG(drawings, render.WithBackground("#fff"))
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// PNG and PDF require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package render
