package render

import (
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/style"
)

// Frame returns the smallest rectangle centered on center that contains every
// drawing, grown by padding on each side. An empty cloud yields a 1x1 frame.
func Frame(drawings []style.Drawing, center geometry.Point, padding int) geometry.Rectangle {
	halfW, halfH := 0, 0
	if len(drawings) > 0 {
		bounds := drawings[0].Rect
		for _, d := range drawings[1:] {
			bounds = bounds.Union(d.Rect)
		}
		halfW = max(center.X-bounds.Left(), bounds.Right()-center.X, 0) + max(padding, 0)
		halfH = max(center.Y-bounds.Top(), bounds.Bottom()-center.Y, 0) + max(padding, 0)
	}
	w, h := max(2*halfW, 1), max(2*halfH, 1)
	return geometry.Rectangle{X: center.X - halfW, Y: center.Y - halfH, Width: w, Height: h}
}
