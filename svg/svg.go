package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// Writer serializes SVG elements to an io.Writer. The first write
// error is sticky: later calls become no-ops and Err reports it.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w in an SVG serializer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err reports the first write error, or nil.
func (svg *Writer) Err() error {
	return svg.err
}

func (svg *Writer) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

// extraparams renders trailing string arguments: anything containing
// an "=" passes through as an attribute, anything else becomes the
// element's style.
func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += s[i] + " "
		} else if len(s[i]) > 0 {
			ep += fmt.Sprintf("style='%s' ", s[i])
		}
	}
	return ep
}

// Start opens the document with the given viewBox.
func (svg *Writer) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(s))
}

// End closes the document.
func (svg *Writer) End() {
	svg.printf("</svg>\n")
}

// StartPath opens a path element at p1; build it with PathLineTo and
// finish with PathClose or EndPath.
func (svg *Writer) StartPath(p1 geom.Coord, s ...string) {
	svg.printf("<path %sd='M%f,%f", extraparams(s), p1.X, p1.Y)
}

// PathLineTo extends the open path with a straight segment to p.
func (svg *Writer) PathLineTo(p geom.Coord) {
	svg.printf("\n  L%f,%f", p.X, p.Y)
}

// PathClose closes the open path's outline and ends the element.
func (svg *Writer) PathClose() {
	svg.printf("\n  Z'/>\n")
}

// EndPath ends the path element without closing its outline.
func (svg *Writer) EndPath() {
	svg.printf("'/>\n")
}
