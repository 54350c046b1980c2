package dragscroll

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug logging goes. Tests swap it.
var debugOut io.Writer = os.Stderr

// debugLog prints a formatted line to stderr prefixed with the scroller name.
// Only called when ShowDebugging is set.
func (s *Scroller) debugLog(format string, args ...any) {
	if !s.cfg.ShowDebugging {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[dragscroll] %s: %s\n", s.name, fmt.Sprintf(format, args...))
}

// DebugText formats the on-screen debug line for an offset and ScaleFactor:
// the top-left position and n to four places.
func DebugText(offset Vec2, scaleFactor float64) string {
	tl := offset.Neg()
	return fmt.Sprintf("Left:%g; Top:%g; N:%.4f", tl.X, tl.Y, scaleFactor)
}
