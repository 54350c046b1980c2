package dragscroll

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often the FPS line is refreshed, in seconds.
const fpsInterval = 0.5

// fpsCounter holds the FPS/TPS line shown by the host. The text is refreshed
// every ~0.5 seconds so it stays readable.
type fpsCounter struct {
	elapsed float64
	text    string
}

// update accumulates dt and, once per interval, reformats the line from the
// given rates. Reports whether the text changed.
func (f *fpsCounter) update(dt, fps, tps float64) bool {
	f.elapsed += dt
	if f.text != "" && f.elapsed < fpsInterval {
		return false
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	return true
}

func (f *fpsCounter) draw(dst *ebiten.Image) {
	if f.text == "" {
		return
	}
	w := dst.Bounds().Dx()
	ebitenutil.DebugPrintAt(dst, f.text, w-80, 0)
}
