package neonstreet

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsCounter prints the current FPS and TPS in the top-left corner. The
// text is refreshed every ~0.5 seconds so it stays readable.
type fpsCounter struct {
	elapsed float64
	label   string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.label != "" && f.elapsed < 0.5 {
		return
	}
	f.elapsed = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsCounter) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, f.label, 4, 4)
}
