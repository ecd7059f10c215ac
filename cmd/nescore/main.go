// Command nescore is the ebiten-backed host for the NES emulator: it
// owns the window, pumps frames, and polls the keyboard into the first
// controller port (spec.md §6's host contract).
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/console"
	"github.com/mtellier/nescore/input"
	"github.com/mtellier/nescore/ppu"
	"github.com/mtellier/nescore/types"
	"github.com/mtellier/nescore/video"
)

var romPath = flag.String("rom", "", "path to an iNES ROM image")

// keymap gives the mapping from host keys to the button shift order
// input.Controller reads out (A, B, Select, Start, Up, Down, Left,
// Right), the way the teacher's controller poller did.
var keymap = []struct {
	key    ebiten.Key
	button types.Byte
}{
	{ebiten.KeyZ, input.ButtonA},
	{ebiten.KeyX, input.ButtonB},
	{ebiten.KeyShift, input.ButtonSelect},
	{ebiten.KeyEnter, input.ButtonStart},
	{ebiten.KeyUp, input.ButtonUp},
	{ebiten.KeyDown, input.ButtonDown},
	{ebiten.KeyLeft, input.ButtonLeft},
	{ebiten.KeyRight, input.ButtonRight},
}

type game struct {
	emu *console.Emulator
}

func (g *game) Update() error {
	var buttons types.Byte
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			buttons |= k.button
		}
	}
	g.emu.SetButtons(0, buttons)
	g.emu.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.emu.Framebuffer()
	for i, idx := range fb {
		x := i % ppu.ScreenWidth
		y := i / ppu.ScreenWidth
		screen.Set(x, y, video.SystemPalette[idx&0x3F])
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("nescore: -rom is required")
	}

	cart, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("nescore: couldn't load ROM: %v", err)
	}

	g := &game{emu: console.New(cart)}

	ebiten.SetWindowSize(ppu.ScreenWidth*2, ppu.ScreenHeight*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
