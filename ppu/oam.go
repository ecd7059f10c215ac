package ppu

import "github.com/mtellier/nescore/types"

// priority is a sprite's front/back relationship to the background,
// taken from attribute byte bit 5.
type priority uint8

const (
	FRONT priority = iota
	BACK
)

// decodeSpriteAttr splits a sprite's OAM attribute byte (OAM byte 2)
// into the fields evaluateSprites stashes onto a spriteSlot, so the
// bit layout is decoded once per sprite per scanline rather than
// re-derived in both fetchSpritePatterns and renderPixel.
//
//	76543210
//	||||||||
//	||||||++- Palette (4 to 7) of sprite
//	|||+++--- Unimplemented (reads back as 0)
//	||+------ Priority (0: in front of background; 1: behind background)
//	|+------- Flip sprite horizontally
//	+-------- Flip sprite vertically
func decodeSpriteAttr(attr types.Byte) (palette types.Byte, renderP priority, flipH, flipV bool) {
	palette = attr & 0x03
	renderP = priority((attr & 0x20) >> 5)
	flipH = attr.InspectBit(6)
	flipV = attr.InspectBit(7)
	return
}
