package video

import "github.com/valerio/go-dmg/dmg/bit"

// Sprite is one decoded OAM entry. X and Y keep the raw OAM values; the
// rendering offsets (-16 and -8) are applied by the rasterizer.
type Sprite struct {
	Y         uint8
	X         uint8
	TileIndex uint8
	Flags     uint8
	OAMIndex  int

	PaletteOBP1 bool
	FlipX       bool
	FlipY       bool
	BehindBG    bool
}

func (s *Sprite) parseFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
}

// ScreenX returns the leftmost screen column the sprite covers.
func (s *Sprite) ScreenX() int { return int(s.X) - 8 }

// ScreenY returns the topmost screen row the sprite covers.
func (s *Sprite) ScreenY() int { return int(s.Y) - 16 }

// spritePriorityBuffer resolves sprite-to-pixel ownership for one scanline.
//
// DMG priority rules: the sprite with the lowest X coordinate owns a pixel;
// ties go to the lowest OAM index. Instead of sorting the selected sprites,
// each one claims the pixels it covers during the OAM scan and the buffer
// keeps the winner per pixel.
type spritePriorityBuffer struct {
	ownerIndex [FramebufferWidth]int
	ownerX     [FramebufferWidth]int
}

// clear resets the buffer for a new scanline.
func (b *spritePriorityBuffer) clear() {
	for i := range b.ownerIndex {
		b.ownerIndex[i] = -1
		b.ownerX[i] = 0xFF
	}
}

// tryClaimPixel attempts to claim a pixel for a sprite. The sprite wins if
// the pixel is unowned, if it has a lower X, or on an X tie with a lower
// OAM index.
func (b *spritePriorityBuffer) tryClaimPixel(pixelX, spriteIndex, spriteX int) bool {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return false
	}

	switch owner := b.ownerIndex[pixelX]; {
	case owner == -1,
		spriteX < b.ownerX[pixelX],
		spriteX == b.ownerX[pixelX] && spriteIndex < owner:
		b.ownerIndex[pixelX] = spriteIndex
		b.ownerX[pixelX] = spriteX
		return true
	}
	return false
}

// owner returns the OAM index owning a pixel, or -1.
func (b *spritePriorityBuffer) owner(pixelX int) int {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return -1
	}
	return b.ownerIndex[pixelX]
}
