// Package video implements the PPU: the scanline state machine, the
// background/window/sprite rasterizer, the decoded tileset cache, and the
// OAM DMA engine. The PPU owns VRAM and OAM; the MMU dispatches accesses
// here.
package video

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/irq"
)

// Mode is the PPU rendering stage, matching STAT bits 1-0.
type Mode uint8

const (
	// ModeHBlank (0): horizontal blank, VRAM and OAM accessible.
	ModeHBlank Mode = 0
	// ModeVBlank (1): vertical blank, lines 144-153.
	ModeVBlank Mode = 1
	// ModeOAMScan (2): sprite selection, OAM blocked.
	ModeOAMScan Mode = 2
	// ModeVRAM (3): pixel transfer, VRAM and OAM blocked.
	ModeVRAM Mode = 3
)

const (
	oamScanCycles  = 80
	transferCycles = 172
	lineCycles     = 456

	visibleLines = 144
	lastLine     = 153

	oamByteCount   = 0xA0
	spriteCount    = 40
	maxLineSprites = 10
	tileMap0Offset = 0x1800
	tileMap1Offset = 0x1C00
	tileDataBytes  = 0x1800
)

// FrameListener receives the framebuffer once per VBlank entry. The host
// must only copy it and return.
type FrameListener func(fb *Framebuffer)

// PPU is the pixel processing unit.
type PPU struct {
	irq irq.Requester
	dma *OAMDMA

	vram  [0x2000]byte
	oam   [oamByteCount]byte
	tiles [tileCount]Tile

	fb         Framebuffer
	bgIsColor0 [FramebufferSize]bool

	// LCDC, decomposed
	lcdOn         bool // bit 7
	windowMap1    bool // bit 6
	windowOn      bool // bit 5
	unsignedTiles bool // bit 4: 1 = $8000 indexing, 0 = $8800 signed
	bgMap1        bool // bit 3
	tallSprites   bool // bit 2: 8x16 sprites
	spritesOn     bool // bit 1
	bgOn          bool // bit 0

	// STAT, decomposed
	lycIRQ      bool // bit 6
	oamIRQ      bool // bit 5
	vblankIRQ   bool // bit 4
	hblankIRQ   bool // bit 3
	coincidence bool // bit 2
	mode        Mode // bits 1-0

	scy, scx byte
	wy, wx   byte
	ly, lyc  byte

	bgpRaw, obp0Raw, obp1Raw byte
	bgp, obp0, obp1          Palette

	dmaReg byte // last value written to the DMA register

	cycles      int // T-cycles elapsed in the current scanline
	windowLine  int // internal window line counter
	suppressLYC bool

	scanSprites [maxLineSprites]Sprite
	scanCount   int
	prio        spritePriorityBuffer

	frameListeners []*frameListenerEntry
}

type frameListenerEntry struct {
	fn FrameListener
}

// NewPPU creates a PPU that raises its interrupts on the given requester.
func NewPPU(requester irq.Requester) *PPU {
	p := &PPU{irq: requester}
	p.Reset()
	return p
}

// Reset restores the power-on state: LCD off with the state machine at mode 2
// of line 0, memory cleared. Register defaults, including the LCDC write that
// turns the LCD on, are written by the emulator through the MMU.
func (p *PPU) Reset() {
	p.vram = [0x2000]byte{}
	p.oam = [oamByteCount]byte{}
	p.tiles = [tileCount]Tile{}
	p.fb.Clear()
	p.bgIsColor0 = [FramebufferSize]bool{}
	p.mode = ModeOAMScan
	p.ly, p.lyc = 0, 0
	p.scy, p.scx, p.wy, p.wx = 0, 0, 0, 0
	p.cycles = 0
	p.windowLine = 0
	p.suppressLYC = false
	p.coincidence = false
	p.lcdOn, p.windowMap1, p.windowOn, p.unsignedTiles = false, false, false, false
	p.bgMap1, p.tallSprites, p.spritesOn, p.bgOn = false, false, false, false
	p.lycIRQ, p.oamIRQ, p.vblankIRQ, p.hblankIRQ = false, false, false, false
	p.bgpRaw, p.obp0Raw, p.obp1Raw = 0, 0, 0
	p.bgp, p.obp0, p.obp1 = Palette{}, Palette{}, Palette{}
	p.dmaReg = 0
	if p.dma != nil {
		p.dma.Reset()
	}
}

// AddFrameListener subscribes to finished frames. The returned function
// deregisters the listener.
func (p *PPU) AddFrameListener(fn FrameListener) func() {
	entry := &frameListenerEntry{fn: fn}
	p.frameListeners = append(p.frameListeners, entry)
	return func() {
		for i, e := range p.frameListeners {
			if e == entry {
				p.frameListeners = append(p.frameListeners[:i], p.frameListeners[i+1:]...)
				return
			}
		}
	}
}

// Framebuffer returns the current frame contents.
func (p *PPU) Framebuffer() *Framebuffer { return &p.fb }

// Mode returns the current rendering stage.
func (p *PPU) Mode() Mode { return p.mode }

// LY returns the current scanline.
func (p *PPU) LY() byte { return p.ly }

// DMA returns the OAM DMA engine.
func (p *PPU) DMA() *OAMDMA { return p.dma }

// TickMachineCycle advances the PPU by one machine cycle (4 T-cycles).
func (p *PPU) TickMachineCycle() {
	p.Tick(4)
}

// Tick advances the scanline state machine by the given T-cycles.
func (p *PPU) Tick(cycles int) {
	if !p.lcdOn {
		return
	}

	p.cycles += cycles

	switch p.mode {
	case ModeOAMScan:
		if p.cycles >= oamScanCycles {
			p.selectSprites()
			p.setMode(ModeVRAM)
		}
	case ModeVRAM:
		if p.cycles >= oamScanCycles+transferCycles {
			p.renderScanline()
			p.setMode(ModeHBlank)
		}
	case ModeHBlank:
		if p.cycles >= lineCycles {
			p.cycles -= lineCycles
			p.setLY(p.ly + 1)
			if p.ly == visibleLines {
				p.setMode(ModeVBlank)
				p.irq.Request(irq.VBlank)
				p.publishFrame()
			} else {
				p.setMode(ModeOAMScan)
			}
		}
	case ModeVBlank:
		if p.cycles >= lineCycles {
			p.cycles -= lineCycles
			if p.ly == lastLine {
				p.setLY(0)
				p.windowLine = 0
				p.suppressLYC = false
				p.setMode(ModeOAMScan)
			} else {
				p.setLY(p.ly + 1)
			}
		}
	}
}

// setMode switches the rendering stage and raises the LCD-STAT interrupt
// when the matching enable bit is set.
func (p *PPU) setMode(mode Mode) {
	p.mode = mode

	switch {
	case mode == ModeHBlank && p.hblankIRQ:
		p.irq.Request(irq.LCDStat)
	case mode == ModeVBlank && p.vblankIRQ:
		p.irq.Request(irq.LCDStat)
	case mode == ModeOAMScan && p.oamIRQ:
		p.irq.Request(irq.LCDStat)
	}
}

// setLY updates the current line and re-evaluates the LYC coincidence,
// raising the STAT interrupt on its rising edge.
func (p *PPU) setLY(line byte) {
	p.ly = line
	was := p.coincidence
	p.coincidence = p.ly == p.lyc
	if p.coincidence && !was && p.lycIRQ && !p.suppressLYC {
		p.irq.Request(irq.LCDStat)
	}
}

func (p *PPU) publishFrame() {
	for _, e := range p.frameListeners {
		e.fn(&p.fb)
	}
}

// selectSprites picks up to 10 sprites intersecting the current line, in
// OAM order, and resolves per-pixel ownership. X-offscreen sprites still
// count toward the limit.
func (p *PPU) selectSprites() {
	p.scanCount = 0
	p.prio.clear()

	if !p.spritesOn {
		return
	}

	height := 8
	if p.tallSprites {
		height = 16
	}

	line := int(p.ly)
	for i := 0; i < spriteCount && p.scanCount < maxLineSprites; i++ {
		base := i * 4
		spriteY := int(p.oam[base]) - 16
		if line < spriteY || line >= spriteY+height {
			continue
		}

		sprite := Sprite{
			Y:         p.oam[base],
			X:         p.oam[base+1],
			TileIndex: p.oam[base+2],
			Flags:     p.oam[base+3],
			OAMIndex:  i,
		}
		sprite.parseFlags()

		p.scanSprites[p.scanCount] = sprite
		p.scanCount++

		for px := 0; px < 8; px++ {
			p.prio.tryClaimPixel(sprite.ScreenX()+px, i, sprite.ScreenX())
		}
	}
}

// renderScanline rasterizes the current line into the framebuffer:
// background, then window, then sprites.
func (p *PPU) renderScanline() {
	p.renderBackground()
	p.renderWindow()
	p.renderSprites()
}

func (p *PPU) renderBackground() {
	lineOffset := int(p.ly) * FramebufferWidth

	if !p.bgOn {
		for x := 0; x < FramebufferWidth; x++ {
			p.fb[lineOffset+x] = p.bgp[0]
			p.bgIsColor0[lineOffset+x] = true
		}
		return
	}

	mapY := (int(p.scy) + int(p.ly)) & 0xFF
	rowInTile := mapY % 8
	mapRowOffset := p.mapOffset(p.bgMap1) + (mapY/8)*32

	for x := 0; x < FramebufferWidth; x++ {
		mapX := (int(p.scx) + x) & 0xFF
		tileIndex := p.vram[mapRowOffset+mapX/8]
		colorNum := p.tiles[p.tileNumber(tileIndex)][rowInTile][mapX%8]

		p.fb[lineOffset+x] = p.bgp[colorNum]
		p.bgIsColor0[lineOffset+x] = colorNum == 0
	}
}

func (p *PPU) renderWindow() {
	if !p.windowOn || p.windowLine > 143 {
		return
	}
	if int(p.ly) < int(p.wy) {
		return
	}
	startX := int(p.wx) - 7
	if startX > FramebufferWidth-1 {
		return
	}
	if startX < 0 {
		startX = 0
	}

	lineOffset := int(p.ly) * FramebufferWidth
	rowInTile := p.windowLine % 8
	mapRowOffset := p.mapOffset(p.windowMap1) + (p.windowLine/8)*32

	for x := startX; x < FramebufferWidth; x++ {
		winX := x - (int(p.wx) - 7)
		tileIndex := p.vram[mapRowOffset+winX/8]
		colorNum := p.tiles[p.tileNumber(tileIndex)][rowInTile][winX%8]

		p.fb[lineOffset+x] = p.bgp[colorNum]
		p.bgIsColor0[lineOffset+x] = colorNum == 0
	}

	p.windowLine++
}

func (p *PPU) renderSprites() {
	if !p.spritesOn {
		return
	}

	height := 8
	if p.tallSprites {
		height = 16
	}

	lineOffset := int(p.ly) * FramebufferWidth

	for i := 0; i < p.scanCount; i++ {
		sprite := &p.scanSprites[i]

		row := int(p.ly) - sprite.ScreenY()
		if sprite.FlipY {
			row = height - 1 - row
		}

		tileNum := int(sprite.TileIndex)
		if p.tallSprites {
			tileNum &= 0xFE
			if row >= 8 {
				tileNum++
				row -= 8
			}
		}

		palette := p.obp0
		if sprite.PaletteOBP1 {
			palette = p.obp1
		}

		for px := 0; px < 8; px++ {
			screenX := sprite.ScreenX() + px
			if screenX < 0 || screenX >= FramebufferWidth {
				continue
			}
			if p.prio.owner(screenX) != sprite.OAMIndex {
				continue
			}

			tx := px
			if sprite.FlipX {
				tx = 7 - px
			}
			colorNum := p.tiles[tileNum][row][tx]
			if colorNum == 0 {
				// color number 0 is sprite-transparent
				continue
			}
			if sprite.BehindBG && !p.bgIsColor0[lineOffset+screenX] {
				continue
			}

			p.fb[lineOffset+screenX] = palette[colorNum]
		}
	}
}

// mapOffset returns the VRAM offset of the selected 32x32 tile map.
func (p *PPU) mapOffset(useMap1 bool) int {
	if useMap1 {
		return tileMap1Offset
	}
	return tileMap0Offset
}

// tileNumber resolves a tile map byte to a tileset cache index, honoring
// the $8000 unsigned / $8800 signed addressing mode.
func (p *PPU) tileNumber(mapValue byte) int {
	if p.unsignedTiles {
		return int(mapValue)
	}
	return 256 + int(int8(mapValue))
}

// vramBlocked reports whether CPU VRAM access is currently denied.
func (p *PPU) vramBlocked() bool {
	return p.lcdOn && p.mode == ModeVRAM
}

// oamBlocked reports whether CPU OAM access is currently denied.
func (p *PPU) oamBlocked() bool {
	if p.dma != nil && p.dma.Active() {
		return true
	}
	return p.lcdOn && (p.mode == ModeOAMScan || p.mode == ModeVRAM)
}

// writeVRAM stores a byte and keeps the decoded tileset cache in sync.
func (p *PPU) writeVRAM(offset uint16, value byte) {
	p.vram[offset] = value
	if offset < tileDataBytes {
		tile := int(offset) / 16
		row := (int(offset) % 16) / 2
		base := uint16(tile*16 + row*2)
		p.tiles[tile].decodeRow(row, p.vram[base], p.vram[base+1])
	}
}

// writeOAMDirect bypasses blocking; used by the DMA engine.
func (p *PPU) writeOAMDirect(offset uint16, value byte) {
	p.oam[offset] = value
}

// VRAMPort returns the MMU-facing access port for the VRAM region.
func (p *PPU) VRAMPort() *VRAMPort { return &VRAMPort{p} }

// OAMPort returns the MMU-facing access port for the OAM region.
func (p *PPU) OAMPort() *OAMPort { return &OAMPort{p} }

// VRAMPort adapts the PPU to the MMU's region handler interface for VRAM.
type VRAMPort struct{ p *PPU }

func (v *VRAMPort) ReadRegion(offset uint16) byte {
	if v.p.vramBlocked() {
		return 0xFF
	}
	return v.p.vram[offset]
}

func (v *VRAMPort) WriteRegion(offset uint16, value byte) {
	if v.p.vramBlocked() {
		return
	}
	v.p.writeVRAM(offset, value)
}

// OAMPort adapts the PPU to the MMU's region handler interface for OAM.
type OAMPort struct{ p *PPU }

func (o *OAMPort) ReadRegion(offset uint16) byte {
	if o.p.oamBlocked() {
		return 0xFF
	}
	return o.p.oam[offset]
}

func (o *OAMPort) WriteRegion(offset uint16, value byte) {
	if o.p.oamBlocked() {
		return
	}
	o.p.oam[offset] = value
}

// ReadIO serves the LCDC-WX register range.
func (p *PPU) ReadIO(address uint16) byte {
	switch address {
	case addr.LCDC:
		return p.readLCDC()
	case addr.STAT:
		return p.readSTAT()
	case addr.SCY:
		return p.scy
	case addr.SCX:
		return p.scx
	case addr.LY:
		return p.ly
	case addr.LYC:
		return p.lyc
	case addr.DMA:
		return p.dmaReg
	case addr.BGP:
		return p.bgpRaw
	case addr.OBP0:
		return p.obp0Raw
	case addr.OBP1:
		return p.obp1Raw
	case addr.WY:
		return p.wy
	case addr.WX:
		return p.wx
	}
	return 0xFF
}

// WriteIO serves the LCDC-WX register range. LY is read only.
func (p *PPU) WriteIO(address uint16, value byte) {
	switch address {
	case addr.LCDC:
		p.writeLCDC(value)
	case addr.STAT:
		p.lycIRQ = bit.IsSet(6, value)
		p.oamIRQ = bit.IsSet(5, value)
		p.vblankIRQ = bit.IsSet(4, value)
		p.hblankIRQ = bit.IsSet(3, value)
	case addr.SCY:
		p.scy = value
	case addr.SCX:
		p.scx = value
	case addr.LY:
		// read only
	case addr.LYC:
		p.lyc = value
		p.setLY(p.ly) // re-evaluate the coincidence
	case addr.DMA:
		p.dmaReg = value
		if p.dma != nil {
			p.dma.Request(value)
		}
	case addr.BGP:
		p.bgpRaw = value
		p.bgp = decodePalette(value)
	case addr.OBP0:
		p.obp0Raw = value
		p.obp0 = decodePalette(value)
	case addr.OBP1:
		p.obp1Raw = value
		p.obp1 = decodePalette(value)
	case addr.WY:
		p.wy = value
	case addr.WX:
		p.wx = value
	}
}

func (p *PPU) readLCDC() byte {
	var value byte
	flags := []struct {
		index uint8
		on    bool
	}{
		{7, p.lcdOn}, {6, p.windowMap1}, {5, p.windowOn}, {4, p.unsignedTiles},
		{3, p.bgMap1}, {2, p.tallSprites}, {1, p.spritesOn}, {0, p.bgOn},
	}
	for _, f := range flags {
		if f.on {
			value = bit.Set(f.index, value)
		}
	}
	return value
}

func (p *PPU) readSTAT() byte {
	value := byte(0x80)
	if p.lycIRQ {
		value = bit.Set(6, value)
	}
	if p.oamIRQ {
		value = bit.Set(5, value)
	}
	if p.vblankIRQ {
		value = bit.Set(4, value)
	}
	if p.hblankIRQ {
		value = bit.Set(3, value)
	}
	if p.coincidence {
		value = bit.Set(2, value)
	}
	if p.lcdOn {
		value |= byte(p.mode)
	}
	return value
}

// writeLCDC decomposes the control byte. Turning the LCD off resets LY,
// the mode bits and the cycle counter; turning it back on resumes at mode
// 2 of line 0, with the first LYC coincidence deferred by one frame.
func (p *PPU) writeLCDC(value byte) {
	wasOn := p.lcdOn

	p.lcdOn = bit.IsSet(7, value)
	p.windowMap1 = bit.IsSet(6, value)
	p.windowOn = bit.IsSet(5, value)
	p.unsignedTiles = bit.IsSet(4, value)
	p.bgMap1 = bit.IsSet(3, value)
	p.tallSprites = bit.IsSet(2, value)
	p.spritesOn = bit.IsSet(1, value)
	p.bgOn = bit.IsSet(0, value)

	if wasOn && !p.lcdOn {
		p.ly = 0
		p.mode = ModeHBlank
		p.cycles = 0
		p.windowLine = 0
		p.coincidence = false
	} else if !wasOn && p.lcdOn {
		p.mode = ModeOAMScan
		p.cycles = 0
		p.windowLine = 0
		p.suppressLYC = true
		p.setLY(0)
	}
}
