package addr

// joypad
const (
	// JOYP selects and reads the button matrix rows.
	JOYP uint16 = 0xFF00
)

// serial I/O (stored only; link emulation is not part of this core)
const (
	SB uint16 = 0xFF01
	SC uint16 = 0xFF02
)

// timers
const (
	// DIV is the divider register, the upper byte of the internal counter.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter register. Requests an interrupt on overflow.
	TIMA uint16 = 0xFF05
	// TMA is the timer modulo, loaded into TIMA after an overflow.
	TMA uint16 = 0xFF06
	// TAC is the timer control register (enable + input clock select).
	TAC uint16 = 0xFF07
)

// audio registers
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF26

	// Channel 1 - square wave with sweep
	NR10 uint16 = 0xFF10 // sweep
	NR11 uint16 = 0xFF11 // length timer & duty
	NR12 uint16 = 0xFF12 // volume & envelope
	NR13 uint16 = 0xFF13 // period low
	NR14 uint16 = 0xFF14 // period high & control

	// Channel 2 - square wave
	NR21 uint16 = 0xFF16
	NR22 uint16 = 0xFF17
	NR23 uint16 = 0xFF18
	NR24 uint16 = 0xFF19

	// Channel 3 - wave (register file only, generator is a known gap)
	NR30 uint16 = 0xFF1A
	NR31 uint16 = 0xFF1B
	NR32 uint16 = 0xFF1C
	NR33 uint16 = 0xFF1D
	NR34 uint16 = 0xFF1E

	// Channel 4 - noise (register file only, generator is a known gap)
	NR41 uint16 = 0xFF20
	NR42 uint16 = 0xFF21
	NR43 uint16 = 0xFF22
	NR44 uint16 = 0xFF23

	// Global sound control
	NR50 uint16 = 0xFF24 // master volume & VIN panning
	NR51 uint16 = 0xFF25 // panning
	NR52 uint16 = 0xFF26 // power & per-channel status

	WaveRAMStart uint16 = 0xFF30
	WaveRAMEnd   uint16 = 0xFF3F
)

// ppu registers
const (
	// LCDC is the LCD Control register.
	LCDC uint16 = 0xFF40
	// STAT is the LCD Status register.
	STAT uint16 = 0xFF41
	// SCY is the background scroll Y register.
	SCY uint16 = 0xFF42
	// SCX is the background scroll X register.
	SCX uint16 = 0xFF43
	// LY is the current scanline (read only).
	LY uint16 = 0xFF44
	// LYC is the scanline compare register.
	LYC uint16 = 0xFF45
	// DMA schedules an OAM DMA transfer from value<<8.
	DMA uint16 = 0xFF46
	// BGP is the background palette register.
	BGP uint16 = 0xFF47
	// OBP0 is object palette 0.
	OBP0 uint16 = 0xFF48
	// OBP1 is object palette 1.
	OBP1 uint16 = 0xFF49
	// WY is the window Y position.
	WY uint16 = 0xFF4A
	// WX is the window X position (offset by 7).
	WX uint16 = 0xFF4B
)

// interrupts
const (
	// IF is the interrupt flag register.
	IF uint16 = 0xFF0F
	// IE is the interrupt enable register.
	IE uint16 = 0xFFFF
)

// OAM (sprite attribute) memory
const (
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
)

// tile data and tile maps
const (
	// TileData0 is the start of unsigned tile data (tiles 0-255).
	TileData0 uint16 = 0x8000
	// TileData1 is the start of the signed tile data region.
	TileData1 uint16 = 0x8800
	// TileData2 is the base used for signed tile indices.
	TileData2 uint16 = 0x9000

	// TileMap0 is background/window tile map 0.
	TileMap0 uint16 = 0x9800
	// TileMap1 is background/window tile map 1.
	TileMap1 uint16 = 0x9C00
)
