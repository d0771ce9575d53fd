package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Harbour palette.
var (
	BG            = rl.NewColor(0x0B, 0x1B, 0x2B, 255) // #0B1B2B
	Sea           = rl.NewColor(0x1F, 0x5E, 0x8C, 255) // #1F5E8C
	SeaDeep       = rl.NewColor(0x12, 0x3A, 0x5C, 255) // #123A5C
	Panel         = rl.NewColor(0x14, 0x24, 0x33, 235)
	PanelRaised   = rl.NewColor(0x1B, 0x30, 0x44, 245)
	Border        = rl.NewColor(0x3A, 0x55, 0x6B, 255) // #3A556B
	Divider       = rl.NewColor(0x2A, 0x40, 0x52, 255)
	TextPrimary   = rl.NewColor(0xEE, 0xF2, 0xF0, 255) // #EEF2F0
	TextSecondary = rl.NewColor(0xA9, 0xBC, 0xC8, 255)
	TextMuted     = rl.NewColor(0x77, 0x8C, 0x99, 255)
	AccentBuoy    = rl.NewColor(0xF2, 0x6B, 0x3A, 255) // #F26B3A
	AccentFoam    = rl.NewColor(0x7F, 0xD1, 0xC7, 255) // #7FD1C7
	Warning       = rl.NewColor(0xE8, 0xB9, 0x4A, 255)
	Danger        = rl.NewColor(0xD6, 0x4B, 0x4B, 255)
	DisabledPanel = rl.NewColor(0x10, 0x1C, 0x27, 220)
	DisabledText  = TextMuted
)
