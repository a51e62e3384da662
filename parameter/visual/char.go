package visual

// HalfChars provides vertical half-cell resolution
// Bitmap encoding: bit0=top, bit1=bottom
var HalfChars = [4]rune{
	' ', // 00 - empty
	'▀', // 01 - top half only (▀)
	'▄', // 10 - bottom half only (▄)
	'█', // 11 - both halves (█)
}

// Obstacle glyphs, drawn over the fill of cells that are wide enough
const (
	SpringUpChar    = '▲'
	SpringLeftChar  = '◀'
	SpringRightChar = '▶'
	TeleporterChar  = '◎'
	CannonChar      = '◆'
	HomingChar      = '◈'
	BulletChar      = '•'
	MissileChar     = '▸'
	GoalChar        = '★'
	LethalChar      = '▲'
)
