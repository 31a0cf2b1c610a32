package draglist

// Semigraphics provides an easy way to access unicode characters for drawing.
const (
	// Box drawing.
	BoxDrawingsLightHorizontal      rune = '─' // ─
	BoxDrawingsLightVertical        rune = '│' // │
	BoxDrawingsLightDownAndRight    rune = '┌' // ┌
	BoxDrawingsLightDownAndLeft     rune = '┐' // ┐
	BoxDrawingsLightUpAndRight      rune = '└' // └
	BoxDrawingsLightUpAndLeft       rune = '┘' // ┘
	BoxDrawingsLightArcDownAndRight rune = '╭' // ╭
	BoxDrawingsLightArcDownAndLeft  rune = '╮' // ╮
	BoxDrawingsLightArcUpAndLeft    rune = '╯' // ╯
	BoxDrawingsLightArcUpAndRight   rune = '╰' // ╰

	// Drop-position marker.
	SemigraphicsBlackCircle rune = '●' // ●

	SemigraphicsHorizontalEllipsis rune = '…' // …
)
