package terminal

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Glyphs holds the box drawing runes of one LineType
type Glyphs struct {
	TL, H, TR, V, BL, BR rune
}

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...]Glyphs{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

// GlyphsFor returns the glyph set for a line type, unknown types fall back to LineSingle
func GlyphsFor(line LineType) Glyphs {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return boxChars[line]
}
