// Package pitch holds the pitch-model data the plotting helpers depend on.
//
// Accidentals are written in ASCII in pitch names ("C#4", "B-4", "E~") and
// shown with Unicode glyphs in plot labels. [Modifiers] is the ordered table
// linking the two spellings.
package pitch

// Modifier pairs an ASCII accidental modifier with its display glyph.
type Modifier struct {
	Name  string // Accidental name, e.g. "double-flat"
	ASCII string // Modifier as written in pitch names
	Glyph string // Unicode display form
}

// Modifiers lists every accidental modifier in lookup order.
// Natural has no ASCII spelling and is kept for completeness.
var Modifiers = []Modifier{
	{Name: "natural", ASCII: "", Glyph: "♮"},
	{Name: "sharp", ASCII: "#", Glyph: "♯"},
	{Name: "double-sharp", ASCII: "##", Glyph: "\U0001d12a"},
	{Name: "triple-sharp", ASCII: "###", Glyph: "♯\U0001d12a"},
	{Name: "quadruple-sharp", ASCII: "####", Glyph: "\U0001d12a\U0001d12a"},
	{Name: "flat", ASCII: "-", Glyph: "♭"},
	{Name: "double-flat", ASCII: "--", Glyph: "\U0001d12b"},
	{Name: "triple-flat", ASCII: "---", Glyph: "♭\U0001d12b"},
	{Name: "quadruple-flat", ASCII: "----", Glyph: "\U0001d12b\U0001d12b"},
	{Name: "half-sharp", ASCII: "~", Glyph: "\U0001d132"},
	{Name: "one-and-a-half-sharp", ASCII: "#~", Glyph: "\U0001d130"},
	{Name: "half-flat", ASCII: "`", Glyph: "\U0001d133"},
	{Name: "one-and-a-half-flat", ASCII: "-`", Glyph: "\U0001d12d"},
}

// GlyphFor returns the display glyph for an ASCII modifier.
func GlyphFor(modifier string) (string, bool) {
	for _, m := range Modifiers {
		if m.ASCII == modifier {
			return m.Glyph, true
		}
	}
	return "", false
}
