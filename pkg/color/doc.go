// Package color normalizes plot color specifications to hex strings.
//
// # Overview
//
// Plot options accept colors in whatever form is most convenient for the
// user: a CSS name ("Steel Blue"), a one-letter code ("r"), a hex string
// ("#f50"), a grey level (0.8), or an RGB sequence given either as fractions
// ([0.5, 0.5, 0.5]) or as 0-255 channel values ([255, 128, 0]). [Normalize]
// maps all of them to the one form renderers consume: "#" followed by six
// lowercase hex digits.
//
//	hex, err := color.Normalize("Steel Blue") // "#4682b4"
//	hex, err := color.Normalize([]float64{0.5, 0.5, 0.5}) // "#808080"
//
// # Percent Mode
//
// A sequence is read as fractions when any value is below 1; otherwise it is
// read as channel values. A sequence holding only 1s is therefore the
// near-black "#010101", while [0.5, 1, 1] is "#80ffff". Channels round half
// up and are clamped to the valid range.
//
// # Errors
//
// Every failure is an [errors.Error] with code [errors.ErrCodeInvalidColor]
// whose message names the failing rule: "invalid color abbreviation",
// "invalid color name", "invalid hex color", or "invalid color specification".
//
// # Dependencies
//
// Names resolve through [golang.org/x/image/colornames] (the SVG 1.1 / CSS3
// set) and channel rounding uses [github.com/lucasb-eyer/go-colorful].
//
// [errors.Error]: github.com/matzehuels/scoreplot/pkg/errors.Error
// [errors.ErrCodeInvalidColor]: github.com/matzehuels/scoreplot/pkg/errors.ErrCodeInvalidColor
package color
