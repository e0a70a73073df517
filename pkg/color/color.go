package color

import (
	stdcolor "image/color"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/scoreplot/pkg/errors"
)

// abbreviations maps single-letter plot color codes to color names.
var abbreviations = map[string]string{
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

var hexRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Normalize converts a color specification into a lowercase "#rrggbb" string.
//
// Accepted specifications, checked in this order:
//
//   - a numeric scalar v, treated as the sequence [v, v, v]
//   - a string starting with "#": a 3- or 6-digit hex color
//   - a one-letter string: an abbreviation (b g r c m y k w)
//   - any other string: a CSS color name, matched ignoring case and spaces
//   - a sequence of 1 or 3 numbers: fractions in [0, 1] if any value is
//     below 1, otherwise 0-255 channel values
//   - an [image/color.Color]
//
// Booleans and every other type are rejected. All failures carry
// [errors.ErrCodeInvalidColor].
func Normalize(spec any) (string, error) {
	if v, ok := scalar(spec); ok {
		return fromSequence([]float64{v, v, v}, spec)
	}

	switch s := spec.(type) {
	case string:
		return fromString(s)
	case stdcolor.Color:
		return fromColor(s)
	}

	if seq, ok := sequence(spec); ok {
		return fromSequence(seq, spec)
	}
	return "", invalidSpec(spec)
}

// MustNormalize is like [Normalize] but panics on invalid input.
// It is meant for package-level palettes built from literals.
func MustNormalize(spec any) string {
	hex, err := Normalize(spec)
	if err != nil {
		panic(err)
	}
	return hex
}

// Names returns the recognized color names in alphabetical order.
func Names() []string {
	return slices.Clone(colornames.Names)
}

func fromString(s string) (string, error) {
	if strings.HasPrefix(s, "#") {
		return fromHex(s)
	}

	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if utf8.RuneCountInString(name) == 1 {
		full, ok := abbreviations[name]
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidColor, "invalid color abbreviation: %s", name)
		}
		name = full
	}

	rgba, ok := colornames.Map[name]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidColor, "invalid color name: %s", name)
	}
	return fromColor(rgba)
}

// fromHex expands "#rgb" to "#rrggbb" and lowercases.
func fromHex(s string) (string, error) {
	if !hexRe.MatchString(s) {
		return "", errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %s", s)
	}
	s = strings.ToLower(s)
	if len(s) == 4 {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]}), nil
	}
	return s, nil
}

func fromColor(c stdcolor.Color) (string, error) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", invalidSpec(c)
	}
	return cf.Clamped().Hex(), nil
}

// fromSequence converts 1 or 3 channel values. orig is the caller's
// specification, used in error messages.
func fromSequence(vals []float64, orig any) (string, error) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", invalidSpec(orig)
		}
	}

	percent := slices.ContainsFunc(vals, func(v float64) bool { return v < 1 })
	if percent && len(vals) == 1 {
		vals = []float64{vals[0], vals[0], vals[0]}
	}
	if len(vals) != 3 {
		return "", invalidSpec(orig)
	}

	scale := 1.0
	if !percent {
		scale = 255
	}
	c := colorful.Color{R: vals[0] / scale, G: vals[1] / scale, B: vals[2] / scale}
	return c.Clamped().Hex(), nil
}

func invalidSpec(spec any) error {
	return errors.New(errors.ErrCodeInvalidColor, "invalid color specification: %v", spec)
}

// scalar reports whether v is a Go number. Booleans are not numbers.
func scalar(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// sequence flattens the list shapes Normalize accepts into float64s.
// []any comes from decoded TOML and JSON documents.
func sequence(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case [3]float64:
		return s[:], true
	case []float32:
		return convert(s), true
	case []int:
		return convert(s), true
	case [3]int:
		return convert(s[:]), true
	case []int64:
		return convert(s), true
	case []int32:
		return convert(s), true
	case []uint8:
		return convert(s), true
	case []any:
		out := make([]float64, 0, len(s))
		for _, e := range s {
			f, ok := scalar(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	return nil, false
}

type number interface {
	~int | ~int32 | ~int64 | ~uint8 | ~float32
}

func convert[T number](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
