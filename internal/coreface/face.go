// Package coreface implements the Face model: foreground/background color
// plus text attributes, with Kakoune's overlay semantics for combining a
// highlighter's face with whatever was already on an atom.
package coreface

import "fmt"

// Attribute is a bitset of text attributes.
type Attribute uint16

const (
	AttrNone      Attribute = 0
	Bold          Attribute = 1 << 0
	Italic        Attribute = 1 << 1
	Underline     Attribute = 1 << 2
	Reverse       Attribute = 1 << 3
	Blink         Attribute = 1 << 4
	Dim           Attribute = 1 << 5
	Strikethrough Attribute = 1 << 6
)

// Has reports whether all bits of other are set.
func (a Attribute) Has(other Attribute) bool { return a&other == other }

// With returns a with other's bits set.
func (a Attribute) With(other Attribute) Attribute { return a | other }

// Without returns a with other's bits cleared.
func (a Attribute) Without(other Attribute) Attribute { return a &^ other }

// ColorKind distinguishes how a Color's value should be interpreted.
type ColorKind uint8

const (
	// ColorKindDefault means "inherit the terminal/theme default", never
	// overriding whatever color is already applied.
	ColorKindDefault ColorKind = iota
	// ColorKindNamed is a lookup into a FaceRegistry's palette, e.g.
	// "red" or a theme-defined name like "string".
	ColorKindNamed
	// ColorKindRGB is a concrete 24-bit color.
	ColorKindRGB
)

// Color is a face color: either "default" (no override), a named palette
// entry, or a concrete RGB triple.
type Color struct {
	Kind ColorKind
	Name string
	R, G, B uint8
}

// ColorDefault is the "inherit" color.
var ColorDefault = Color{Kind: ColorKindDefault}

// NamedColor constructs a palette-name color.
func NamedColor(name string) Color { return Color{Kind: ColorKindNamed, Name: name} }

// RGB constructs a concrete color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorKindRGB, R: r, G: g, B: b} }

// IsDefault reports whether c means "no override".
func (c Color) IsDefault() bool { return c.Kind == ColorKindDefault }

func (c Color) String() string {
	switch c.Kind {
	case ColorKindDefault:
		return "default"
	case ColorKindNamed:
		return c.Name
	case ColorKindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return "?"
	}
}

// Face is a foreground color, background color, and attribute set.
type Face struct {
	FG    Color
	BG    Color
	Attrs Attribute
}

// DefaultFace has default fg, default bg, and no attributes.
var DefaultFace = Face{FG: ColorDefault, BG: ColorDefault, Attrs: AttrNone}

// IsDefault reports whether f applies no override at all.
func (f Face) IsDefault() bool {
	return f.FG.IsDefault() && f.BG.IsDefault() && f.Attrs == AttrNone
}

// Overlay combines f (the base) with on (applied on top), following
// Kakoune's face-merge rule: a non-default color in "on" replaces the base
// color, attributes are OR-combined. This is grounded on
// core.Style.Merge from the teacher and mirrors Face::operator| in the
// original highlighter faces.
func (f Face) Overlay(on Face) Face {
	result := f
	if !on.FG.IsDefault() {
		result.FG = on.FG
	}
	if !on.BG.IsDefault() {
		result.BG = on.BG
	}
	result.Attrs = result.Attrs.With(on.Attrs)
	return result
}

// Equal reports whether f and other are the same face.
func (f Face) Equal(other Face) bool {
	return f.FG == other.FG && f.BG == other.BG && f.Attrs == other.Attrs
}
