package encode

import (
	"github.com/fatih/color"

	"github.com/hrytsenko/json-data/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	able.Type = ir.BoolType
	colors.Map[able] = color.YellowString

	able.Type = ir.NullType
	colors.Map[able] = color.HiBlackString

	return colors
}

func (c *Colors) render(t ir.Type, attr ColorAttr, s string) string {
	fn, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		fn = c.Default
	}
	if fn == nil {
		return s
	}
	return fn("%s", s)
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}
