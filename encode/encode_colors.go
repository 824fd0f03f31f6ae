package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	NullColor
	SepColor
)

type Colors struct {
	Map map[ColorAttr][]color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr][]color.Attribute{
			FieldColor:  {color.FgHiBlue},
			StringColor: {color.FgGreen},
			NumberColor: {color.FgCyan},
			BoolColor:   {color.FgHiMagenta},
			NullColor:   {color.FgHiBlack},
			SepColor:    {color.FgMagenta},
		},
	}
}

// Color renders s with the attributes of a, or returns it unchanged when
// c is nil or colour output is disabled.
func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	attrs, ok := c.Map[a]
	if !ok {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

// escapes returns the raw prefix and suffix sequences for a, used where
// text is coloured by another printer.
func (c *Colors) escapes(a ColorAttr) (string, string) {
	if c == nil || color.NoColor {
		return "", ""
	}
	attrs, ok := c.Map[a]
	if !ok || len(attrs) == 0 {
		return "", ""
	}
	codes := make([]string, len(attrs))
	for i, attr := range attrs {
		codes[i] = fmt.Sprint(int(attr))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m", fmt.Sprintf("\x1b[%dm", color.Reset)
}
