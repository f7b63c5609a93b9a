package flags

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/pflag"
)

// ColorNRGBA is a color.NRGBA that implements pflag.Value.
type ColorNRGBA color.NRGBA

var _ pflag.Value = (*ColorNRGBA)(nil)

// MustParseColorNRGBA parses a hexadecimal color string and panics on error.
func MustParseColorNRGBA(s string) *ColorNRGBA {
	c, err := ParseColorNRGBA(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColorNRGBA parses a hexadecimal color string in the form RGB, RGBA,
// RRGGBB or RRGGBBAA. The leading '#' is optional.
func ParseColorNRGBA(s string) (*ColorNRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if strings.ContainsAny(hex, "+- ") {
		return nil, fmt.Errorf("invalid hexadecimal color %q", s)
	}

	var c ColorNRGBA
	var err error

	switch len(hex) {
	case 3, 4:
		var r, g, b, a uint8 = 0, 0, 0, 15
		if len(hex) == 3 {
			_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		} else {
			_, err = fmt.Sscanf(hex, "%1x%1x%1x%1x", &r, &g, &b, &a)
		}
		c = ColorNRGBA{r * 17, g * 17, b * 17, a * 17}
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
		c.A = 255
	case 8:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		return nil, fmt.Errorf("invalid hexadecimal color %q", s)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal color %q: %w", s, err)
	}

	return &c, nil
}

func (c *ColorNRGBA) Set(s string) error {
	cc, err := ParseColorNRGBA(s)
	if err != nil {
		return err
	}
	*c = *cc
	return nil
}

func (c *ColorNRGBA) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *ColorNRGBA) NRGBA() color.NRGBA {
	return color.NRGBA(*c)
}

func (c *ColorNRGBA) Type() string {
	return "color"
}
