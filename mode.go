package snesgfx

import (
	"path/filepath"
	"strings"

	"github.com/bodgit/snesgfx/planar"
	"github.com/pkg/errors"
)

var (
	errUnknownMode = errors.New("snesgfx: unknown mode")
	// ErrDirection is returned when the direction can't be inferred from
	// the filenames
	ErrDirection = errors.New("snesgfx: can't infer conversion direction")
)

// Mode is the kind of conversion to perform.
type Mode int

// Supported modes
const (
	ModePalette Mode = iota + 1
	ModeGfx2
	ModeGfx4
	ModeGfx8
	ModeGfx4Paletted
	ModeGfx4Interleaved
	ModeQuantize
)

var modeNames = map[Mode]string{
	ModePalette:         "pal",
	ModeGfx2:            "gfx2",
	ModeGfx4:            "gfx4",
	ModeGfx8:            "gfx8",
	ModeGfx4Paletted:    "gfx4p",
	ModeGfx4Interleaved: "gfx4pb",
	ModeQuantize:        "quantize",
}

// Modes returns the names of all supported modes.
func Modes() []string {
	names := make([]string, 0, len(modeNames))
	for m := ModePalette; m <= ModeQuantize; m++ {
		names = append(names, modeNames[m])
	}
	return names
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, errors.Wrapf(errUnknownMode, "%q", s)
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

func (m Mode) format() planar.Format {
	switch m {
	case ModeGfx2:
		return planar.Planar2
	case ModeGfx8:
		return planar.Planar8
	}
	return planar.Planar4
}

// Direction is the direction of a conversion.
type Direction int

// Conversion directions
const (
	FromConsole Direction = iota
	ToConsole
)

func (d Direction) String() string {
	if d == ToConsole {
		return "to snes"
	}
	return "from snes"
}

func isPNG(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".png")
}

// InferDirection guesses the direction from the filenames; writing a PNG
// file means converting from the console format, otherwise reading a PNG
// file means converting to it.
func InferDirection(in, out string) (Direction, error) {
	switch {
	case isPNG(out):
		return FromConsole, nil
	case isPNG(in):
		return ToConsole, nil
	}
	return 0, ErrDirection
}
