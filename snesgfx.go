/*
Package snesgfx is a library for converting graphics and palettes between the
Super Nintendo native formats and ordinary image files.
*/
package snesgfx

import "log"

const defaultPalette = "palette.png"

// Converter performs file conversions, logging progress to its logger.
type Converter struct {
	logger  *log.Logger
	palette string
}

// Option configures a Converter.
type Option func(*Converter)

// WithPalette sets the palette image used to color tiles when converting
// from the console format in a paletted mode. Every pixel of the image, in
// row-major order, is a palette entry.
func WithPalette(file string) Option {
	return func(c *Converter) {
		c.palette = file
	}
}

// New returns a Converter logging to logger.
func New(logger *log.Logger, options ...Option) *Converter {
	c := &Converter{
		logger:  logger,
		palette: defaultPalette,
	}
	for _, o := range options {
		o(c)
	}
	return c
}
