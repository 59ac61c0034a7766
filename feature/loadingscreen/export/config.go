package export

import (
	"fmt"
	"path/filepath"
	"runtime"

	"loadscreen-export/core/imaging"
	"loadscreen-export/core/reconcile"
)

// Config holds the export settings.
type Config struct {
	// OutDir receives the record documents; images go to OutDir/ImageDir.
	OutDir string `mapstructure:"out_dir" default:"."`
	// ImageDir is the image sub directory.
	ImageDir string `mapstructure:"image_dir" default:"out"`
	// Width of the written images.
	Width int `mapstructure:"width" default:"1920"`
	// Height of the written images.
	Height int `mapstructure:"height" default:"1080"`
	// Format is jpeg or png.
	Format string `mapstructure:"format" default:"jpeg"`
	// Quality is the JPEG quality, 1 to 100.
	Quality int `mapstructure:"quality" default:"90"`
	// Concurrency bounds parallel exports; 0 uses the CPU count.
	Concurrency int `mapstructure:"concurrency" default:"0"`
	// TieBreak is shortest, first or error.
	TieBreak string `mapstructure:"tie_break" default:"shortest"`
	// DecoderCommand converts compiled textures to a raster image on stdout.
	DecoderCommand string `mapstructure:"decoder_command" default:""`
}

// ImagePath returns the directory images are written to.
func (c Config) ImagePath() string {
	return filepath.Join(c.OutDir, c.ImageDir)
}

// Workers returns the effective concurrency.
func (c Config) Workers() int {
	if c.Concurrency <= 0 {
		return runtime.NumCPU()
	}
	return c.Concurrency
}

// Validate checks the settings and returns the parsed format and tie-break.
func (c Config) Validate() (imaging.Format, reconcile.TieBreak, error) {
	format, err := imaging.ParseFormat(c.Format)
	if err != nil {
		return "", "", err
	}
	tb := reconcile.TieBreak(c.TieBreak)
	if c.TieBreak == "" {
		tb = reconcile.TieBreakShortest
	}
	if !tb.Valid() {
		return "", "", fmt.Errorf("unknown tie break %q (want shortest, first or error)", c.TieBreak)
	}
	if c.Width < 0 || c.Height < 0 {
		return "", "", fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	return format, tb, nil
}
