package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os/exec"
	"strings"

	// registered formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned when data is not in a decodable format.
var ErrUnsupported = errors.New("unsupported image data")

// Decoder turns the raw bytes of an archive entry into an image.
type Decoder interface {
	Decode(ctx context.Context, name string, data []byte) (image.Image, error)
}

// RasterDecoder decodes data with the registered image formats.
type RasterDecoder struct{}

// Decode implements Decoder.
func (RasterDecoder) Decode(ctx context.Context, name string, data []byte) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// CommandDecoder runs an external converter that reads the texture on stdin
// and writes a raster image to stdout.
type CommandDecoder struct {
	// Command is split on spaces; the first field is the program.
	Command string
	// Next decodes the converter output. Defaults to RasterDecoder.
	Next Decoder
}

// NewCommandDecoder returns a decoder for command, or nil when command is blank.
func NewCommandDecoder(command string) *CommandDecoder {
	if strings.TrimSpace(command) == "" {
		return nil
	}
	return &CommandDecoder{Command: command, Next: RasterDecoder{}}
}

// Decode implements Decoder.
func (d *CommandDecoder) Decode(ctx context.Context, name string, data []byte) (image.Image, error) {
	fields := strings.Fields(d.Command)
	if len(fields) == 0 {
		return nil, errors.New("empty decoder command")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: decoder command: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}

	next := d.Next
	if next == nil {
		next = RasterDecoder{}
	}
	return next.Decode(ctx, name, stdout.Bytes())
}

// Chain tries each decoder in order until one succeeds with a format it
// understands. Errors other than ErrUnsupported stop the chain.
type Chain []Decoder

// Decode implements Decoder.
func (c Chain) Decode(ctx context.Context, name string, data []byte) (image.Image, error) {
	err := fmt.Errorf("%s: %w", name, ErrUnsupported)
	for _, d := range c {
		if d == nil {
			continue
		}
		var img image.Image
		img, err = d.Decode(ctx, name, data)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return nil, err
		}
	}
	return nil, err
}
