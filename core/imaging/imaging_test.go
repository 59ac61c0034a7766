package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRasterDecoder(t *testing.T) {
	img, err := RasterDecoder{}.Decode(context.Background(), "a.png", pngBytes(t, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	_, err = RasterDecoder{}.Decode(context.Background(), "a.vtex_c", []byte("VTEX compiled"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestChain(t *testing.T) {
	boom := errors.New("boom")
	failing := decoderFunc(func(context.Context, string, []byte) (image.Image, error) { return nil, boom })

	_, err := Chain{RasterDecoder{}, failing}.Decode(context.Background(), "x", []byte("junk"))
	assert.ErrorIs(t, err, boom)

	img, err := Chain{nil, RasterDecoder{}}.Decode(context.Background(), "x", pngBytes(t, 2, 2))
	require.NoError(t, err)
	assert.NotNil(t, img)

	_, err = Chain{}.Decode(context.Background(), "x", nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNewCommandDecoder_Blank(t *testing.T) {
	assert.Nil(t, NewCommandDecoder("  "))
	assert.NotNil(t, NewCommandDecoder("vrf-decompile --stdin"))
}

func TestResizeAndEncode(t *testing.T) {
	src, err := RasterDecoder{}.Decode(context.Background(), "a.png", pngBytes(t, 16, 9))
	require.NoError(t, err)

	out := Resize(src, 32, 18)
	assert.Equal(t, image.Rect(0, 0, 32, 18), out.Bounds())

	for _, f := range []Format{FormatJPEG, FormatPNG} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, out, f, 90))
		back, format, err := image.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, string(f), format)
		assert.Equal(t, out.Bounds(), back.Bounds())
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JPG")
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

type decoderFunc func(context.Context, string, []byte) (image.Image, error)

func (f decoderFunc) Decode(ctx context.Context, name string, data []byte) (image.Image, error) {
	return f(ctx, name, data)
}
