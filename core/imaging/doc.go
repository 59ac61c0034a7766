// Package imaging turns archive texture bytes into resized image files.
//
// Decoding is pluggable through the Decoder interface:
//
//   - RasterDecoder handles plain PNG, JPEG, GIF, BMP, TIFF and WebP data with
//     the standard image registry.
//   - CommandDecoder pipes compiled textures through an external converter
//     and decodes whatever raster image it prints.
//
// Resize scales with a Catmull-Rom kernel and Encode writes JPEG or PNG.
package imaging
