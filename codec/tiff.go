package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/tiff"
)

const tiffScale = 0xffff

// TIFF stores samples as 16-bit unsigned integers. Values are clamped to
// [0, 1] and quantised, so round trips are exact only to 1/65535.
type TIFF struct{}

func (TIFF) Name() string      { return "tiff" }
func (TIFF) Extension() string { return "tif" }

func quantize(v float32) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return tiffScale
	}
	return uint16(v*tiffScale + 0.5)
}

func dequantize(v uint16) float32 {
	return float32(v) / tiffScale
}

func (TIFF) Encode(width, height, channels int, pix []float32) ([]byte, error) {
	if err := checkShape(width, height, channels, pix); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	rect := image.Rect(0, 0, width, height)
	var m image.Image
	switch channels {
	case 1:
		g := image.NewGray16(rect)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				g.SetGray16(x, y, color.Gray16{Y: quantize(pix[y*width+x])})
			}
		}
		m = g
	default:
		c := image.NewNRGBA64(rect)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				i := (y*width + x) * 3
				c.SetNRGBA64(x, y, color.NRGBA64{
					R: quantize(pix[i]),
					G: quantize(pix[i+1]),
					B: quantize(pix[i+2]),
					A: 0xffff,
				})
			}
		}
		m = c
	}
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, m, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func (TIFF) Decode(data []byte, alloc Allocator) error {
	cfg, err := tiff.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrDecode, cfg.Width, cfg.Height)
	}
	if err := checkPayload(cfg.Width, cfg.Height, 3); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	m, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()
	channels := 3
	switch m.(type) {
	case *image.Gray, *image.Gray16:
		channels = 1
	}
	if err := checkShape(width, height, channels, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	dst, err := allocate(alloc, width, height, channels)
	if err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * channels
			px := m.At(b.Min.X+x, b.Min.Y+y)
			if channels == 1 {
				dst[i] = dequantize(color.Gray16Model.Convert(px).(color.Gray16).Y)
				continue
			}
			c := color.NRGBA64Model.Convert(px).(color.NRGBA64)
			dst[i] = dequantize(c.R)
			dst[i+1] = dequantize(c.G)
			dst[i+2] = dequantize(c.B)
		}
	}
	return nil
}
