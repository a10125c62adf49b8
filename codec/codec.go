// Package codec encodes and decodes the single still images baked for each
// viewpoint. Samples are float32, interleaved, one or three channels.
package codec

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEncode       = errors.New("codec: encode failed")
	ErrDecode       = errors.New("codec: decode failed")
	ErrUnknownCodec = errors.New("codec: unknown codec")
)

// Allocator hands the decoder a destination for width*height*channels
// samples. size is the byte size of that destination.
type Allocator func(width, height, channels, size int) ([]float32, error)

type Codec interface {
	Name() string
	// Extension is the file extension without the dot.
	Extension() string
	Encode(width, height, channels int, pix []float32) ([]byte, error)
	Decode(data []byte, alloc Allocator) error
}

const SampleSize = 4

// Image is a heap-backed decode destination.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []float32
}

func NewImage(width, height, channels int) *Image {
	return &Image{Width: width, Height: height, Channels: channels, Pix: make([]float32, width*height*channels)}
}

func (img *Image) Samples() []float32 {
	return img.Pix
}

// Decode decodes data into a new Image.
func Decode(c Codec, data []byte) (*Image, error) {
	var img *Image
	err := c.Decode(data, func(width, height, channels, size int) ([]float32, error) {
		img = NewImage(width, height, channels)
		return img.Pix, nil
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func checkShape(width, height, channels int, pix []float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	if channels != 1 && channels != 3 {
		return fmt.Errorf("unsupported channel count %d", channels)
	}
	if pix != nil && len(pix) < width*height*channels {
		return fmt.Errorf("have %d samples, need %d", len(pix), width*height*channels)
	}
	return nil
}

// maxPayload bounds the decoded size a header may claim, 1 GiB.
const maxPayload = 1 << 30

// checkPayload rejects headers whose sample count would exceed maxPayload.
// width, height and channels come from untrusted headers, so the bound is
// checked by division before any product is formed.
func checkPayload(width, height, channels int) error {
	limit := maxPayload / SampleSize
	if width > limit || height > limit/width || channels > limit/(width*height) {
		return fmt.Errorf("%dx%dx%d exceeds payload limit", width, height, channels)
	}
	return nil
}

func allocate(alloc Allocator, width, height, channels int) ([]float32, error) {
	n := width * height * channels
	dst, err := alloc(width, height, channels, n*SampleSize)
	if err != nil {
		return nil, fmt.Errorf("%w: allocate %dx%dx%d: %v", ErrDecode, width, height, channels, err)
	}
	if len(dst) < n {
		return nil, fmt.Errorf("%w: allocator returned %d samples, need %d", ErrDecode, len(dst), n)
	}
	return dst, nil
}

var registry = map[string]Codec{}

func Register(c Codec) {
	registry[c.Name()] = c
}

// ByName returns a registered codec.
func ByName(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownCodec, name, Names())
	}
	return c, nil
}

func Names() []string {
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func init() {
	Register(Float{})
	Register(TIFF{})
}
