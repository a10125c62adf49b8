package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorustyt/mftlevel/common/rw"
)

func gradient(width, height, channels int, scale float32) []float32 {
	pix := make([]float32, width*height*channels)
	for i := range pix {
		pix[i] = float32(i%97) / 96 * scale
	}
	return pix
}

func TestFloatRoundTrip(t *testing.T) {
	for _, channels := range []int{1, 3} {
		pix := gradient(7, 5, channels, 40)
		pix[0] = -3.5
		pix[1] = float32(math.Inf(1))

		data, err := Float{}.Encode(7, 5, channels, pix)
		require.NoError(t, err)

		img, err := Decode(Float{}, data)
		require.NoError(t, err)
		assert.Equal(t, 7, img.Width)
		assert.Equal(t, 5, img.Height)
		assert.Equal(t, channels, img.Channels)
		assert.Equal(t, pix, img.Pix, "lossless path must be bit exact")
	}
}

func TestTIFFRoundTrip(t *testing.T) {
	for _, channels := range []int{1, 3} {
		pix := gradient(9, 4, channels, 1)

		data, err := TIFF{}.Encode(9, 4, channels, pix)
		require.NoError(t, err)

		img, err := Decode(TIFF{}, data)
		require.NoError(t, err)
		assert.Equal(t, 9, img.Width)
		assert.Equal(t, 4, img.Height)
		assert.Equal(t, channels, img.Channels)
		require.Len(t, img.Pix, len(pix))
		assert.InDeltaSlice(t, pix, img.Pix, 1.0/65535)
	}
}

func TestTIFFClamps(t *testing.T) {
	data, err := TIFF{}.Encode(2, 1, 1, []float32{-1, 5})
	require.NoError(t, err)
	img, err := Decode(TIFF{}, data)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, img.Pix)
}

func TestAllocatorArguments(t *testing.T) {
	data, err := Float{}.Encode(4, 2, 3, gradient(4, 2, 3, 1))
	require.NoError(t, err)

	var gotW, gotH, gotC, gotSize int
	dst := make([]float32, 24)
	err = Float{}.Decode(data, func(w, h, c, size int) ([]float32, error) {
		gotW, gotH, gotC, gotSize = w, h, c, size
		return dst, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3, 96}, []int{gotW, gotH, gotC, gotSize})
	assert.Equal(t, gradient(4, 2, 3, 1), dst)
}

func TestAllocatorFailure(t *testing.T) {
	for _, c := range []Codec{Float{}, TIFF{}} {
		data, err := c.Encode(2, 2, 1, gradient(2, 2, 1, 1))
		require.NoError(t, err)

		boom := errors.New("no texture memory")
		err = c.Decode(data, func(w, h, ch, size int) ([]float32, error) { return nil, boom })
		assert.ErrorIs(t, err, ErrDecode, c.Name())

		err = c.Decode(data, func(w, h, ch, size int) ([]float32, error) { return make([]float32, 1), nil })
		assert.ErrorIs(t, err, ErrDecode, c.Name())
	}
}

func TestDecodeCorrupt(t *testing.T) {
	for _, c := range []Codec{Float{}, TIFF{}} {
		_, err := Decode(c, []byte("definitely not an image"))
		assert.ErrorIs(t, err, ErrDecode, c.Name())
		_, err = Decode(c, nil)
		assert.ErrorIs(t, err, ErrDecode, c.Name())
	}

	data, err := Float{}.Encode(3, 3, 1, gradient(3, 3, 1, 1))
	require.NoError(t, err)
	_, err = Decode(Float{}, data[:len(data)-4])
	assert.ErrorIs(t, err, ErrDecode)
	_, err = Decode(Float{}, data[:10])
	assert.ErrorIs(t, err, ErrDecode)

	huge := func(width, height uint32, channels uint8) []byte {
		w := rw.NewBinWriter()
		w.WriteBytes([]byte(floatMagic))
		w.WriteInt32(width)
		w.WriteInt32(height)
		w.WriteInt8(channels)
		w.WriteBytes([]byte("zstd garbage"))
		return w.GetWriteBytes()
	}
	for _, hdr := range [][]byte{
		huge(0xffffffff, 0xffffffff, 3),
		huge(0xffffffff, 1, 1),
		huge(1<<16, 1<<16, 3),
	} {
		assert.NotPanics(t, func() {
			_, err = Decode(Float{}, hdr)
		})
		assert.ErrorIs(t, err, ErrDecode)
		assert.ErrorContains(t, err, "payload limit")
	}
}

func TestCheckPayload(t *testing.T) {
	assert.NoError(t, checkPayload(4096, 4096, 3))
	assert.NoError(t, checkPayload(maxPayload/SampleSize, 1, 1))
	assert.Error(t, checkPayload(maxPayload/SampleSize+1, 1, 1))
	assert.Error(t, checkPayload(1<<16, 1<<16, 1))
	assert.Error(t, checkPayload(1<<15, 1<<15, 3))
}

func TestEncodeRejectsShape(t *testing.T) {
	for _, c := range []Codec{Float{}, TIFF{}} {
		_, err := c.Encode(2, 2, 4, make([]float32, 16))
		assert.ErrorIs(t, err, ErrEncode)
		_, err = c.Encode(0, 2, 1, nil)
		assert.ErrorIs(t, err, ErrEncode)
		_, err = c.Encode(2, 2, 3, make([]float32, 5))
		assert.ErrorIs(t, err, ErrEncode)
	}
}

func TestRegistry(t *testing.T) {
	c, err := ByName("mfi")
	require.NoError(t, err)
	assert.Equal(t, "mfi", c.Extension())

	c, err = ByName("tiff")
	require.NoError(t, err)
	assert.Equal(t, "tif", c.Extension())

	_, err = ByName("jxl")
	assert.ErrorIs(t, err, ErrUnknownCodec)
	assert.Equal(t, []string{"mfi", "tiff"}, Names())
}
