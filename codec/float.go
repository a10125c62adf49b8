package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/gorustyt/mftlevel/common/rw"
)

const floatMagic = "MFI1"

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	zstdErr  error
)

func zstdCoders() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEnc, zstdErr = zstd.NewWriter(nil)
		if zstdErr != nil {
			return
		}
		zstdDec, zstdErr = zstd.NewReader(nil)
	})
	return zstdEnc, zstdDec, zstdErr
}

// Float is a lossless container for float32 samples.
//
//	magic   "MFI1"
//	width   uint32
//	height  uint32
//	chans   uint8
//	payload zstd(little-endian float32 samples)
type Float struct{}

func (Float) Name() string      { return "mfi" }
func (Float) Extension() string { return "mfi" }

func (Float) Encode(width, height, channels int, pix []float32) ([]byte, error) {
	if err := checkShape(width, height, channels, pix); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	enc, _, err := zstdCoders()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	samples := rw.NewBinWriter()
	samples.WriteFloat32s(pix[:width*height*channels])

	w := rw.NewBinWriter()
	w.WriteBytes([]byte(floatMagic))
	w.WriteInt32(uint32(width))
	w.WriteInt32(uint32(height))
	w.WriteInt8(uint8(channels))
	w.WriteBytes(enc.EncodeAll(samples.GetWriteBytes(), nil))
	return w.GetWriteBytes(), nil
}

func (Float) Decode(data []byte, alloc Allocator) error {
	r := rw.NewBinReader(data)
	if !r.Magic(floatMagic) {
		return fmt.Errorf("%w: not an %s image", ErrDecode, floatMagic)
	}
	w32, h32 := r.ReadUInt32(), r.ReadUInt32()
	channels := int(r.ReadUInt8())
	if err := r.Err(); err != nil {
		return fmt.Errorf("%w: header: %v", ErrDecode, err)
	}
	if w32 > maxPayload || h32 > maxPayload {
		return fmt.Errorf("%w: %dx%d exceeds payload limit", ErrDecode, w32, h32)
	}
	width, height := int(w32), int(h32)
	if err := checkShape(width, height, channels, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := checkPayload(width, height, channels); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	n := width * height * channels
	_, dec, err := zstdCoders()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	raw, err := dec.DecodeAll(r.ReadBytes(r.Size()), make([]byte, 0, n*SampleSize))
	if err != nil {
		return fmt.Errorf("%w: payload: %v", ErrDecode, err)
	}
	if len(raw) != n*SampleSize {
		return fmt.Errorf("%w: payload has %d bytes, want %d", ErrDecode, len(raw), n*SampleSize)
	}
	dst, err := allocate(alloc, width, height, channels)
	if err != nil {
		return err
	}
	rw.NewBinReader(raw).ReadFloat32s(dst[:n])
	return nil
}
