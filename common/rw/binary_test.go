package rw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	w := NewBinWriter()
	w.WriteBytes([]byte("HEAD"))
	w.WriteInt8(7)
	w.WriteInt32(uint32(70000))
	w.WriteInt32(-3)
	w.WriteFloat32s([]float32{1.5, -2.25})
	w.WriteBytes([]byte{9, 9})

	r := NewBinReader(w.GetWriteBytes())
	assert.True(t, r.Magic("HEAD"))
	assert.Equal(t, uint8(7), r.ReadUInt8())
	assert.Equal(t, uint32(70000), r.ReadUInt32())
	assert.Equal(t, uint32(0xfffffffd), r.ReadUInt32())
	fs := make([]float32, 2)
	r.ReadFloat32s(fs)
	assert.Equal(t, []float32{1.5, -2.25}, fs)
	assert.Equal(t, 2, r.Size())
	assert.Equal(t, []byte{9, 9}, r.ReadBytes(r.Size()))
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Size())
}

func TestLittleEndian(t *testing.T) {
	w := NewBinWriter()
	w.WriteInt32(1)
	w.WriteFloat32s([]float32{1})
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0x80, 0x3f}, w.GetWriteBytes())
}

func TestShortRead(t *testing.T) {
	r := NewBinReader([]byte{1, 2})
	assert.Equal(t, uint32(0), r.ReadUInt32())
	require.ErrorIs(t, r.Err(), ErrShortBuffer)
	// sticky
	assert.Equal(t, uint8(0), r.ReadUInt8())
	require.ErrorIs(t, r.Err(), ErrShortBuffer)
}

func TestShortFloat32s(t *testing.T) {
	w := NewBinWriter()
	w.WriteFloat32s([]float32{4})
	fs := []float32{-1, -1}
	r := NewBinReader(w.GetWriteBytes())
	r.ReadFloat32s(fs)
	assert.Equal(t, []float32{4, 0}, fs)
	assert.ErrorIs(t, r.Err(), ErrShortBuffer)
}

func TestMagicMismatch(t *testing.T) {
	r := NewBinReader([]byte("ABCD"))
	assert.False(t, r.Magic("ABCE"))
	require.NoError(t, r.Err())
}
