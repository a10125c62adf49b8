package rw

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var ErrShortBuffer = errors.New("rw: short buffer")

type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
	err     error
}

func NewBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewBinReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

// Err returns the first read failure. Reads after a failure return zero values.
func (w *ReaderWriter) Err() error {
	return w.err
}

func (w *ReaderWriter) read(n int) []byte {
	if w.err != nil {
		return w.dataBuf[:0]
	}
	if w.rw.Len() < n {
		w.err = fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, n, w.rw.Len())
		return w.dataBuf[:0]
	}
	return w.rw.Next(n)
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	b := w.read(1)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	b := w.read(4)
	if len(b) == 0 {
		return 0
	}
	return w.order.Uint32(b)
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = math.Float32frombits(w.ReadUInt32())
	}
}

// ReadBytes returns the next n bytes. The slice aliases the reader's buffer.
func (w *ReaderWriter) ReadBytes(n int) []byte {
	return w.read(n)
}

func (w *ReaderWriter) Magic(magic string) bool {
	b := w.read(len(magic))
	return len(b) == len(magic) && string(b) == magic
}

func (w *ReaderWriter) WriteInt8(v uint8) {
	w.rw.WriteByte(v)
}

func (w *ReaderWriter) WriteInt32(v interface{}) {
	switch value := v.(type) {
	case int32:
		w.order.PutUint32(w.dataBuf, uint32(value))
	case int:
		w.order.PutUint32(w.dataBuf, uint32(value))
	case uint32:
		w.order.PutUint32(w.dataBuf, value)
	default:
		panic("not impl")
	}
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32s(value []float32) {
	for _, tmp := range value {
		w.order.PutUint32(w.dataBuf, math.Float32bits(tmp))
		w.rw.Write(w.dataBuf[:4])
	}
}

func (w *ReaderWriter) WriteBytes(b []byte) {
	w.rw.Write(b)
}

func (w *ReaderWriter) GetWriteBytes() (res []byte) {
	res = w.rw.Bytes()
	return res
}

func (w *ReaderWriter) Size() int {
	return w.rw.Len()
}
