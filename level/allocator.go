package level

import (
	"github.com/gorustyt/mftlevel/codec"
)

// ImageBuffer is a host-owned pixel destination. Samples must hold at least
// width*height*channels float32 values for the size it was created with.
type ImageBuffer interface {
	Samples() []float32
}

// ImageAllocator lets the hosting application own the concrete pixel buffer
// type, for example a texture object. When a Level loads with more than one
// worker, calls arrive from several goroutines at once.
type ImageAllocator interface {
	CreateImageBuffer(width, height, channels, size int, kind ImageKind) (ImageBuffer, error)
	ReleaseImageBuffer(kind ImageKind, buf ImageBuffer)
}

// HeapAllocator backs every channel with a *codec.Image.
type HeapAllocator struct{}

func (HeapAllocator) CreateImageBuffer(width, height, channels, size int, kind ImageKind) (ImageBuffer, error) {
	return codec.NewImage(width, height, channels), nil
}

func (HeapAllocator) ReleaseImageBuffer(kind ImageKind, buf ImageBuffer) {}
