package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/gorustyt/mftlevel/codec"
	"github.com/gorustyt/mftlevel/common"
)

// ViewResource is one viewpoint: camera metadata copied from the level table
// plus the decoded image channels. Image data is loaded and unloaded by the
// owning Level; other goroutines may read it once Load has returned.
type ViewResource struct {
	id         int
	name       string
	transform  common.Mat4
	width      int
	height     int
	fov        float32
	croppedFov float32
	aspect     float32
	maxPan     float32
	maxTilt    float32
	adjacent   []int

	alloc    ImageAllocator
	required kindMask

	mu      sync.RWMutex
	buffers [numKinds]ImageBuffer
	// populated holds one bit per ImageKind whose buffer is filled.
	populated atomic.Uint32
}

func newViewResource(id int, rec ViewRecord, kinds []ImageKind, alloc ImageAllocator) *ViewResource {
	v := &ViewResource{
		id:         id,
		name:       rec.Name(),
		transform:  common.Mat4FromRowMajor(rec.WorldTransform()),
		fov:        rec.FieldOfView(),
		croppedFov: rec.CroppedFieldOfView(),
		aspect:     rec.Aspect(),
		maxPan:     rec.MaxPan(),
		maxTilt:    rec.MaxTilt(),
		adjacent:   rec.AdjacentViews(),
		alloc:      alloc,
		required:   maskOf(kinds),
	}
	v.width, v.height = rec.Resolution()
	if v.croppedFov == 0 {
		v.croppedFov = v.fov
	}
	if v.aspect == 0 && v.height > 0 {
		v.aspect = float32(v.width) / float32(v.height)
	}
	return v
}

func (v *ViewResource) ID() int {
	return v.id
}

func (v *ViewResource) Name() string {
	return v.name
}

// Transform is the camera-to-world matrix in the level's own right-handed
// convention.
func (v *ViewResource) Transform() common.Mat4 {
	return v.transform
}

func (v *ViewResource) Position() common.Vec3 {
	return v.transform.Col(3).Vec3()
}

func (v *ViewResource) Resolution() (width, height int) {
	return v.width, v.height
}

// FieldOfView is the uncropped field of view in radians.
func (v *ViewResource) FieldOfView() float32 {
	return v.fov
}

func (v *ViewResource) CroppedFieldOfView() float32 {
	return v.croppedFov
}

func (v *ViewResource) Aspect() float32 {
	return v.aspect
}

func (v *ViewResource) MaxPan() float32 {
	return v.maxPan
}

func (v *ViewResource) MaxTilt() float32 {
	return v.maxTilt
}

func (v *ViewResource) AdjacentViews() []int {
	return append([]int(nil), v.adjacent...)
}

func (v *ViewResource) RequiredKinds() []ImageKind {
	return v.required.kinds()
}

// IsDataLoaded reports whether every required channel is populated. With no
// required channels it is always true.
func (v *ViewResource) IsDataLoaded() bool {
	return kindMask(v.populated.Load())&v.required == v.required
}

func (v *ViewResource) IsKindLoaded(kind ImageKind) bool {
	return kindMask(v.populated.Load()).has(kind)
}

func (v *ViewResource) LoadedKinds() []ImageKind {
	return kindMask(v.populated.Load()).kinds()
}

// Buffer returns the decoded buffer of one channel.
func (v *ViewResource) Buffer(kind ImageKind) (ImageBuffer, bool) {
	if kind >= numKinds {
		return nil, false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	buf := v.buffers[kind]
	return buf, buf != nil
}

// AssetPath is where the image of one channel is expected on disk.
func (v *ViewResource) AssetPath(dir string, kind ImageKind, ext string) string {
	return filepath.Join(dir, kind.FileName(v.name, ext))
}

// LoadImageData decodes every required channel from dir. The first failure
// releases the channels already decoded, so a view never ends up partially
// loaded.
func (v *ViewResource) LoadImageData(dir string, c codec.Codec) error {
	v.UnloadImageData()
	for _, kind := range v.required.kinds() {
		if err := v.loadKind(dir, c, kind); err != nil {
			v.UnloadImageData()
			return err
		}
	}
	return nil
}

func (v *ViewResource) loadKind(dir string, c codec.Codec, kind ImageKind) error {
	path := v.AssetPath(dir, kind, c.Extension())
	fail := func(err error) error {
		return &ImageError{ViewID: v.id, View: v.name, Kind: kind, Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrIO, err))
	}

	var buf ImageBuffer
	err = c.Decode(data, func(width, height, channels, size int) ([]float32, error) {
		if kind.MatchesViewResolution() && (width != v.width || height != v.height) {
			return nil, fmt.Errorf("image is %dx%d, view is %dx%d", width, height, v.width, v.height)
		}
		b, err := v.alloc.CreateImageBuffer(width, height, channels, size, kind)
		if err != nil {
			return nil, err
		}
		buf = b
		return b.Samples(), nil
	})
	if err != nil {
		if buf != nil {
			v.alloc.ReleaseImageBuffer(kind, buf)
		}
		return fail(fmt.Errorf("%w: %w", ErrImageDecode, err))
	}

	v.mu.Lock()
	v.buffers[kind] = buf
	v.populated.Store(v.populated.Load() | uint32(kind.bit()))
	v.mu.Unlock()
	return nil
}

// UnloadImageData releases every channel buffer. It is safe to call on an
// unloaded view.
func (v *ViewResource) UnloadImageData() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.populated.Store(0)
	for k, buf := range v.buffers {
		if buf != nil {
			v.alloc.ReleaseImageBuffer(ImageKind(k), buf)
			v.buffers[k] = nil
		}
	}
}
