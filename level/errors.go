package level

import (
	"errors"
	"fmt"

	"github.com/gorustyt/mftlevel/navmesh"
)

var (
	ErrIO              = errors.New("level: io error")
	ErrMalformedLevel  = errors.New("level: malformed level")
	ErrEmptyNavMesh    = navmesh.ErrEmptyNavMesh
	ErrIndexOutOfRange = errors.New("level: index out of range")
	ErrImageDecode     = errors.New("level: image decode error")
)

// ImageError is the failure of one image channel of one viewpoint.
type ImageError struct {
	ViewID int
	View   string
	Kind   ImageKind
	Path   string
	Err    error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("view %d (%s) %s image %s: %v", e.ViewID, e.View, e.Kind, e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedLevel, fmt.Sprintf(format, args...))
}

func outOfRange(what string, index, n int) error {
	return fmt.Errorf("%w: %s %d not in [0, %d)", ErrIndexOutOfRange, what, index, n)
}
