package level

import (
	"fmt"
	"strings"
)

// ImageKind is a category of baked imagery per viewpoint.
type ImageKind uint8

const (
	Color ImageKind = iota
	Depth
	Environment
	LightDirection
	numKinds
)

var kindNames = [numKinds]string{"Color", "Depth", "Environment", "LightDirection"}

func (k ImageKind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("ImageKind(%d)", uint8(k))
}

// MatchesViewResolution reports whether images of this kind are rendered at
// the viewpoint's own resolution. Environment maps are panoramas and are not.
func (k ImageKind) MatchesViewResolution() bool {
	return k != Environment
}

// FileName is the asset name of this channel for a viewpoint.
func (k ImageKind) FileName(view, ext string) string {
	return view + "_" + k.String() + "." + ext
}

func AllKinds() []ImageKind {
	return []ImageKind{Color, Depth, Environment, LightDirection}
}

func ParseImageKind(s string) (ImageKind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(name, s) {
			return ImageKind(i), nil
		}
	}
	return 0, fmt.Errorf("level: unknown image kind %q", s)
}

type kindMask uint32

func (k ImageKind) bit() kindMask {
	return 1 << k
}

func maskOf(kinds []ImageKind) kindMask {
	var m kindMask
	for _, k := range kinds {
		if k < numKinds {
			m |= k.bit()
		}
	}
	return m
}

func (m kindMask) has(k ImageKind) bool {
	return m&k.bit() != 0
}

// kinds lists the set bits in ImageKind order.
func (m kindMask) kinds() []ImageKind {
	var res []ImageKind
	for k := ImageKind(0); k < numKinds; k++ {
		if m.has(k) {
			res = append(res, k)
		}
	}
	return res
}
