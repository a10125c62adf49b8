// Package snapshot captures the observable state of a loaded level as a
// protobuf Struct, for logging, diffing and tooling.
package snapshot

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/gorustyt/mftlevel/common/message"
	"github.com/gorustyt/mftlevel/level"
)

func Build(l *level.Level) (*structpb.Struct, error) {
	views := l.Views()
	list := make([]any, 0, len(views))
	for _, v := range views {
		list = append(list, viewFields(v))
	}
	s, err := structpb.NewStruct(map[string]any{
		"name":      l.Name(),
		"path":      l.Path(),
		"data_dir":  l.DataDir(),
		"state":     l.State().String(),
		"triangles": l.NavMeshTriangleCount(),
		"views":     list,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return s, nil
}

func viewFields(v *level.ViewResource) map[string]any {
	w, h := v.Resolution()
	pos := v.Position()
	adj := v.AdjacentViews()
	adjacent := make([]any, len(adj))
	for i, id := range adj {
		adjacent[i] = id
	}
	loaded := v.LoadedKinds()
	kinds := make([]any, len(loaded))
	for i, k := range loaded {
		kinds[i] = k.String()
	}
	return map[string]any{
		"id":          v.ID(),
		"name":        v.Name(),
		"width":       w,
		"height":      h,
		"fov":         float64(v.FieldOfView()),
		"position":    []any{float64(pos[0]), float64(pos[1]), float64(pos[2])},
		"adjacent":    adjacent,
		"loaded":      v.IsDataLoaded(),
		"loaded_kind": kinds,
	}
}

// Marshal is the deterministic binary encoding of Build.
func Marshal(l *level.Level) ([]byte, error) {
	s, err := Build(l)
	if err != nil {
		return nil, err
	}
	return message.Encode(s)
}

func Unmarshal(data []byte) (*structpb.Struct, error) {
	s := &structpb.Struct{}
	if err := message.Decode(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func JSON(s *structpb.Struct, indent bool) ([]byte, error) {
	opts := protojson.MarshalOptions{}
	if indent {
		opts.Multiline = true
		opts.Indent = "  "
	}
	return opts.Marshal(s)
}
