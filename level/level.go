// Package level loads panoramic level files: a set of named viewpoints with
// baked imagery plus a navmesh that maps world positions to viewpoints.
//
// A Level is written by one goroutine (Load, Unload) and read by any number
// of goroutines once Load has returned.
package level

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gorustyt/mftlevel/codec"
	"github.com/gorustyt/mftlevel/common"
	"github.com/gorustyt/mftlevel/navmesh"
)

type State int32

const (
	Unloaded State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

type Options struct {
	// Codec decodes the per-view images. Defaults to codec.Float.
	Codec codec.Codec
	// Kinds are the image channels every view must load. nil means all kinds;
	// an empty non-nil slice loads metadata only.
	Kinds []ImageKind
	// Allocator creates the image buffers. Defaults to HeapAllocator.
	Allocator ImageAllocator
	// Workers bounds how many views load their images at once. Defaults to
	// runtime.NumCPU().
	Workers int
	Logger  *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Codec == nil {
		o.Codec = codec.Float{}
	}
	if o.Kinds == nil {
		o.Kinds = AllKinds()
	}
	if o.Allocator == nil {
		o.Allocator = HeapAllocator{}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Level struct {
	opts  Options
	log   *zap.Logger
	state atomic.Int32
	data  atomic.Pointer[levelData]
}

// levelData is everything one successful Load produced. It is never
// modified after it is published.
type levelData struct {
	path    string
	dataDir string
	table   *Table
	views   []*ViewResource
	mesh    *navmesh.Mesh
}

func New(opts Options) *Level {
	opts = opts.withDefaults()
	return &Level{opts: opts, log: opts.Logger}
}

func (l *Level) State() State {
	return State(l.state.Load())
}

// Load reads and parses the level at path and loads every view's imagery.
// Errors reading or parsing the file leave the Level Failed with nothing
// loaded. Image failures are per view and reported in the LoadReport.
func (l *Level) Load(path string) (*LoadReport, error) {
	start := time.Now()
	l.state.Store(int32(Loading))
	log := l.log.With(zap.String("path", path))

	d, err := l.read(path)
	if err != nil {
		l.release(l.data.Swap(nil))
		l.state.Store(int32(Failed))
		log.Error("load level failed", zap.Error(err))
		return nil, err
	}
	log.Debug("parsed level",
		zap.String("name", d.table.Name()),
		zap.String("data_dir", d.dataDir),
		zap.Int("views", len(d.views)),
		zap.Int("navmesh_tris", d.mesh.TriangleCount()))

	report := l.loadImages(d)
	for _, f := range report.Failures {
		log.Warn("view images not loaded", zap.Int("view", f.ViewID), zap.String("name", f.Name), zap.Error(f.Err))
	}

	l.release(l.data.Swap(d))
	l.state.Store(int32(Loaded))
	log.Info("level loaded",
		zap.Int("views", report.Views),
		zap.Int("failed_views", len(report.Failures)),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

func (l *Level) read(path string) (*levelData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrIO, path)
	}
	t, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	d := &levelData{path: path, table: t}
	dataPath := filepath.FromSlash(t.DataPath())
	if filepath.IsAbs(dataPath) {
		d.dataDir = filepath.Clean(dataPath)
	} else {
		d.dataDir = filepath.Join(filepath.Dir(path), dataPath)
	}

	d.views = make([]*ViewResource, t.ViewCount())
	for i := range d.views {
		rec, _ := t.View(i)
		d.views[i] = newViewResource(i, rec, l.opts.Kinds, l.opts.Allocator)
	}

	verts := make([]common.Vec3, t.VertexCount())
	for i := range verts {
		verts[i], _ = t.Vertex(i)
	}
	tris := make([]navmesh.Triangle, t.TriangleCount())
	for i := range tris {
		rec, _ := t.Triangle(i)
		tris[i] = navmesh.Triangle{Verts: rec.Verts, Owner: rec.Owner}
	}
	d.mesh = navmesh.New(verts, tris)
	return d, nil
}

// loadImages has no cross-view dependencies, so views load in parallel.
func (l *Level) loadImages(d *levelData) *LoadReport {
	errs := make([]error, len(d.views))
	var g errgroup.Group
	g.SetLimit(l.opts.Workers)
	for i, v := range d.views {
		i, v := i, v
		g.Go(func() error {
			errs[i] = v.LoadImageData(d.dataDir, l.opts.Codec)
			return nil
		})
	}
	_ = g.Wait()

	report := &LoadReport{Path: d.path, Views: len(d.views)}
	for i, err := range errs {
		if err != nil {
			report.Failures = append(report.Failures, ViewFailure{ViewID: i, Name: d.views[i].Name(), Err: err})
		}
	}
	return report
}

func (l *Level) release(d *levelData) {
	if d == nil {
		return
	}
	for _, v := range d.views {
		v.UnloadImageData()
	}
}

// Unload drops the current level and releases its image buffers.
func (l *Level) Unload() {
	l.release(l.data.Swap(nil))
	l.state.Store(int32(Unloaded))
}

func (l *Level) Path() string {
	if d := l.data.Load(); d != nil {
		return d.path
	}
	return ""
}

func (l *Level) Name() string {
	if d := l.data.Load(); d != nil {
		return d.table.Name()
	}
	return ""
}

// DataDir is the resolved directory the view images were loaded from.
func (l *Level) DataDir() string {
	if d := l.data.Load(); d != nil {
		return d.dataDir
	}
	return ""
}

// Table returns the parsed level table, or nil when nothing is loaded.
func (l *Level) Table() *Table {
	if d := l.data.Load(); d != nil {
		return d.table
	}
	return nil
}

func (l *Level) ViewCount() int {
	if d := l.data.Load(); d != nil {
		return len(d.views)
	}
	return 0
}

func (l *Level) View(id int) (*ViewResource, error) {
	d := l.data.Load()
	n := 0
	if d != nil {
		n = len(d.views)
	}
	if id < 0 || id >= n {
		return nil, outOfRange("view", id, n)
	}
	return d.views[id], nil
}

// Views returns every view in id order.
func (l *Level) Views() []*ViewResource {
	d := l.data.Load()
	if d == nil {
		return nil
	}
	return append([]*ViewResource(nil), d.views...)
}

// AdjacentViews returns a copy of the view's adjacency list, or nil for an
// unknown id.
func (l *Level) AdjacentViews(id int) []int {
	v, err := l.View(id)
	if err != nil {
		return nil
	}
	return v.AdjacentViews()
}

func (l *Level) mesh() *navmesh.Mesh {
	if d := l.data.Load(); d != nil {
		return d.mesh
	}
	return navmesh.New(nil, nil)
}

// ResolveNearestView returns the view owning the navmesh triangle closest to p.
func (l *Level) ResolveNearestView(p common.Vec3) (int, error) {
	return l.mesh().NearestOwner(p)
}

// NearestView is ResolveNearestView with the closest point and distance.
func (l *Level) NearestView(p common.Vec3) (navmesh.Hit, error) {
	return l.mesh().Nearest(p)
}

func (l *Level) NavMeshTriangleCount() int {
	return l.mesh().TriangleCount()
}

func (l *Level) NavMeshTriangleVertices(index int) ([3]common.Vec3, error) {
	m := l.mesh()
	if index < 0 || index >= m.TriangleCount() {
		return [3]common.Vec3{}, outOfRange("navmesh triangle", index, m.TriangleCount())
	}
	return m.TriangleVertices(index)
}

// NavMeshFaces returns three corners per navmesh triangle, for building
// collision geometry.
func (l *Level) NavMeshFaces() []common.Vec3 {
	return l.mesh().Faces()
}
