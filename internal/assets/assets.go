// Package assets lists the files the frontends load from the assets
// directory and collects load failures into a Report.
//
// A missing asset is never fatal here. Callers log the report and fall back
// to drawn shapes or synthesized sounds, or abort when running strict.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where assets are looked up when no directory is given.
const DefaultDir = "assets"

// ErrMissing marks an asset file that does not exist.
var ErrMissing = errors.New("asset missing")

// Kind groups assets by the loader that consumes them.
type Kind string

const (
	KindTexture Kind = "texture"
	KindSound   Kind = "sound"
	KindIcon    Kind = "icon"
)

// Asset is one file the game can use.
type Asset struct {
	Name string
	Kind Kind
	File string
}

// Manifest is every asset the game knows about.
var Manifest = []Asset{
	{Name: "player", Kind: KindTexture, File: "player.png"},
	{Name: "asteroid", Kind: KindTexture, File: "asteroid.png"},
	{Name: "logo", Kind: KindTexture, File: "logo.png"},
	{Name: "background", Kind: KindTexture, File: "bg.png"},
	{Name: "icon", Kind: KindIcon, File: "Asteroid Brown.png"},
	{Name: "shoot", Kind: KindSound, File: "shooting.mp3"},
	{Name: "death", Kind: KindSound, File: "die.mp3"},
	{Name: "explosion", Kind: KindSound, File: "explotion.mp3"},
}

// Lookup finds a manifest entry by name.
func Lookup(name string) (Asset, bool) {
	for _, a := range Manifest {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// OfKind returns the manifest entries of one kind.
func OfKind(k Kind) []Asset {
	var out []Asset
	for _, a := range Manifest {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}

// Path resolves an asset inside dir.
func Path(dir string, a Asset) string {
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(expandHome(dir), a.File)
}

// Open opens an asset file. A missing file yields an error wrapping ErrMissing.
func Open(dir string, a Asset) (*os.File, error) {
	f, err := os.Open(Path(dir, a))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, a.File)
	}
	return f, err
}

// Problem is one asset that could not be used.
type Problem struct {
	Asset Asset
	Err   error
}

// Report collects asset problems. The zero value is an empty report.
type Report struct {
	Problems []Problem
}

// Add records a failure for a.
func (r *Report) Add(a Asset, err error) {
	r.Problems = append(r.Problems, Problem{Asset: a, Err: err})
}

// Merge appends another report's problems.
func (r *Report) Merge(o Report) {
	r.Problems = append(r.Problems, o.Problems...)
}

// Empty reports whether every asset loaded.
func (r Report) Empty() bool {
	return len(r.Problems) == 0
}

// Names lists the failed asset names.
func (r Report) Names() []string {
	names := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		names[i] = p.Asset.Name
	}
	return names
}

// Err joins all problems into one error, or returns nil for an empty report.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Problems))
	for _, p := range r.Problems {
		errs = append(errs, fmt.Errorf("assets: %s %s: %w", p.Asset.Kind, p.Asset.Name, p.Err))
	}
	return errors.Join(errs...)
}

// Check stats every manifest entry of the given kinds (all kinds if none
// are given) and reports the ones that are missing or unreadable.
func Check(dir string, kinds ...Kind) Report {
	var rep Report
	for _, a := range Manifest {
		if len(kinds) > 0 && !hasKind(kinds, a.Kind) {
			continue
		}
		info, err := os.Stat(Path(dir, a))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			rep.Add(a, ErrMissing)
		case err != nil:
			rep.Add(a, err)
		case info.IsDir() || info.Size() == 0:
			rep.Add(a, fmt.Errorf("empty or not a regular file: %s", a.File))
		}
	}
	return rep
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
