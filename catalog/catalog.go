package catalog

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dlstool/vcf/schema"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize is the number of detection results kept by a Scanner
// created with a non-positive cache size.
const DefaultCacheSize = 1024

// Entry is one configuration file found by a scan.
type Entry struct {
	// RelPath is slash separated and relative to the scanned folder.
	RelPath string         `json:"path" yaml:"path"`
	Path    string         `json:"-" yaml:"-"`
	Size    int64          `json:"size" yaml:"size"`
	ModTime time.Time      `json:"modTime" yaml:"modTime"`
	Version schema.Version `json:"version" yaml:"version"`
}

// Index is the result of a scan.
type Index struct {
	Root string `json:"root" yaml:"root"`
	// Files is sorted case insensitively by RelPath.
	Files []Entry `json:"files" yaml:"files"`
	// Dirs holds every sub-folder, slash separated and sorted case
	// insensitively.
	Dirs []string `json:"dirs" yaml:"dirs"`
}

// TopDirs returns the immediate sub-folders of the scanned folder.
func (ix *Index) TopDirs() []string {
	var out []string
	for _, d := range ix.Dirs {
		if !strings.Contains(d, "/") {
			out = append(out, d)
		}
	}
	return out
}

// InDir returns the files directly inside dir, "" being the scanned
// folder itself.
func (ix *Index) InDir(dir string) []Entry {
	var out []Entry
	for _, e := range ix.Files {
		parent := path.Dir(e.RelPath)
		if parent == "." {
			parent = ""
		}
		if parent == dir {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of files of version v.
func (ix *Index) Count(v schema.Version) int {
	n := 0
	for _, e := range ix.Files {
		if e.Version == v {
			n++
		}
	}
	return n
}

type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// Scanner scans folders, reusing detection results between scans.
// A Scanner is safe for concurrent use.
type Scanner struct {
	workers int
	cache   *lru.Cache[cacheKey, schema.Version]
	reads   atomic.Int64
}

// NewScanner returns a Scanner caching up to cacheSize detection results
// and reading at most workers files at a time. Non-positive values select
// DefaultCacheSize and the number of CPUs.
func NewScanner(cacheSize, workers int) (*Scanner, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cache, err := lru.New[cacheKey, schema.Version](cacheSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Scanner{workers: workers, cache: cache}, nil
}

// Reads returns the number of files read for detection so far.
func (s *Scanner) Reads() int64 { return s.reads.Load() }

// Scan indexes the folder root. Files that cannot be read are listed
// with version Unknown.
func (s *Scanner) Scan(ctx context.Context, root string) (*Index, error) {
	log := zerolog.Ctx(ctx)
	ix := &Index{Root: root}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			log.Warn().Err(err).Str("path", p).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		switch {
		case d.IsDir():
			if rel != "." {
				ix.Dirs = append(ix.Dirs, rel)
			}
		case strings.EqualFold(filepath.Ext(p), ".xml"):
			ix.Files = append(ix.Files, Entry{RelPath: rel, Path: p})
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", root)
	}

	sort.SliceStable(ix.Files, func(i, j int) bool {
		return strings.ToLower(ix.Files[i].RelPath) < strings.ToLower(ix.Files[j].RelPath)
	})
	sort.SliceStable(ix.Dirs, func(i, j int) bool {
		return strings.ToLower(ix.Dirs[i]) < strings.ToLower(ix.Dirs[j])
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range ix.Files {
		e := &ix.Files[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.detect(log, e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", root)
	}
	log.Debug().Str("root", root).Int("files", len(ix.Files)).Int("dirs", len(ix.Dirs)).Msg("scanned folder")
	return ix, nil
}

func (s *Scanner) detect(log *zerolog.Logger, e *Entry) {
	fi, err := os.Stat(e.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", e.Path).Msg("cannot stat file")
		return
	}
	e.Size, e.ModTime = fi.Size(), fi.ModTime()
	key := cacheKey{path: e.Path, size: e.Size, modTime: e.ModTime.UnixNano()}
	if v, ok := s.cache.Get(key); ok {
		e.Version = v
		return
	}
	b, err := os.ReadFile(e.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", e.Path).Msg("cannot read file")
		return
	}
	s.reads.Add(1)
	e.Version = schema.DetectBytes(b)
	s.cache.Add(key, e.Version)
}

// Scan indexes root with a throwaway Scanner.
func Scan(ctx context.Context, root string, workers int) (*Index, error) {
	s, err := NewScanner(0, workers)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, root)
}
