// Package loader discovers and reads robot files for linting.
package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/robot"
)

// DefaultExtensions are the file extensions picked up when walking directories.
var DefaultExtensions = []string{".robot", ".resource"}

// Loader reads robot files from a filesystem.
type Loader struct {
	fs         billy.Filesystem
	extensions []string
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithExtensions replaces the extensions matched when walking directories.
// Empty values are ignored; an empty list keeps the defaults.
func WithExtensions(exts ...string) Option {
	return func(l *Loader) {
		var normalized []string
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			normalized = append(normalized, ext)
		}
		if len(normalized) > 0 {
			l.extensions = normalized
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loader over fs.
func New(fs billy.Filesystem, opts ...Option) *Loader {
	l := &Loader{
		fs:         fs,
		extensions: DefaultExtensions,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses every file named in paths. Directories are walked recursively
// and only files with a matching extension are kept; files named explicitly
// are always loaded. Documents are returned sorted by path.
func (l *Loader) Load(paths ...string) ([]core.Document, error) {
	files, err := l.Discover(paths...)
	if err != nil {
		return nil, err
	}

	docs := make([]core.Document, 0, len(files))
	for _, path := range files {
		data, err := util.ReadFile(l.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, robot.Parse(path, string(data)))
	}

	l.logger.Debug("loaded robot files", "count", len(docs))
	return docs, nil
}

// Discover resolves paths to the sorted, de-duplicated list of files to load.
func (l *Loader) Discover(paths ...string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := l.fs.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = util.Walk(l.fs, root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if l.matches(path) {
				add(path)
			} else {
				l.logger.Debug("skipping file", "path", path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (l *Loader) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range l.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
