package toolconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// rootFromExecutable is the location of the project root relative to the
// directory holding the running binary (<root>/bin/toolconfig).
const rootFromExecutable = ".."

var executablePath = os.Executable

// Loader holds a configuration loaded once at construction. It never writes
// back to disk and its state does not change after New or Load returns.
type Loader struct {
	root string
	path string
	cfg  Config
}

// Option customises how New locates the configuration file.
type Option func(*options)

type options struct {
	root     string
	fileName string
}

// WithRoot uses dir as the project root instead of deriving it from the
// executable location.
func WithRoot(dir string) Option {
	return func(o *options) {
		o.root = dir
	}
}

// WithFileName overrides the configuration file name inside the project root.
func WithFileName(name string) Option {
	return func(o *options) {
		o.fileName = name
	}
}

// New resolves <project_root>/.tool-config.json and loads it.
func New(opts ...Option) (*Loader, error) {
	o := options{fileName: DefaultFileName}
	for _, opt := range opts {
		opt(&o)
	}

	root := o.root
	if root == "" {
		derived, err := DefaultRoot()
		if err != nil {
			return nil, err
		}
		root = derived
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root %q: %w", root, err)
	}

	l, err := Load(filepath.Join(absRoot, o.fileName))
	if err != nil {
		return nil, err
	}
	l.root = absRoot
	return l, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read configuration %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Loader{
		root: filepath.Dir(path),
		path: path,
		cfg:  cfg,
	}, nil
}

// DefaultRoot returns the project root derived from the running executable.
func DefaultRoot() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Clean(filepath.Join(filepath.Dir(exe), rootFromExecutable)), nil
}

// Root returns the project root the configuration was resolved against.
func (l *Loader) Root() string {
	return l.root
}

// Path returns the configuration file location.
func (l *Loader) Path() string {
	return l.path
}
