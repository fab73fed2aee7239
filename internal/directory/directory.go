package directory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrGroupNotFound is returned for a group the directory does not define.
var ErrGroupNotFound = errors.New("group not found")

// User is a directory entry.
type User struct {
	ID       string `yaml:"id" json:"id"`
	Fullname string `yaml:"fullname,omitempty" json:"fullname"`
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`
}

// File is the on-disk layout of a directory.
type File struct {
	Users  []User              `yaml:"users"`
	Groups map[string][]string `yaml:"groups"`
}

type snapshot struct {
	users  map[string]User
	groups map[string][]string
}

func newSnapshot(f File) (*snapshot, error) {
	s := &snapshot{
		users:  make(map[string]User, len(f.Users)),
		groups: make(map[string][]string, len(f.Groups)),
	}

	for _, u := range f.Users {
		if u.ID == "" {
			return nil, errors.New("user without id")
		}

		if _, dup := s.users[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user %q", u.ID)
		}

		s.users[u.ID] = u
	}

	for name, members := range f.Groups {
		s.groups[name] = append([]string(nil), members...)
	}

	return s, nil
}

// Directory answers group membership queries.
type Directory struct {
	path     string
	logger   *zap.Logger
	debounce time.Duration

	mu       sync.RWMutex
	snap     *snapshot
	onReload []func()
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger for reload and watch events.
func WithLogger(l *zap.Logger) Option {
	return func(d *Directory) { d.logger = l }
}

// WithDebounce sets how long Watch waits for writes to settle before
// reloading.
func WithDebounce(dur time.Duration) Option {
	return func(d *Directory) { d.debounce = dur }
}

func newDirectory(path string, opts []Option) *Directory {
	d := &Directory{path: path, logger: zap.NewNop(), debounce: defaultDebounce}
	for _, o := range opts {
		o(d)
	}

	return d
}

// New creates an in-memory directory.
func New(f File, opts ...Option) (*Directory, error) {
	s, err := newSnapshot(f)
	if err != nil {
		return nil, err
	}

	d := newDirectory("", opts)
	d.snap = s

	return d, nil
}

// Load reads a directory file.
func Load(path string, opts ...Option) (*Directory, error) {
	d := newDirectory(path, opts)
	if err := d.Reload(); err != nil {
		return nil, err
	}

	return d, nil
}

// Parse decodes a directory file.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse directory YAML: %w", err)
	}

	return f, nil
}

// Path returns the backing file, empty for in-memory directories.
func (d *Directory) Path() string { return d.path }

// Reload re-reads the backing file and runs the OnReload callbacks. On
// failure the current snapshot is kept.
func (d *Directory) Reload() error {
	if d.path == "" {
		return errors.New("directory has no backing file")
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("failed to read directory file %s: %w", d.path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", d.path, err)
	}

	s, err := newSnapshot(f)
	if err != nil {
		return fmt.Errorf("%s: %w", d.path, err)
	}

	d.mu.Lock()
	d.snap = s
	callbacks := append([]func(){}, d.onReload...)
	d.mu.Unlock()

	d.logger.Info("directory loaded",
		zap.String("path", d.path),
		zap.Int("users", len(s.users)),
		zap.Int("groups", len(s.groups)))

	for _, fn := range callbacks {
		fn()
	}

	return nil
}

// OnReload registers fn to run after every successful reload.
func (d *Directory) OnReload(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.onReload = append(d.onReload, fn)
}

// GroupMembers returns the members of group in declaration order. Members
// missing from the user list are returned with only their ID set.
func (d *Directory) GroupMembers(ctx context.Context, group string) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	s := d.snap
	d.mu.RUnlock()

	ids, ok := s.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}

	out := make([]User, 0, len(ids))
	for _, id := range ids {
		u, ok := s.users[id]
		if !ok {
			u = User{ID: id}
		}

		out = append(out, u)
	}

	return out, nil
}

// Groups returns the sorted group names.
func (d *Directory) Groups() []string {
	d.mu.RLock()
	s := d.snap
	d.mu.RUnlock()

	out := make([]string, 0, len(s.groups))
	for name := range s.groups {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
