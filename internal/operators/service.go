package operators

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"proxy-lattice/internal/directory"
)

const (
	// DefaultGroup is used when the request names no group.
	DefaultGroup = "operatori_pratiche"

	// FallbackOperator is the only item returned for an unknown group.
	FallbackOperator = "admin"

	DefaultCacheTTL  = 5 * time.Minute
	DefaultCacheSize = 128
)

// Item is one operator entry.
type Item struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Directory resolves group members.
type Directory interface {
	GroupMembers(ctx context.Context, group string) ([]directory.User, error)
}

// Service builds operator lists from a Directory.
type Service struct {
	dir          Directory
	logger       *zap.Logger
	defaultGroup string
	cacheTTL     time.Duration
	cacheSize    int
	cache        *expirable.LRU[string, []Item]

	// mu orders cache fills against Purge. generation counts purges.
	mu         sync.Mutex
	generation uint64
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithDefaultGroup overrides DefaultGroup.
func WithDefaultGroup(group string) Option {
	return func(s *Service) {
		if group != "" {
			s.defaultGroup = group
		}
	}
}

// WithCache sets the membership cache size and TTL. A zero size disables
// caching.
func WithCache(size int, ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheSize, s.cacheTTL = size, ttl
	}
}

// NewService creates a Service over dir.
func NewService(dir Directory, opts ...Option) *Service {
	s := &Service{
		dir:          dir,
		logger:       zap.NewNop(),
		defaultGroup: DefaultGroup,
		cacheTTL:     DefaultCacheTTL,
		cacheSize:    DefaultCacheSize,
	}

	for _, o := range opts {
		o(s)
	}

	if s.cacheSize > 0 {
		s.cache = expirable.NewLRU[string, []Item](s.cacheSize, nil, s.cacheTTL)
	}

	return s
}

// DefaultGroup returns the group used when none is requested.
func (s *Service) DefaultGroup() string { return s.defaultGroup }

// Items returns the operators of group sorted by value. An unknown group
// is logged and yields the single fallback item.
func (s *Service) Items(ctx context.Context, group string) ([]Item, error) {
	if group == "" {
		group = s.defaultGroup
	}

	if s.cache != nil {
		if items, ok := s.cache.Get(group); ok {
			return items, nil
		}
	}

	generation := s.currentGeneration()

	users, err := s.dir.GroupMembers(ctx, group)
	if errors.Is(err, directory.ErrGroupNotFound) {
		s.logger.Error("operator group not found, answering with fallback operator",
			zap.String("group", group),
			zap.String("fallback", FallbackOperator))

		return []Item{{Value: FallbackOperator, Label: FallbackOperator}}, nil
	}

	if err != nil {
		return nil, err
	}

	items := ItemsFromUsers(users)

	s.fill(group, items, generation)

	return items, nil
}

func (s *Service) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// fill caches items unless a purge happened since generation was read,
// in which case they may predate the reload.
func (s *Service) fill(group string, items []Item, generation uint64) {
	if s.cache == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation {
		s.cache.Add(group, items)
	}
}

// Purge drops every cached group. It is meant as a directory reload hook.
func (s *Service) Purge() {
	if s.cache == nil {
		return
	}

	s.mu.Lock()
	s.generation++
	s.cache.Purge()
	s.mu.Unlock()

	s.logger.Debug("operator cache purged")
}

// ItemsFromUsers maps users to items: the value is the user ID and the
// label the full name, or the ID when the name is empty. Items are sorted
// by value.
func ItemsFromUsers(users []directory.User) []Item {
	items := make([]Item, 0, len(users))

	for _, u := range users {
		label := u.Fullname
		if label == "" {
			label = u.ID
		}

		items = append(items, Item{Value: u.ID, Label: label})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Value < items[j].Value })

	return items
}
