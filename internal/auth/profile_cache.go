package auth

import (
	"context"
	"sync"
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
)

type profileEntry struct {
	user      models.User
	expiresAt time.Time
}

// ProfileCache is a short-lived token -> profile cache for user lookups.
// Entries are eventually consistent and dropped on profile update or sign-out.
type ProfileCache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]profileEntry
	// byUser indexes the tokens cached for each user
	byUser map[uuid.UUID]map[string]struct{}

	// epoch advances on every invalidation made while a load is running. A load
	// only stores its result when neither its user nor its token was
	// invalidated after the load began.
	epoch       uint64
	loading     int
	staleUsers  map[uuid.UUID]uint64
	staleTokens map[string]uint64
}

// NewProfileCache creates a cache whose entries live for ttl
func NewProfileCache(ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]profileEntry),
		byUser:      make(map[uuid.UUID]map[string]struct{}),
		staleUsers:  make(map[uuid.UUID]uint64),
		staleTokens: make(map[string]uint64),
	}
}

// WithClock replaces the cache's time source
func (c *ProfileCache) WithClock(now func() time.Time) *ProfileCache {
	c.now = now
	return c
}

// Get returns the cached profile for token when it has not expired
func (c *ProfileCache) Get(token string) (*models.User, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	user := entry.user
	return &user, true
}

// Set stores a copy of user under token
func (c *ProfileCache) Set(token string, user *models.User) {
	if c.ttl <= 0 || user == nil {
		return
	}
	c.mu.Lock()
	c.setLocked(token, user)
	c.mu.Unlock()
}

func (c *ProfileCache) setLocked(token string, user *models.User) {
	c.removeLocked(token)
	c.entries[token] = profileEntry{user: *user, expiresAt: c.now().Add(c.ttl)}
	tokens, ok := c.byUser[user.ID]
	if !ok {
		tokens = make(map[string]struct{})
		c.byUser[user.ID] = tokens
	}
	tokens[token] = struct{}{}
}

func (c *ProfileCache) removeLocked(token string) {
	entry, ok := c.entries[token]
	if !ok {
		return
	}
	delete(c.entries, token)
	if tokens, ok := c.byUser[entry.user.ID]; ok {
		delete(tokens, token)
		if len(tokens) == 0 {
			delete(c.byUser, entry.user.ID)
		}
	}
}

// GetOrLoad returns the cached profile or calls load and caches its result.
// A result loaded across an invalidation of its user or token is returned but
// not cached.
func (c *ProfileCache) GetOrLoad(ctx context.Context, token string, load func(context.Context) (*models.User, error)) (*models.User, error) {
	if user, ok := c.Get(token); ok {
		return user, nil
	}

	c.mu.Lock()
	started := c.epoch
	c.loading++
	c.mu.Unlock()

	user, err := load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	if err == nil && user != nil && c.ttl > 0 &&
		c.staleUsers[user.ID] <= started && c.staleTokens[token] <= started {
		c.setLocked(token, user)
	}
	if c.loading == 0 {
		clear(c.staleUsers)
		clear(c.staleTokens)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// InvalidateToken drops the entry for one session
func (c *ProfileCache) InvalidateToken(token string) {
	c.mu.Lock()
	c.removeLocked(token)
	if c.loading > 0 {
		c.epoch++
		c.staleTokens[token] = c.epoch
	}
	c.mu.Unlock()
}

// InvalidateUser drops every entry belonging to userID
func (c *ProfileCache) InvalidateUser(userID uuid.UUID) {
	c.mu.Lock()
	for token := range c.byUser[userID] {
		delete(c.entries, token)
	}
	delete(c.byUser, userID)
	if c.loading > 0 {
		c.epoch++
		c.staleUsers[userID] = c.epoch
	}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired or not
func (c *ProfileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes expired entries
func (c *ProfileCache) Sweep() {
	now := c.now()
	c.mu.Lock()
	for token, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			c.removeLocked(token)
		}
	}
	c.mu.Unlock()
}

// Run sweeps expired entries every interval until ctx is done
func (c *ProfileCache) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}
