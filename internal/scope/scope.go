package internalscope

import (
	"context"
	"sync"

	"maps"

	"github.com/spf13/cobra"
	spf13viper "github.com/spf13/viper"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
)

// KeyDelimiter separates nested keys in the scope's viper.
//
// Flag names may contain dots (eg., log.level), so they must not be split into nested maps.
const KeyDelimiter = "::"

// tvdbrenamerContextKey is used to store scope in command context
type tvdbrenamerContextKey struct{}

// Scope holds per-command state
type Scope struct {
	v            *spf13viper.Viper
	boundEnvs    map[string]bool
	definedFlags map[string]string // flag names, shorthands, and aliases to their group
	aliases      map[string]string // multi-character short forms to flag names
	mu           sync.RWMutex
}

// Get retrieves or creates a scope for the given command
func Get(c *cobra.Command) *Scope {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Check if command already has scope
	if s, ok := ctx.Value(tvdbrenamerContextKey{}).(*Scope); ok {
		return s
	}

	// Create new scope (ensures isolation even with context inheritance)
	s := &Scope{
		v:            spf13viper.NewWithOptions(spf13viper.KeyDelimiter(KeyDelimiter)),
		boundEnvs:    make(map[string]bool),
		definedFlags: make(map[string]string),
		aliases:      make(map[string]string),
	}

	// Attach to command context
	newCtx := context.WithValue(ctx, tvdbrenamerContextKey{}, s)
	c.SetContext(newCtx)

	return s
}

// Viper returns the viper instance for the command
func (s *Scope) Viper() *spf13viper.Viper {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v
}

// IsEnvBound checks if an environment variable is already bound for this command
func (s *Scope) IsEnvBound(flagName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.boundEnvs[flagName]
}

// SetBound marks an environment variable as bound for this command
func (s *Scope) SetBound(flagName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boundEnvs[flagName] = true
}

// GetBoundEnvs is for testing purposes only
func (s *Scope) GetBoundEnvs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]bool, len(s.boundEnvs))
	maps.Copy(result, s.boundEnvs)

	return result
}

// AddDefinedFlag reserves the given flag names (long name, shorthand, aliases) for the group.
//
// It returns an error on the first name already reserved, leaving the scope untouched.
func (s *Scope) AddDefinedFlag(group string, names ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range names {
		if existingGroup, ok := s.definedFlags[name]; ok {
			return tvdbrenamererrors.NewDuplicateFlagError(name, group, existingGroup)
		}
	}
	for _, name := range names {
		s.definedFlags[name] = group
	}

	return nil
}

// SetAlias records that the multi-character short form alias stands for the flag named name
func (s *Scope) SetAlias(alias, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliases[alias] = name
}

// Alias returns the flag name the alias stands for
func (s *Scope) Alias(alias string) (name string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok = s.aliases[alias]

	return
}
