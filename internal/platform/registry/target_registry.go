// internal/platform/registry/target_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"asmx/internal/core/domain"
	"asmx/internal/platform/logx"
)

// TargetRegistry holds the closed set of target aliases the orchestrator
// accepts. Aliases are registered explicitly (one auditable Register call per
// target, from init() in internal/targets); resolution is a pure lookup and
// never falls through to the toolchain's own triple parsing.
type TargetRegistry struct {
	mu      sync.RWMutex
	targets map[domain.Alias]TargetMetadata
	logger  logx.Logger
}

// TargetMetadata describes a registered target.
type TargetMetadata struct {
	Alias       domain.Alias
	Triple      string // fully-qualified <arch>-<vendor>-<os>-<abi>
	Description string
	WordSize    int // pointer width in bits
}

// globalRegistry is the process-wide registry instance.
var globalRegistry *TargetRegistry
var once sync.Once

// Global returns the global registry instance.
func Global() *TargetRegistry {
	once.Do(func() {
		globalRegistry = NewTargetRegistry(logx.New())
	})
	return globalRegistry
}

// NewTargetRegistry creates an empty target registry.
func NewTargetRegistry(logger logx.Logger) *TargetRegistry {
	return &TargetRegistry{
		targets: make(map[domain.Alias]TargetMetadata),
		logger:  logger.With("component", "target-registry"),
	}
}

// Register adds a target alias to the registry.
// Typically called from init() of internal/targets.
func (r *TargetRegistry) Register(meta TargetMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meta.Alias == "" {
		return fmt.Errorf("target alias cannot be empty")
	}

	if meta.Triple == "" {
		return fmt.Errorf("triple cannot be empty for alias %s", meta.Alias)
	}

	if _, exists := r.targets[meta.Alias]; exists {
		return fmt.Errorf("alias %s is already registered", meta.Alias)
	}

	r.targets[meta.Alias] = meta
	r.logger.Debug("target registered", "alias", meta.Alias, "triple", meta.Triple)

	return nil
}

// Resolve maps an alias to its Target. Pure lookup: same alias, same triple,
// every call. Unknown aliases fail here, locally, before any external
// process is spawned.
func (r *TargetRegistry) Resolve(alias domain.Alias) (domain.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.targets[alias]
	if !exists {
		return domain.Target{}, fmt.Errorf("%w: %q (known: %v)", domain.ErrUnknownAlias, alias, r.listLocked())
	}

	return domain.Target{Alias: meta.Alias, Triple: meta.Triple}, nil
}

// List returns all registered aliases, sorted.
func (r *TargetRegistry) List() []domain.Alias {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *TargetRegistry) listLocked() []domain.Alias {
	aliases := make([]domain.Alias, 0, len(r.targets))
	for alias := range r.targets {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool { return aliases[i] < aliases[j] })
	return aliases
}

// GetMetadata returns the metadata of a registered target.
func (r *TargetRegistry) GetMetadata(alias domain.Alias) (TargetMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.targets[alias]
	return meta, exists
}

// IsRegistered reports whether an alias is registered.
func (r *TargetRegistry) IsRegistered(alias domain.Alias) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.targets[alias]
	return exists
}

// Clear removes all registered targets (useful for testing).
func (r *TargetRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.targets = make(map[domain.Alias]TargetMetadata)
}
