// Package config holds the named formatting/validation configurations and the
// registry that hands them out. Two lookups of the same name in one registry
// return the same *Config, so Update and Reset are observed by every holder.
package config

import (
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultName is the registry key used when none is given.
const DefaultName = "default"

const copySuffix = "_copy"

// Options is a partial set of configuration values. Zero strings and nil
// booleans mean "keep the current value".
type Options struct {
	Name      string
	OrderedBy Order
	Separator Separator
	Title     Title
	Ending    *bool
	Bypass    *bool
	Surname   Surname
}

// UpdateOptions are the fields Update may change in place.
type UpdateOptions struct {
	OrderedBy Order
	Title     Title
	Ending    *bool
}

// Bool returns a pointer to v, for Options literals.
func Bool(v bool) *bool { return &v }

// Values is a plain copy of a configuration's fields.
type Values struct {
	Name      string
	OrderedBy Order
	Separator Separator
	Title     Title
	Ending    bool
	Bypass    bool
	Surname   Surname
}

// Defaults returns the values of a freshly created configuration.
func Defaults(name string) Values {
	return Values{
		Name:      name,
		OrderedBy: ByFirstName,
		Separator: Space,
		Title:     UK,
		Ending:    false,
		Bypass:    true,
		Surname:   Father,
	}
}

// Config is a named bundle of options owned by a Registry.
type Config struct {
	reg *Registry
	v   Values
}

func (c *Config) read() Values {
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()
	return c.v
}

func (c *Config) Name() string         { return c.read().Name }
func (c *Config) OrderedBy() Order     { return c.read().OrderedBy }
func (c *Config) Separator() Separator { return c.read().Separator }
func (c *Config) Title() Title         { return c.read().Title }
func (c *Config) Ending() bool         { return c.read().Ending }
func (c *Config) Bypass() bool         { return c.read().Bypass }
func (c *Config) Surname() Surname     { return c.read().Surname }

// Values returns a snapshot of the current fields.
func (c *Config) Values() Values { return c.read() }

// Registry returns the registry that owns c.
func (c *Config) Registry() *Registry { return c.reg }

// CopyWith registers a new configuration seeded from c and overridden by o.
// Its name is o.Name (or c's name) suffixed with "_copy" until it is unique.
func (c *Config) CopyWith(o Options) *Config {
	r := c.reg
	r.mu.Lock()
	defer r.mu.Unlock()
	name := o.Name
	if name == "" {
		name = c.v.Name + copySuffix
	}
	for name == c.v.Name || r.entries[name] != nil {
		name += copySuffix
	}
	v := c.v
	v.Name = name
	apply(&v, o)
	cp := &Config{reg: r, v: v}
	r.entries[name] = cp
	r.logger.Debug("config copied", "from", c.v.Name, "to", name)
	return cp
}

// Update mutates the registered entry in place. It does nothing if the entry
// was removed from its registry; unchanged values are skipped.
func (c *Config) Update(o UpdateOptions) {
	r := c.reg
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[c.v.Name] != c {
		return
	}
	if o.OrderedBy != "" && o.OrderedBy != c.v.OrderedBy {
		c.v.OrderedBy = o.OrderedBy
	}
	if o.Title != "" && o.Title != c.v.Title {
		c.v.Title = o.Title
	}
	if o.Ending != nil && *o.Ending != c.v.Ending {
		c.v.Ending = *o.Ending
	}
	r.logger.Debug("config updated", "name", c.v.Name, "order", c.v.OrderedBy, "title", c.v.Title, "ending", c.v.Ending)
}

// Reset restores default values, keeping the name.
func (c *Config) Reset() {
	r := c.reg
	r.mu.Lock()
	defer r.mu.Unlock()
	c.v = Defaults(c.v.Name)
	r.logger.Debug("config reset", "name", c.v.Name)
}

func apply(v *Values, o Options) {
	if o.OrderedBy != "" {
		v.OrderedBy = o.OrderedBy
	}
	if o.Separator != "" {
		v.Separator = o.Separator
	}
	if o.Title != "" {
		v.Title = o.Title
	}
	if o.Ending != nil {
		v.Ending = *o.Ending
	}
	if o.Bypass != nil {
		v.Bypass = *o.Bypass
	}
	if o.Surname != "" {
		v.Surname = o.Surname
	}
}

// Registry is a mutex-guarded, name-keyed cache of configurations.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Config
	logger  *log.Logger
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithLogger routes registry debug events to l.
func WithLogger(l *log.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{entries: map[string]*Config{}, logger: log.New(io.Discard)}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Create returns the configuration registered under name, creating it with
// defaults when absent. An empty name means DefaultName.
func (r *Registry) Create(name string) *Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(name)
}

func (r *Registry) create(name string) *Config {
	if name == "" {
		name = DefaultName
	}
	if c, ok := r.entries[name]; ok {
		return c
	}
	c := &Config{reg: r, v: Defaults(name)}
	r.entries[name] = c
	r.logger.Debug("config created", "name", name)
	return c
}

// Merge writes the provided fields of o over the entry named o.Name and
// returns it.
func (r *Registry) Merge(o Options) *Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.create(o.Name)
	apply(&c.v, o)
	r.logger.Debug("config merged", "name", c.v.Name)
	return c
}

// Lookup returns the entry registered under name without creating it.
func (r *Registry) Lookup(name string) (*Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.entries[name]
	return c, ok
}

// Remove drops name from the registry. Configs already handed out keep their
// values but no longer accept Update.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
