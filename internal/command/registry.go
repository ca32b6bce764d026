package command

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps command names to handlers. It is populated once at
// startup; lookups afterwards are read-only.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. The name must be non-empty, start with the
// command marker, not collide with the help token and be unused.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if !strings.HasPrefix(name, Marker) {
		return fmt.Errorf("command %s does not start with %q", name, Marker)
	}
	if name == HelpName {
		return fmt.Errorf("%s is reserved for the help listing", HelpName)
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	r.commands[name] = cmd
	return nil
}

// Get retrieves a command by exact name.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// Names returns all registered command names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Defaults returns a registry holding the built-in command set.
func Defaults() (*Registry, error) {
	r := NewRegistry()
	for _, cmd := range []Command{NewGreeting(), NewInfo(), NewGuess()} {
		if err := r.Register(cmd); err != nil {
			return nil, err
		}
	}
	return r, nil
}
