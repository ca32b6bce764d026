package command

import (
	"fmt"
	"strings"
)

// Dispatcher resolves inbound messages against a registry. Replies are
// returned rather than sent, one element per outbound line, so the
// caller decides how to deliver them.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch inspects one message and returns the reply lines for its
// origin. A message that does not start with the command marker, or
// that names no registered command, yields nothing. Only the help
// listing produces more than one line.
func (d *Dispatcher) Dispatch(msg Message) []string {
	if !strings.HasPrefix(msg.Text, Marker) {
		return nil
	}

	token := strings.Fields(msg.Text)[0]
	if token == HelpName {
		return d.helpLines()
	}

	cmd, exists := d.registry.Get(token)
	if !exists {
		return nil
	}

	if reply := cmd.Execute(msg); reply != "" {
		return []string{reply}
	}
	return nil
}

// helpLines lists every registered command as "name: help", ordered by
// name.
func (d *Dispatcher) helpLines() []string {
	names := d.registry.Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		cmd, exists := d.registry.Get(name)
		if !exists {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, cmd.Help()))
	}
	return lines
}
