package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand implements Command for testing.
type mockCommand struct {
	name        string
	help        string
	executeFunc func(msg Message) string
}

func (m *mockCommand) Name() string { return m.name }
func (m *mockCommand) Help() string { return m.help }

func (m *mockCommand) Execute(msg Message) string {
	if m.executeFunc != nil {
		return m.executeFunc(msg)
	}
	return ""
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr string
	}{
		{
			name: "valid command",
			cmd:  &mockCommand{name: "!test"},
		},
		{
			name:    "empty name",
			cmd:     &mockCommand{name: ""},
			wantErr: "cannot be empty",
		},
		{
			name:    "missing marker",
			cmd:     &mockCommand{name: "test"},
			wantErr: "does not start with",
		},
		{
			name:    "help token reserved",
			cmd:     &mockCommand{name: HelpName},
			wantErr: "reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			err := registry.Register(tt.cmd)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&mockCommand{name: "!test"}))

	err := registry.Register(&mockCommand{name: "!test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Equal(t, 1, registry.Len())
}

func TestGet(t *testing.T) {
	registry := NewRegistry()
	want := &mockCommand{name: "!test"}
	require.NoError(t, registry.Register(want))

	got, exists := registry.Get("!test")
	assert.True(t, exists)
	assert.Same(t, Command(want), got)

	_, exists = registry.Get("!missing")
	assert.False(t, exists)
}

func TestNamesSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"!zulu", "!alpha", "!mike"} {
		require.NoError(t, registry.Register(&mockCommand{name: name}))
	}

	assert.Equal(t, []string{"!alpha", "!mike", "!zulu"}, registry.Names())
}

func TestDefaults(t *testing.T) {
	registry, err := Defaults()
	require.NoError(t, err)

	assert.Equal(t, []string{"!guess", "!hello", "!info"}, registry.Names())
}
