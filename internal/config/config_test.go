package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScalarChannels(t *testing.T) {
	path := writeConfig(t, `
server: irc.example.org
port: 6667
nick: testbot
realname: Test Bot
channels:
  - "#go"
  - "#chat"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "irc.example.org", cfg.Server)
	assert.Equal(t, 6667, cfg.Port)
	assert.Equal(t, "testbot", cfg.Nick)
	require.Len(t, cfg.Channels, 2)
	assert.Equal(t, Channel{Name: "#go"}, cfg.Channels[0])
	assert.Equal(t, Channel{Name: "#chat"}, cfg.Channels[1])
}

func TestLoadMappingChannels(t *testing.T) {
	path := writeConfig(t, `
server: irc.example.org
nick: testbot
channels:
  - "#open"
  - name: "#secret"
    key: hunter2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Channels, 2)
	assert.Equal(t, Channel{Name: "#open"}, cfg.Channels[0])
	assert.Equal(t, Channel{Name: "#secret", Key: "hunter2"}, cfg.Channels[1])
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server: irc.example.org
nick: testbot
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6667, cfg.Port)
	assert.Equal(t, "testbot", cfg.Username)
	assert.Equal(t, "testbot", cfg.RealName)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("IRCBOT_NICK", "envbot")
	t.Setenv("IRCBOT_PORT", "6697")
	t.Setenv("IRCBOT_USE_TLS", "true")

	path := writeConfig(t, `
server: irc.example.org
port: 6667
nick: filebot
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "envbot", cfg.Nick)
	assert.Equal(t, 6697, cfg.Port)
	assert.True(t, cfg.UseTLS)
	assert.Equal(t, "irc.example.org", cfg.Server)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing server",
			cfg:     Config{Port: 6667, Nick: "bot"},
			wantErr: "server",
		},
		{
			name:    "missing nick",
			cfg:     Config{Server: "irc.example.org", Port: 6667},
			wantErr: "nick",
		},
		{
			name:    "port out of range",
			cfg:     Config{Server: "irc.example.org", Port: 70000, Nick: "bot"},
			wantErr: "port",
		},
		{
			name: "duplicate channel",
			cfg: Config{
				Server:   "irc.example.org",
				Port:     6667,
				Nick:     "bot",
				Channels: []Channel{{Name: "#go"}, {Name: "#go"}},
			},
			wantErr: "listed twice",
		},
		{
			name: "unnamed channel",
			cfg: Config{
				Server:   "irc.example.org",
				Port:     6667,
				Nick:     "bot",
				Channels: []Channel{{Key: "hunter2"}},
			},
			wantErr: "name",
		},
		{
			name: "negative retry bound",
			cfg: Config{
				Server:       "irc.example.org",
				Port:         6667,
				Nick:         "bot",
				NickRetryMax: -1,
			},
			wantErr: "nick_retry_max",
		},
		{
			name: "valid",
			cfg: Config{
				Server:   "irc.example.org",
				Port:     6667,
				Nick:     "bot",
				Channels: []Channel{{Name: "#go"}, {Name: "#chat", Key: "k"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := Config{Server: "irc.example.org", Port: 6697}
	assert.Equal(t, "irc.example.org:6697", cfg.Addr())
}
