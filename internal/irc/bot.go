package irc

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ergochat/irc-go/ircevent"

	"github.com/ychalier/ircbot/internal/command"
	"github.com/ychalier/ircbot/internal/config"
	"github.com/ychalier/ircbot/internal/logger"
	"github.com/ychalier/ircbot/internal/notify"
	"github.com/ychalier/ircbot/internal/storage"
)

const (
	nickSuffix   = "_"
	quitMessage  = "Shutting down."
	shutdownWait = 10 * time.Second
)

// Bot drives one server connection through its lifecycle: register a
// nickname, join the configured channels, then dispatch commands until
// shutdown.
type Bot struct {
	conn       *ircevent.Connection
	transport  Transport
	cfg        *config.Config
	registry   *command.Registry
	dispatcher *command.Dispatcher
	nickPolicy NickPolicy
	sink       notify.Sink
	usage      *storage.Log

	mu       sync.RWMutex
	state    State
	nick     string // nickname currently claimed or being negotiated
	attempts int
	joined   map[string]bool
	quitting bool
	fatalErr error

	done     chan struct{} // closed when the connection is torn down
	downOnce sync.Once
}

// NewBot creates a bot for the given configuration. The sink receives
// lifecycle notifications and may be nil; the usage log may be nil to
// disable recording.
func NewBot(cfg *config.Config, registry *command.Registry, sink notify.Sink, usage *storage.Log) *Bot {
	b := &Bot{
		cfg:        cfg,
		registry:   registry,
		dispatcher: command.NewDispatcher(registry),
		nickPolicy: SuffixPolicy{Suffix: nickSuffix, Max: cfg.NickRetryMax},
		sink:       sink,
		usage:      usage,
		state:      Disconnected,
		nick:       cfg.Nick,
		joined:     make(map[string]bool),
		done:       make(chan struct{}),
	}

	conn := &ircevent.Connection{
		Server:        cfg.Addr(),
		Nick:          cfg.Nick,
		User:          cfg.Username,
		RealName:      cfg.RealName,
		Password:      cfg.ServerPass,
		QuitMessage:   quitMessage,
		Debug:         false,
		UseTLS:        cfg.UseTLS,
		ReconnectFreq: 0, // zero is a 2m library default, not off; onDisconnect stops the loop
	}
	b.conn = conn
	b.transport = newConnTransport(conn)

	b.registerHandlers()
	return b
}

func (b *Bot) registerHandlers() {
	// Welcome (registration accepted)
	b.conn.AddCallback("001", b.onWelcome)

	// Nickname collision
	b.conn.AddCallback("433", b.onNickInUse)

	// Nickname changes, own renames included
	b.conn.AddCallback("NICK", b.onNickChange)

	// Join confirmations and rejections
	b.conn.AddCallback("JOIN", b.onJoin)
	b.conn.AddCallback("475", b.onBadChannelKey) // ERR_BADCHANNELKEY

	// Public and private messages, CTCP queries included
	b.conn.AddCallback("PRIVMSG", b.onPrivMsg)

	b.conn.AddDisconnectCallback(b.onDisconnect)
}

// Run connects to the server and processes events until the connection
// ends. It returns nil after a requested shutdown and an error when the
// connection fails or is lost.
func (b *Bot) Run() error {
	b.mu.Lock()
	b.state = Connecting
	b.mu.Unlock()

	logger.Info("Connecting to IRC server", "addr", b.cfg.Addr(), "tls", b.cfg.UseTLS)
	if err := b.conn.Connect(); err != nil {
		b.mu.Lock()
		b.state = Disconnected
		b.mu.Unlock()
		return fmt.Errorf("connect to %s: %w", b.cfg.Addr(), err)
	}

	b.mu.Lock()
	if b.state == Connecting {
		b.state = NickNegotiation
	}
	b.mu.Unlock()

	b.conn.Loop()

	b.mu.RLock()
	quitting := b.quitting
	err := b.fatalErr
	b.mu.RUnlock()

	if err != nil {
		return err
	}
	if !quitting {
		return fmt.Errorf("connection to %s lost", b.cfg.Addr())
	}
	return nil
}

// Shutdown requests a graceful stop on behalf of trigger. It publishes
// the shutdown notification, sends the parting QUIT and blocks until
// the connection is torn down, up to a bounded wait. Repeat calls are
// no-ops.
func (b *Bot) Shutdown(trigger string) {
	b.mu.Lock()
	if b.quitting {
		b.mu.Unlock()
		return
	}
	b.quitting = true
	b.state = ShuttingDown
	b.mu.Unlock()

	logger.Info("Shutdown requested", "by", trigger)
	if b.sink != nil {
		b.sink.ShutdownRequested()
	}

	b.transport.Quit(quitMessage)

	select {
	case <-b.done:
	case <-time.After(shutdownWait):
		logger.Warn("Disconnect did not complete in time", "wait", shutdownWait)
	}
}

// State returns the current lifecycle state.
func (b *Bot) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Nick returns the nickname currently in use.
func (b *Bot) Nick() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.nick
}

// Channels returns the confirmed-joined channels, sorted by name.
func (b *Bot) Channels() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.joined))
	for name := range b.joined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
