package irc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ergochat/irc-go/ircmsg"

	"github.com/ychalier/ircbot/internal/command"
	"github.com/ychalier/ircbot/internal/config"
	"github.com/ychalier/ircbot/internal/logger"
	"github.com/ychalier/ircbot/internal/monitor"
	"github.com/ychalier/ircbot/internal/version"
)

func (b *Bot) onWelcome(e ircmsg.Message) {
	// 001 <nick> :Welcome to the network
	nick := b.cfg.Nick
	if len(e.Params) > 0 {
		nick = e.Params[0]
	}

	b.mu.Lock()
	b.nick = nick
	b.state = Joining
	b.mu.Unlock()

	monitor.SetConnected(true)
	logger.Info("Connected to IRC server", "addr", b.transport.PeerAddr(), "nick", nick)

	channels := make([]config.Channel, len(b.cfg.Channels))
	copy(channels, b.cfg.Channels)
	sort.Slice(channels, func(i, j int) bool { return channels[i].Name < channels[j].Name })

	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ch.Name
	}
	logger.Info("Channels to join", "channels", strings.Join(names, ", "))

	for _, ch := range channels {
		b.transport.Join(ch.Name, ch.Key)
	}

	b.mu.Lock()
	if b.state == Joining {
		b.state = SteadyState
	}
	b.mu.Unlock()
}

func (b *Bot) onNickInUse(e ircmsg.Message) {
	// 433 <client> <nick> :Nickname is already in use
	b.mu.Lock()
	if b.state == SteadyState || b.state == ShuttingDown {
		b.mu.Unlock()
		return
	}
	b.attempts++
	attempt := b.attempts
	current := b.nick
	b.mu.Unlock()

	next, ok := b.nickPolicy.Next(current, attempt)
	if !ok {
		logger.Error("No nickname candidates left", "nick", current, "attempts", attempt)
		b.mu.Lock()
		b.fatalErr = fmt.Errorf("nickname negotiation failed after %d attempts", attempt)
		b.mu.Unlock()
		b.transport.Quit("")
		return
	}

	b.mu.Lock()
	b.nick = next
	b.mu.Unlock()

	monitor.CountNickRetry()
	logger.Warn("Nickname in use, retrying", "nick", current, "next", next)
	b.transport.Nick(next)
}

func (b *Bot) onNickChange(e ircmsg.Message) {
	// :nick!user@host NICK <new>
	//
	// Session identity follows the server's view: a rename of this client
	// (renames queued during registration included) moves the nick that
	// join confirmations and private-message detection match against.
	if len(e.Params) < 1 || e.Params[0] == "" {
		return
	}
	next := e.Params[0]

	b.mu.Lock()
	if !strings.EqualFold(e.Nick(), b.nick) {
		b.mu.Unlock()
		return
	}
	prev := b.nick
	b.nick = next
	b.mu.Unlock()

	logger.Info("Nickname changed", "from", prev, "to", next)
}

func (b *Bot) onJoin(e ircmsg.Message) {
	// :nick!user@host JOIN <channel>
	if len(e.Params) < 1 {
		return
	}
	channel := e.Params[0]

	b.mu.Lock()
	if !strings.EqualFold(e.Nick(), b.nick) || b.joined[channel] {
		b.mu.Unlock()
		return
	}
	b.joined[channel] = true
	b.mu.Unlock()

	logger.Info("Joined IRC channel", "channel", channel)
	if b.sink != nil {
		b.sink.ChannelJoined(channel)
	}
}

func (b *Bot) onBadChannelKey(e ircmsg.Message) {
	// 475 <nick> <channel> :Cannot join channel (+k)
	if len(e.Params) < 2 {
		return
	}
	channel := e.Params[1]

	monitor.CountJoinRejection()
	logger.Error("Cannot join channel (bad key)", "channel", channel)
}

func (b *Bot) onPrivMsg(e ircmsg.Message) {
	if len(e.Params) < 2 {
		return
	}

	target := e.Params[0]
	text := e.Params[1]
	sender := e.Nick()

	b.mu.RLock()
	self := b.nick
	state := b.state
	b.mu.RUnlock()

	if state == ShuttingDown {
		return
	}

	monitor.CountMessage()

	if payload, ok := ctcpPayload(text); ok {
		b.handleCtcp(sender, payload)
		return
	}

	// Channel messages are answered on the channel, private ones to the
	// sender.
	private := strings.EqualFold(target, self)
	origin := target
	if private {
		origin = sender
	}

	if token, ok := b.commandToken(text); ok {
		monitor.CountCommand(token)
		b.recordUsage(e, sender, text)
	}

	replies := b.dispatcher.Dispatch(command.Message{
		Sender:  sender,
		Origin:  origin,
		Private: private,
		Text:    text,
	})
	for _, reply := range replies {
		b.transport.Privmsg(origin, reply)
	}
	monitor.CountReplies(len(replies))
}

// handleCtcp answers CTCP queries, which arrive as \x01-delimited
// PRIVMSG text. Only VERSION gets a reply; everything else is dropped.
func (b *Bot) handleCtcp(sender, payload string) {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return
	}
	if !strings.EqualFold(fields[0], "VERSION") {
		return
	}
	b.transport.Notice(sender, fmt.Sprintf("\x01VERSION %s\x01", version.Banner()))
}

func ctcpPayload(text string) (string, bool) {
	if len(text) < 2 || text[0] != '\x01' || text[len(text)-1] != '\x01' {
		return "", false
	}
	return text[1 : len(text)-1], true
}

func (b *Bot) onDisconnect(e ircmsg.Message) {
	b.mu.Lock()
	requested := b.quitting || b.fatalErr != nil
	b.state = Disconnected
	b.joined = make(map[string]bool)
	b.mu.Unlock()

	monitor.SetConnected(false)

	if !requested {
		logger.Error("Connection to server lost", "addr", b.cfg.Addr())
		// No reconnect: stop the event loop so Run returns.
		b.conn.Quit()
	}

	b.downOnce.Do(func() { close(b.done) })
}

// commandToken reports the registered command (or help token) a message
// invokes, if any.
func (b *Bot) commandToken(text string) (string, bool) {
	if !strings.HasPrefix(text, command.Marker) {
		return "", false
	}
	token := strings.Fields(text)[0]
	if token == command.HelpName {
		return token, true
	}
	if _, ok := b.registry.Get(token); ok {
		return token, true
	}
	return "", false
}

func (b *Bot) recordUsage(e ircmsg.Message, sender, line string) {
	if b.usage == nil {
		return
	}
	who := sender
	if nuh, err := e.NUH(); err == nil {
		who = nuh.Canonical()
	}
	if err := b.usage.Record(who, line); err != nil {
		logger.Error("Failed to record command usage", "error", err)
	}
}
