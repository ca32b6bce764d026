package irc

import (
	"context"

	"github.com/ergochat/irc-go/ircevent"
	"golang.org/x/time/rate"
)

// Transport is the outbound half of the server connection. The bot
// drives it from protocol callbacks; tests substitute a recording fake.
type Transport interface {
	Join(channel, key string)
	Nick(nick string)
	Privmsg(target, text string)
	Notice(target, text string)
	Quit(reason string)
	PeerAddr() string
}

// connTransport adapts *ircevent.Connection, pacing outbound lines so
// the server does not drop the bot for flooding.
type connTransport struct {
	conn *ircevent.Connection
	lim  *rate.Limiter
}

func newConnTransport(conn *ircevent.Connection) *connTransport {
	return &connTransport{
		conn: conn,
		lim:  rate.NewLimiter(0.5, 4),
	}
}

func (t *connTransport) wait() {
	_ = t.lim.Wait(context.Background())
}

func (t *connTransport) Join(channel, key string) {
	t.wait()
	if key != "" {
		t.conn.Send("JOIN", channel, key)
		return
	}
	t.conn.Send("JOIN", channel)
}

func (t *connTransport) Nick(nick string) {
	t.wait()
	t.conn.SetNick(nick)
}

func (t *connTransport) Privmsg(target, text string) {
	t.wait()
	t.conn.Privmsg(target, text)
}

func (t *connTransport) Notice(target, text string) {
	t.wait()
	t.conn.Notice(target, text)
}

// Quit is not paced: shutdown should go out promptly. A non-empty
// reason overrides the configured parting message.
func (t *connTransport) Quit(reason string) {
	if reason != "" {
		t.conn.QuitMessage = reason
	}
	t.conn.Quit()
}

func (t *connTransport) PeerAddr() string {
	return t.conn.Server
}
