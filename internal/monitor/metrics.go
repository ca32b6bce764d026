// Package monitor provides Prometheus metrics and a small HTTP server
// exposing them alongside liveness and status endpoints.
package monitor

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	MessagesSeen       prometheus.Counter
	CommandsDispatched *prometheus.CounterVec
	RepliesSent        prometheus.Counter
	NickRetries        prometheus.Counter
	JoinsRejected      prometheus.Counter
	ShutdownsRequested prometheus.Counter

	// Gauges
	JoinedChannelsGauge prometheus.Gauge
	ConnectedGauge      prometheus.Gauge // 1=connected,0=not
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		MessagesSeen = promauto.NewCounter(prometheus.CounterOpts{Name: "ircbot_messages_seen_total", Help: "Number of chat messages observed"})
		CommandsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{Name: "ircbot_commands_dispatched_total", Help: "Number of commands dispatched, by command name"}, []string{"command"})
		RepliesSent = promauto.NewCounter(prometheus.CounterOpts{Name: "ircbot_replies_sent_total", Help: "Number of reply lines sent"})
		NickRetries = promauto.NewCounter(prometheus.CounterOpts{Name: "ircbot_nick_retries_total", Help: "Number of nickname collisions retried"})
		JoinsRejected = promauto.NewCounter(prometheus.CounterOpts{Name: "ircbot_joins_rejected_total", Help: "Number of channel joins rejected by the server"})
		ShutdownsRequested = promauto.NewCounter(prometheus.CounterOpts{Name: "ircbot_shutdowns_requested_total", Help: "Number of shutdown requests received"})
		JoinedChannelsGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "ircbot_joined_channels", Help: "Current number of joined channels"})
		ConnectedGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "ircbot_connected", Help: "Server connection up=1 down=0"})
	})
}

// CountMessage records one observed chat message.
func CountMessage() {
	if MessagesSeen != nil {
		MessagesSeen.Inc()
	}
}

// CountCommand records one dispatched command invocation.
func CountCommand(name string) {
	if CommandsDispatched != nil {
		CommandsDispatched.WithLabelValues(name).Inc()
	}
}

// CountReplies records n reply lines sent.
func CountReplies(n int) {
	if RepliesSent != nil {
		RepliesSent.Add(float64(n))
	}
}

// CountNickRetry records one nickname collision retry.
func CountNickRetry() {
	if NickRetries != nil {
		NickRetries.Inc()
	}
}

// CountJoinRejection records one rejected channel join.
func CountJoinRejection() {
	if JoinsRejected != nil {
		JoinsRejected.Inc()
	}
}

// SetConnected sets the connection gauge to 1 if up else 0. Joined
// channels are per-connection, so going down also zeroes that gauge.
func SetConnected(up bool) {
	if ConnectedGauge == nil {
		return
	}
	if up {
		ConnectedGauge.Set(1)
		return
	}
	ConnectedGauge.Set(0)
	if JoinedChannelsGauge != nil {
		JoinedChannelsGauge.Set(0)
	}
}

// Subscriber mirrors lifecycle notifications into metrics.
type Subscriber struct{}

func (Subscriber) ChannelJoined(channel string) {
	if JoinedChannelsGauge != nil {
		JoinedChannelsGauge.Inc()
	}
}

func (Subscriber) ShutdownRequested() {
	if ShutdownsRequested != nil {
		ShutdownsRequested.Inc()
	}
}
