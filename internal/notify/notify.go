// Package notify carries lifecycle milestones from the bot to external
// collaborators such as monitoring or orchestration.
package notify

// Sink receives lifecycle notifications. Delivery happens synchronously
// on the event-processing goroutine, so implementations must not block
// indefinitely.
type Sink interface {
	// ChannelJoined is called after the server confirms membership in a
	// channel for this client.
	ChannelJoined(channel string)

	// ShutdownRequested is called once when an authorized peer asks the
	// bot to terminate, before the connection is torn down.
	ShutdownRequested()
}

// Funcs adapts plain functions to the Sink interface. Nil fields are
// skipped.
type Funcs struct {
	OnChannelJoined     func(channel string)
	OnShutdownRequested func()
}

func (f Funcs) ChannelJoined(channel string) {
	if f.OnChannelJoined != nil {
		f.OnChannelJoined(channel)
	}
}

func (f Funcs) ShutdownRequested() {
	if f.OnShutdownRequested != nil {
		f.OnShutdownRequested()
	}
}

// Bus fans each notification out to several sinks in subscription order.
// The zero value is usable; a bus with no subscribers drops everything.
type Bus struct {
	sinks []Sink
}

// NewBus returns a bus delivering to the given sinks in order.
func NewBus(sinks ...Sink) *Bus {
	return &Bus{sinks: sinks}
}

// Subscribe appends a sink. Subscribers must be wired before the
// lifecycle starts; Subscribe is not safe once events are flowing.
func (b *Bus) Subscribe(s Sink) {
	b.sinks = append(b.sinks, s)
}

func (b *Bus) ChannelJoined(channel string) {
	for _, s := range b.sinks {
		s.ChannelJoined(channel)
	}
}

func (b *Bus) ShutdownRequested() {
	for _, s := range b.sinks {
		s.ShutdownRequested()
	}
}
