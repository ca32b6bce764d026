package irc

// State is the phase of the connection lifecycle.
type State int

const (
	Disconnected State = iota
	Connecting
	NickNegotiation
	Joining
	SteadyState
	ShuttingDown
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case NickNegotiation:
		return "nick-negotiation"
	case Joining:
		return "joining"
	case SteadyState:
		return "steady-state"
	case ShuttingDown:
		return "shutting-down"
	default:
		return "unknown"
	}
}
