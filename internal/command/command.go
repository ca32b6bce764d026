package command

// Marker is the leading character identifying a message as a command
// invocation.
const Marker = "!"

// HelpName is the reserved token that lists every registered command.
const HelpName = "!help"

// Message is one inbound chat line under dispatch. Origin is where any
// reply goes: the channel name for public messages, the sender's nick
// for private ones.
type Message struct {
	Sender  string
	Origin  string
	Private bool
	Text    string
}

// Command is a named unit of bot behavior. Execute returns the reply to
// send back to the message origin, or "" for no reply. State a command
// keeps is private to the instance; dispatch is single-threaded, so an
// execution is never concurrent with itself.
type Command interface {
	Name() string
	Help() string
	Execute(msg Message) string
}
