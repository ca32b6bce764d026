package command

type info struct{}

// NewInfo returns the !info command.
func NewInfo() Command {
	return info{}
}

func (info) Name() string { return "!info" }
func (info) Help() string { return "Prints bot information" }

func (info) Execute(Message) string {
	return "I am a bot! Check out my code at https://github.com/ychalier/ircbot."
}
