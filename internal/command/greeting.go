package command

import "fmt"

type greeting struct{}

// NewGreeting returns the !hello command.
func NewGreeting() Command {
	return greeting{}
}

func (greeting) Name() string { return "!hello" }
func (greeting) Help() string { return "Prints a welcoming message" }

func (greeting) Execute(msg Message) string {
	return fmt.Sprintf("Hello %s!", msg.Sender)
}
