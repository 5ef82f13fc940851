package session

import "fmt"

// Command is a menu selection.
type Command int

// Menu commands, numbered as they appear in the menu.
const (
	CommandAdd Command = iota + 1
	CommandRemove
	CommandView
	CommandDiscount
	CommandCheckout
	CommandExit
)

var commandNames = map[Command]string{
	CommandAdd:      "add",
	CommandRemove:   "remove",
	CommandView:     "view",
	CommandDiscount: "discount",
	CommandCheckout: "checkout",
	CommandExit:     "exit",
}

// ParseCommand maps a menu number to its command.
func ParseCommand(n int) (Command, bool) {
	c := Command(n)
	_, ok := commandNames[c]
	return c, ok
}

// String returns the command's lower-case name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
