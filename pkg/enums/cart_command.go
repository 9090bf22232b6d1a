package enums

import "fmt"

// CartCommand names the transitions accepted by the cart state machine.
type CartCommand string

const (
	CartCommandAdd            CartCommand = "add"
	CartCommandRemove         CartCommand = "remove"
	CartCommandUpdateQuantity CartCommand = "update_quantity"
	CartCommandClear          CartCommand = "clear"
)

var validCartCommands = []CartCommand{
	CartCommandAdd,
	CartCommandRemove,
	CartCommandUpdateQuantity,
	CartCommandClear,
}

// String implements fmt.Stringer.
func (c CartCommand) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CartCommand.
func (c CartCommand) IsValid() bool {
	for _, candidate := range validCartCommands {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartCommand converts raw input into a CartCommand.
func ParseCartCommand(value string) (CartCommand, error) {
	for _, candidate := range validCartCommands {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart command %q", value)
}
