package api

import "strings"

// Command names for the closed dispatch set.
const (
	Help  = "help"
	Price = "price"
	List  = "list"
)

// aliases map historical and convenience spellings to command names.
var aliases = map[string]string{
	"quote":  Price,
	"-h":     Help,
	"--help": Help,
}

// Command is one parsed command-line invocation.
type Command struct {
	Name string
	Args []string
}

// ParseCommand maps the raw arguments onto the closed command set.
// The historical quote command is kept as an alias of price.
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &UnknownCommandError{}
	}
	name := strings.ToLower(args[0])
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	switch name {
	case Help, Price, List:
		return Command{Name: name, Args: args[1:]}, nil
	}
	return Command{}, &UnknownCommandError{Command: args[0]}
}
