package repl

import (
	"strconv"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/foundation/utils/stringx"
	"github.com/msto63/rechenwerk/internal/client"
)

// Command is one parsed user input line.
type Command interface {
	isCommand()
}

// SubmitCommand submits an arithmetic task
type SubmitCommand struct {
	Task client.Task
}

// ConnectCommand connects to a server
type ConnectCommand struct {
	Host string
	Port uint16
}

// HelpCommand prints the usage banner
type HelpCommand struct{}

// QuitCommand terminates the session
type QuitCommand struct{}

func (SubmitCommand) isCommand()  {}
func (ConnectCommand) isCommand() {}
func (HelpCommand) isCommand()    {}
func (QuitCommand) isCommand()    {}

// Parse turns one input line into a command. A blank line yields nil, nil.
func Parse(line string) (Command, error) {
	if stringx.IsBlank(line) {
		return nil, nil
	}
	fields := stringx.Fields(line)

	switch fields[0] {
	case "quit", "exit":
		if len(fields) != 1 {
			return nil, invalidInput("%q takes no arguments", fields[0])
		}
		return QuitCommand{}, nil

	case "help":
		if len(fields) != 1 {
			return nil, invalidInput("\"help\" takes no arguments")
		}
		return HelpCommand{}, nil

	case "connect":
		if len(fields) != 3 {
			return nil, invalidInput("expected \"connect <host> <port>\"")
		}
		port, err := strconv.ParseUint(fields[2], 10, 16)
		if err != nil {
			return nil, invalidInput("%q is not a valid port", fields[2])
		}
		return ConnectCommand{Host: fields[1], Port: uint16(port)}, nil
	}

	// Arithmetic form: <x> + <y> or <x> - <y>
	if len(fields) != 3 {
		return nil, invalidInput("unknown command %q", line)
	}

	var op client.Operation
	switch fields[1] {
	case "+":
		op = client.OpAdd
	case "-":
		op = client.OpSubtract
	default:
		return nil, invalidInput("unknown operator %q", fields[1])
	}

	lhs, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, invalidInput("%q is not an integer", fields[0])
	}
	rhs, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, invalidInput("%q is not an integer", fields[2])
	}

	return SubmitCommand{Task: client.Task{Operation: op, Lhs: lhs, Rhs: rhs}}, nil
}

func invalidInput(format string, args ...interface{}) error {
	return rwerror.Newf(format, args...).WithCode(rwerror.CodeInvalidInput)
}
