// Package repl implements the interactive front end of the rechenwerk
// client: it parses user input into the commands the state machine
// accepts and prints the results and status messages the machine reports.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/msto63/rechenwerk/internal/client"
	"github.com/msto63/rechenwerk/pkg/core/logging"
)

// Engine is the command interface of the client state machine.
type Engine interface {
	Submit(task client.Task)
	Connect(host string, port uint16)
}

const usage = `usage:
  connect <host> <port>  -> connect to a (new) server
  <x> + <y>              -> add x and y
  <x> - <y>              -> subtract y from x
  help                   -> print this text
  quit                   -> terminate the program`

// REPL reads commands line by line and forwards them to the engine. It
// also implements the machine's Reporter interface, so results and status
// messages from any goroutine are serialized onto the output writer.
type REPL struct {
	engine Engine
	in     io.Reader
	out    io.Writer
	logger *logging.Logger

	outMu sync.Mutex
}

// New creates a REPL reading from in and writing to out.
func New(engine Engine, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		engine: engine,
		in:     in,
		out:    out,
		logger: logging.New("repl"),
	}
}

// Run processes input until quit or EOF.
func (r *REPL) Run() error {
	r.printUsage()

	scanner := bufio.NewScanner(r.in)
	r.prompt()
	for scanner.Scan() {
		cmd, err := Parse(scanner.Text())
		if err != nil {
			r.println(errorStyle.Render("*** " + err.Error()))
			r.printUsage()
			r.prompt()
			continue
		}

		switch cmd := cmd.(type) {
		case nil:
			// blank line
		case SubmitCommand:
			r.engine.Submit(cmd.Task)
		case ConnectCommand:
			r.engine.Connect(cmd.Host, cmd.Port)
		case HelpCommand:
			r.printUsage()
		case QuitCommand:
			return nil
		}
		r.prompt()
	}
	return scanner.Err()
}

// Result implements client.Reporter
func (r *REPL) Result(task client.Task, value int64) {
	r.println(resultStyle.Render(fmt.Sprintf("%s = %d", task, value)))
}

// Status implements client.Reporter
func (r *REPL) Status(message string) {
	r.println(statusStyle.Render(message))
}

func (r *REPL) printUsage() {
	r.println(usageStyle.Render(usage))
}

func (r *REPL) prompt() {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	fmt.Fprint(r.out, promptStyle.Render("> "))
}

func (r *REPL) println(line string) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	fmt.Fprintln(r.out, line)
}
