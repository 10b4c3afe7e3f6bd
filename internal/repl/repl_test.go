package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/msto63/rechenwerk/internal/client"
)

// fakeEngine records the commands forwarded by the REPL.
type fakeEngine struct {
	tasks    []client.Task
	connects []string
}

func (e *fakeEngine) Submit(task client.Task) {
	e.tasks = append(e.tasks, task)
}

func (e *fakeEngine) Connect(host string, port uint16) {
	e.connects = append(e.connects, host)
}

func TestREPL_ForwardsCommands(t *testing.T) {
	engine := &fakeEngine{}
	in := strings.NewReader("connect localhost 4242\n2 + 3\n10 - 4\nquit\n")
	var out bytes.Buffer

	r := New(engine, in, &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(engine.connects) != 1 || engine.connects[0] != "localhost" {
		t.Errorf("connects = %v, want [localhost]", engine.connects)
	}
	if len(engine.tasks) != 2 {
		t.Fatalf("tasks = %v, want 2 entries", engine.tasks)
	}
	if engine.tasks[0].String() != "2 + 3" || engine.tasks[1].String() != "10 - 4" {
		t.Errorf("tasks = [%s, %s], want [2 + 3, 10 - 4]", engine.tasks[0], engine.tasks[1])
	}
}

func TestREPL_QuitStopsProcessing(t *testing.T) {
	engine := &fakeEngine{}
	in := strings.NewReader("quit\n2 + 3\n")
	var out bytes.Buffer

	r := New(engine, in, &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(engine.tasks) != 0 {
		t.Errorf("tasks = %v, want none after quit", engine.tasks)
	}
}

func TestREPL_UnknownInputPrintsUsage(t *testing.T) {
	engine := &fakeEngine{}
	in := strings.NewReader("frobnicate\nquit\n")
	var out bytes.Buffer

	r := New(engine, in, &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "frobnicate") {
		t.Errorf("output does not mention the bad input: %q", output)
	}
	// Banner plus the repeated usage after the error
	if strings.Count(output, "connect <host> <port>") < 2 {
		t.Errorf("usage not reprinted after invalid input")
	}
}

func TestREPL_EOFTerminates(t *testing.T) {
	engine := &fakeEngine{}
	in := strings.NewReader("2 + 3\n")
	var out bytes.Buffer

	r := New(engine, in, &out)
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(engine.tasks) != 1 {
		t.Errorf("tasks = %v, want 1", engine.tasks)
	}
}

func TestREPL_ReporterOutput(t *testing.T) {
	engine := &fakeEngine{}
	var out bytes.Buffer
	r := New(engine, strings.NewReader(""), &out)

	r.Result(client.Task{Operation: client.OpAdd, Lhs: 2, Rhs: 3}, 5)
	r.Status("*** successfully connected to server")

	output := out.String()
	if !strings.Contains(output, "2 + 3 = 5") {
		t.Errorf("output missing result line: %q", output)
	}
	if !strings.Contains(output, "successfully connected") {
		t.Errorf("output missing status line: %q", output)
	}
}
