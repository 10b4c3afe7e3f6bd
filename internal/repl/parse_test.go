package repl

import (
	"testing"

	rwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/internal/client"
)

func TestParse_Submit(t *testing.T) {
	tests := []struct {
		line string
		want client.Task
	}{
		{"2 + 3", client.Task{Operation: client.OpAdd, Lhs: 2, Rhs: 3}},
		{"10 - 4", client.Task{Operation: client.OpSubtract, Lhs: 10, Rhs: 4}},
		{"-5 + 7", client.Task{Operation: client.OpAdd, Lhs: -5, Rhs: 7}},
		{"  2   +   3  ", client.Task{Operation: client.OpAdd, Lhs: 2, Rhs: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			submit, ok := cmd.(SubmitCommand)
			if !ok {
				t.Fatalf("Parse(%q) = %T, want SubmitCommand", tt.line, cmd)
			}
			if submit.Task != tt.want {
				t.Errorf("Parse(%q) task = %+v, want %+v", tt.line, submit.Task, tt.want)
			}
		})
	}
}

func TestParse_Connect(t *testing.T) {
	cmd, err := Parse("connect localhost 4242")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	connect, ok := cmd.(ConnectCommand)
	if !ok {
		t.Fatalf("Parse() = %T, want ConnectCommand", cmd)
	}
	if connect.Host != "localhost" || connect.Port != 4242 {
		t.Errorf("Parse() = %+v, want localhost:4242", connect)
	}
}

func TestParse_QuitAndHelp(t *testing.T) {
	for _, line := range []string{"quit", "exit"} {
		cmd, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", line, err)
		}
		if _, ok := cmd.(QuitCommand); !ok {
			t.Errorf("Parse(%q) = %T, want QuitCommand", line, cmd)
		}
	}

	cmd, err := Parse("help")
	if err != nil {
		t.Fatalf("Parse(help) error = %v", err)
	}
	if _, ok := cmd.(HelpCommand); !ok {
		t.Errorf("Parse(help) = %T, want HelpCommand", cmd)
	}
}

func TestParse_BlankLine(t *testing.T) {
	cmd, err := Parse("   ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cmd != nil {
		t.Errorf("Parse(blank) = %v, want nil", cmd)
	}
}

func TestParse_Invalid(t *testing.T) {
	lines := []string{
		"frobnicate",
		"2 * 3",
		"two + three",
		"2 + ",
		"connect localhost",
		"connect localhost notaport",
		"connect localhost 99999",
		"quit now",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", line)
			}
			if !rwerror.HasCode(err, rwerror.CodeInvalidInput) {
				t.Errorf("Parse(%q) error code = %v, want INVALID_INPUT", line, rwerror.GetCode(err))
			}
		})
	}
}
