package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"toggle 2", TypeToggle},
		{"done #1", TypeToggle},
		{"delete 3", TypeDelete},
		{"rm 1", TypeDelete},
		{"/mode", TypeMode},
		{"rest", TypeRest},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/add   pay   rent ")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Add.Text != "pay rent" {
		t.Fatalf("unexpected add text: %q", cmd.Add.Text)
	}

	cmd, err = Parse("done #4")
	if err != nil {
		t.Fatalf("parse done: %v", err)
	}
	if cmd.Toggle.Position != 4 {
		t.Fatalf("unexpected position: %d", cmd.Toggle.Position)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"delete zero", ErrCodeInvalidArgument},
		{"delete 0", ErrCodeInvalidArgument},
		{"mode now", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}

	cmd, _ = Parse("mode")
	res, err = Execute(cmd, Handlers{Mode: func() (Result, error) { return Result{Message: "flipped"}, nil }})
	if err != nil || res.Message != "flipped" {
		t.Fatalf("mode dispatch failed: %+v %v", res, err)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("rest")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
