package main

import (
	"context"
	"errors"
	"testing"
)

func TestMainRoot(t *testing.T) {
	runCalled := false

	oldRun := run
	defer func() {
		run = oldRun
	}()
	run = func(cmd command) {
		if cmd == nil {
			t.Error("expected a root command")
		}
		runCalled = true
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

type fakeCommand struct {
	err   error
	panic any
}

func (f fakeCommand) ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		return errors.New("nil context")
	}
	if f.panic != nil {
		panic(f.panic)
	}
	return f.err
}

func Test_run(t *testing.T) {
	oldExit := osExit
	oldStop := pprofStopCPUProfile
	defer func() {
		osExit = oldExit
		pprofStopCPUProfile = oldStop
	}()

	var exitCode int
	osExit = func(code int) {
		exitCode = code
	}
	stopped := false
	pprofStopCPUProfile = func() {
		stopped = true
	}

	t.Run("ok", func(t *testing.T) {
		exitCode = -1
		run(fakeCommand{})
		if exitCode != -1 {
			t.Errorf("expected no exit, got %d", exitCode)
		}
	})

	t.Run("error", func(t *testing.T) {
		exitCode = -1
		run(fakeCommand{err: errors.New("test error")})
		if exitCode != 1 {
			t.Errorf("expected exit code 1, got %d", exitCode)
		}
	})

	t.Run("panic", func(t *testing.T) {
		exitCode = -1
		run(fakeCommand{panic: "boom"})
		if exitCode != 1 {
			t.Errorf("expected exit code 1, got %d", exitCode)
		}
		if !stopped {
			t.Error("expected CPU profiling to be stopped")
		}
	})
}

func Test_newRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "vfstug" {
		t.Errorf("unexpected command name %q", cmd.Use)
	}
	for _, name := range []string{"tree", "run"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub == cmd {
			t.Errorf("expected %s subcommand", name)
		}
	}
}
