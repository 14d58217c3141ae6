// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/olympians/model"
	"github.com/mdhender/olympians/stores/memory"
)

// useMemoryStore makes every command in the test share one in-memory store.
// The --db path is still required but never opened.
func useMemoryStore(t *testing.T) {
	t.Helper()
	shared := memory.New()
	saved := openStore
	openStore = func(string) (model.Store, error) { return shared, nil }
	t.Cleanup(func() { openStore = saved })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// runDB runs a store command against a placeholder --db path.
func runDB(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return run(t, append([]string{"--db", "olympians.db"}, args...)...)
}

func TestCommands_AddUpdateList(t *testing.T) {
	useMemoryStore(t)

	steps := []struct {
		args []string
		want string
	}{
		{args: []string{"add", "Zeus"}, want: "1\tZeus\t100.0\n"},
		{args: []string{"add", "Ares", "--energy=-10"}, want: "2\tAres\t-10.0\n"},
		{args: []string{"rename", "1", "Hera"}, want: ""},
		{args: []string{"set-energy", "1", "42.5"}, want: ""},
		{args: []string{"show", "1"}, want: "1\tHera\t42.5\n"},
		{args: []string{"list", "--stats"}, want: "1\tHera\t42.5\n2\tAres\t-10.0\nolympians: 2, total energy: 32.5\n"},
		{args: []string{"delete", "2"}, want: ""},
		{args: []string{"list"}, want: "1\tHera\t42.5\n"},
	}
	for _, step := range steps {
		got, err := runDB(t, step.args...)
		if err != nil {
			t.Fatalf("%v: %v", step.args, err)
		}
		if got != step.want {
			t.Errorf("%v: want %q, got %q", step.args, step.want, got)
		}
	}
}

func TestCommands_Errors(t *testing.T) {
	useMemoryStore(t)

	if _, err := runDB(t, "show", "7"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("show missing: want ErrNotFound, got %v", err)
	}
	if _, err := runDB(t, "show", "seven"); err == nil {
		t.Errorf("show bad id: want error, got nil")
	}
	if _, err := runDB(t, "set-energy", "1", "lots"); err == nil {
		t.Errorf("set-energy bad value: want error, got nil")
	}
	if _, err := runDB(t, "add"); err == nil {
		t.Errorf("add without name: want error, got nil")
	}
}

func TestCommands_RequireDatabase(t *testing.T) {
	for _, args := range [][]string{
		{"add", "Zeus"},
		{"show", "1"},
		{"list"},
		{"rename", "1", "Hera"},
		{"set-energy", "1", "42.5"},
		{"delete", "1"},
	} {
		if _, err := run(t, args...); !errors.Is(err, ErrNoDatabase) {
			t.Errorf("%v: want ErrNoDatabase, got %v", args, err)
		}
	}
}

func TestCommands_SQLiteFilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "olympians.db")

	if _, err := run(t, "--quiet", "init-db", path); err != nil {
		t.Fatalf("init-db: %v", err)
	}
	steps := []struct {
		args []string
		want string
	}{
		{args: []string{"add", "Zeus"}, want: "1\tZeus\t100.0\n"},
		{args: []string{"add", "Nyx", "--energy", "NaN"}, want: "2\tNyx\tNaN\n"},
		{args: []string{"set-energy", "1", "42.5"}, want: ""},
		{args: []string{"show", "1"}, want: "1\tZeus\t42.5\n"},
		{args: []string{"show", "2"}, want: "2\tNyx\tNaN\n"},
	}
	for _, step := range steps {
		got, err := run(t, append([]string{"--db", path}, step.args...)...)
		if err != nil {
			t.Fatalf("%v: %v", step.args, err)
		}
		if got != step.want {
			t.Errorf("%v: want %q, got %q", step.args, step.want, got)
		}
	}
}

func TestCommands_QuietSuppressesLog(t *testing.T) {
	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "olympians.db")
	if _, err := run(t, "--quiet", "init-db", path); err != nil {
		t.Fatalf("init-db: %v", err)
	}
	if _, err := run(t, "--quiet", "compact-db", path); err != nil {
		t.Fatalf("compact-db: %v", err)
	}
	if logged.Len() != 0 {
		t.Errorf("quiet: want no log output, got %q", logged.String())
	}

	if _, err := run(t, "compact-db", path); err != nil {
		t.Fatalf("compact-db: %v", err)
	}
	if !bytes.Contains(logged.Bytes(), []byte("compacted")) {
		t.Errorf("compact-db: want log line, got %q", logged.String())
	}
}

func TestCommands_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "olympians.db")

	if _, err := run(t, "init-db", path); err != nil {
		t.Fatalf("init-db: %v", err)
	}
	if _, err := run(t, "--db", path, "add", "Apollo"); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := run(t, "--db", path, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := "1\tApollo\t100.0\n"; got != want {
		t.Errorf("list: want %q, got %q", want, got)
	}
	if _, err := run(t, "compact-db", path); err != nil {
		t.Errorf("compact-db: %v", err)
	}
}

func TestCommands_Version(t *testing.T) {
	got, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got == "" {
		t.Errorf("version: want output, got nothing")
	}
}
