// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func TestPrintError(t *testing.T) {
	color.NoColor = true

	help := HelpFormatterFunc(func(programName string, columns int, _ []HelpValue) string {
		return fmt.Sprintf("usage: %s (%d columns)\n", programName, columns)
	})
	helpErr := func() error {
		p := New([]string{"--help"}, WithHelpFormatter(help))
		return p.Force()
	}()

	tests := []struct {
		name       string
		prog       string
		err        error
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:     "nil",
			prog:     "prog",
			err:      nil,
			wantCode: 0,
		},
		{
			name:       "usage error",
			prog:       "prog",
			err:        &MissingValueError{Name: "OUTPUT"},
			wantCode:   2,
			wantStderr: "prog: missing OUTPUT\n",
		},
		{
			name:       "usage error without program name",
			prog:       "",
			err:        &UnrecognizedOptionError{Name: "--nope"},
			wantCode:   2,
			wantStderr: "unrecognized option '--nope'\n",
		},
		{
			name:       "other error",
			prog:       "prog",
			err:        errors.New("disk full"),
			wantCode:   1,
			wantStderr: "prog: disk full\n",
		},
		{
			name:       "wrapped usage error",
			prog:       "prog",
			err:        fmt.Errorf("copying: %w", &MissingRequiredPositionalArgumentError{Name: "DEST"}),
			wantCode:   2,
			wantStderr: "prog: copying: missing DEST operand\n",
		},
		{
			name:       "help",
			prog:       "prog",
			err:        helpErr,
			wantCode:   0,
			wantStdout: "usage: prog (72 columns)\n",
		},
		{
			name:       "version",
			prog:       "prog",
			err:        &VersionRequestedError{Version: "1.0.0"},
			wantCode:   0,
			wantStdout: "prog 1.0.0\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := PrintError(&stdout, &stderr, tt.prog, 72, tt.err)
			if code != tt.wantCode {
				t.Errorf("PrintError() = %d, want %d", code, tt.wantCode)
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}
			if got := stderr.String(); got != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", got, tt.wantStderr)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{&UnexpectedOptionArgumentError{Name: "--flag"}, 2},
		{&InvalidArgumentError{Msg: "bad"}, 2},
		{&HelpRequestedError{}, 0},
		{&VersionRequestedError{}, 0},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestTerminalColumnsFromEnv(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal; its width takes precedence over COLUMNS")
	}
	t.Setenv("COLUMNS", "123")
	if got := TerminalColumns(); got != 123 {
		t.Errorf("TerminalColumns() = %d, want 123", got)
	}
}

func TestTerminalColumnsDefault(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	for _, v := range []string{"", "wide", "-3"} {
		t.Setenv("COLUMNS", v)
		if got := TerminalColumns(); got != DefaultColumns {
			t.Errorf("COLUMNS=%q: TerminalColumns() = %d, want %d", v, got, DefaultColumns)
		}
	}
}
