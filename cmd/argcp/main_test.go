// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argparser/pkg/argparser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"-o", "-", "a", "b"}, nil)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	want := &config{
		includes: []string{},
		output:   "-",
		op:       opCopy,
		format:   "text",
		sources:  []string{"a"},
		dest:     "b",
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(config{})); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgsAll(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-n", "-I", dir, "a", "-o", "r.json", "-vv", "--move", "--format=json", "b", "--link", "dest"}
	cfg, err := parseArgs(args, nil)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	want := &config{
		dryRun:   true,
		includes: []string{dir},
		output:   "r.json",
		verbose:  2,
		op:       opLink,
		format:   "json",
		sources:  []string{"a", "b"},
		dest:     "dest",
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(config{})); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "missing output", args: []string{"a", "b"}, wantMsg: "missing OUTPUT"},
		{name: "missing dest", args: []string{"-o", "-", "a"}, wantMsg: "missing DEST operand"},
		{name: "bad format", args: []string{"-o", "-", "--format", "xml", "a", "b"}, wantMsg: `invalid choice "xml" (choose from text, json, yaml, toml)`},
		{name: "bad include", args: []string{"-o", "-", "-I", "/does/not/exist", "a", "b"}, wantMsg: `include directory "/does/not/exist" is not a directory`},
		{name: "unknown option", args: []string{"-o", "-", "-x", "a", "b"}, wantMsg: "unrecognized option '-x'"},
		{name: "flag with value", args: []string{"-o", "-", "--move=yes", "a", "b"}, wantMsg: "option '--move' doesn't allow an argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args, nil)
			if err == nil {
				t.Fatalf("expected error %q", tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("expected error %q, got %q", tt.wantMsg, err.Error())
			}
			if code := argparser.ExitCode(err); code != argparser.UsageExitCode {
				t.Fatalf("expected exit code %d, got %d", argparser.UsageExitCode, code)
			}
		})
	}
}

func TestParseArgsHelpAndVersion(t *testing.T) {
	_, err := parseArgs([]string{"--help"}, nil)
	var help *argparser.HelpRequestedError
	if !errors.As(err, &help) {
		t.Fatalf("expected help request, got %v", err)
	}
	text := help.Text(programName, 80)
	for _, s := range []string{
		"usage: argcp [-h] [--version] [-n] [-I INCLUDE]... -o OUTPUT [-v]...",
		"required arguments:",
		"  -o OUTPUT, --output OUTPUT",
		"positional arguments:",
		"Copy, move or link each SOURCE to DEST.",
	} {
		if !strings.Contains(text, s) {
			t.Errorf("help text missing %q:\n%s", s, text)
		}
	}

	_, err = parseArgs([]string{"--version"}, nil)
	var v *argparser.VersionRequestedError
	if !errors.As(err, &v) {
		t.Fatalf("expected version request, got %v", err)
	}
	if v.Version != "0.3.1" {
		t.Fatalf("expected version 0.3.1, got %q", v.Version)
	}
}

func TestParseArgsTrace(t *testing.T) {
	var lines []string
	logf := func(format string, args ...any) { lines = append(lines, format) }
	if _, err := parseArgs([]string{"-o", "-", "a", "b"}, logf); err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected trace output")
	}
}

func TestRunOperations(t *testing.T) {
	for _, op := range []string{"--copy", "--move", "--link"} {
		t.Run(op, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "src.txt")
			dst := filepath.Join(dir, "dst.txt")
			writeFile(t, src, "hello")

			var out bytes.Buffer
			if err := run([]string{op, "-o", "-", src, dst}, &out); err != nil {
				t.Fatalf("run: %v", err)
			}
			if got := readFile(t, dst); got != "hello" {
				t.Fatalf("expected dst content %q, got %q", "hello", got)
			}
			_, err := os.Stat(src)
			if op == "--move" && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("expected src to be gone after move, got %v", err)
			}
			if op != "--move" && err != nil {
				t.Fatalf("expected src to remain, got %v", err)
			}
			name := strings.TrimPrefix(op, "--")
			if !strings.Contains(out.String(), name+" "+src+" -> "+dst+"\n") {
				t.Fatalf("unexpected report:\n%s", out.String())
			}
		})
	}
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, "hello")

	var out bytes.Buffer
	if err := run([]string{"-n", "-o", "-", src, filepath.Join(dir, "dst.txt")}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "dst.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run created dst: %v", err)
	}
	if first, _, _ := strings.Cut(out.String(), "\n"); !strings.HasSuffix(first, "(dry run)") {
		t.Fatalf("expected dry run header, got %q", first)
	}
}

func TestRunIntoDirectoryWithIncludes(t *testing.T) {
	inc := t.TempDir()
	destDir := t.TempDir()
	writeFile(t, filepath.Join(inc, "argcp-include-a.txt"), "a")
	writeFile(t, filepath.Join(inc, "argcp-include-b.txt"), "b")
	reportPath := filepath.Join(t.TempDir(), "report.json")

	args := []string{"-I", inc, "-o", reportPath, "--format", "json", "argcp-include-a.txt", "argcp-include-b.txt", destDir}
	if err := run(args, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"argcp-include-a.txt", "argcp-include-b.txt"} {
		if _, err := os.Stat(filepath.Join(destDir, name)); err != nil {
			t.Fatalf("expected %s in dest: %v", name, err)
		}
	}

	var got report
	if err := json.Unmarshal([]byte(readFile(t, reportPath)), &got); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	want := []step{
		{Source: filepath.Join(inc, "argcp-include-a.txt"), Dest: filepath.Join(destDir, "argcp-include-a.txt")},
		{Source: filepath.Join(inc, "argcp-include-b.txt"), Dest: filepath.Join(destDir, "argcp-include-b.txt")},
	}
	if diff := cmp.Diff(want, got.Steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	writeFile(t, a, "a")

	err := run([]string{"-o", "-", a, a, filepath.Join(dir, "not-a-dir")}, nil)
	if err == nil || !strings.Contains(err.Error(), "is not a directory") {
		t.Fatalf("expected not a directory error, got %v", err)
	}
	if code := argparser.ExitCode(err); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	err = run([]string{"-o", "-", "argcp-no-such-file", filepath.Join(dir, "b")}, nil)
	if err == nil || !strings.Contains(err.Error(), "no such file") {
		t.Fatalf("expected missing source error, got %v", err)
	}

	err = run([]string{"-o", "-", dir, filepath.Join(dir, "c")}, nil)
	if err == nil || !strings.Contains(err.Error(), "omitting directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestWriteReport(t *testing.T) {
	r := &report{
		RunID: "abc",
		Op:    "copy",
		Steps: []step{{Source: "a", Dest: "b"}},
	}
	tests := []struct {
		format string
		want   []string
	}{
		{format: "text", want: []string{"run abc\n", "copy a -> b\n"}},
		{format: "json", want: []string{`"run_id": "abc"`, `"source": "a"`}},
		{format: "yaml", want: []string{"run_id: abc\n", "- source: a\n"}},
		{format: "toml", want: []string{`run_id = "abc"`, "[[steps]]", `source = "a"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeReport(&buf, tt.format, r); err != nil {
				t.Fatalf("writeReport: %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("expected %q in output:\n%s", s, buf.String())
				}
			}
		})
	}
	if err := writeReport(&bytes.Buffer{}, "xml", r); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
