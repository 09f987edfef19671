// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultColumns is the help width used when the terminal width is unknown.
const DefaultColumns = 80

var errorPrefix = color.New(color.FgRed, color.Bold)

type userMessagePrinter interface {
	PrintUserMessage(w io.Writer, programName string, columns int)
}

// PrintError writes err for a command-line user and returns the exit code
// the program should use. Help and version text goes to stdout; errors are
// written to stderr as "programName: message".
func PrintError(stdout, stderr io.Writer, programName string, columns int, err error) int {
	if err == nil {
		return 0
	}
	var pm userMessagePrinter
	if errors.As(err, &pm) {
		pm.PrintUserMessage(stdout, programName, columns)
		return ExitCode(err)
	}
	if programName != "" {
		fmt.Fprint(stderr, errorPrefix.Sprint(programName+":"), " ")
	}
	fmt.Fprintln(stderr, err)
	return ExitCode(err)
}

// Main runs fn, reports its error with PrintError and exits the process
// with the suggested code. It does not return.
//
//	func main() {
//	    argparser.Main("prog", func() error {
//	        p := argparser.New(os.Args[1:], argparser.WithHelpFormatter(helpfmt.New("", "")))
//	        ...
//	        return p.Force()
//	    })
//	}
func Main(programName string, fn func() error) {
	Exit(programName, fn())
}

// Exit reports err with PrintError, sized to the terminal, and exits the
// process with the suggested code. A nil err exits 0.
func Exit(programName string, err error) {
	os.Exit(PrintError(os.Stdout, os.Stderr, programName, TerminalColumns(), err))
}

// TerminalColumns returns the width for help text: the width of the
// terminal on stdout, else $COLUMNS if set, else DefaultColumns.
func TerminalColumns() int {
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return cols
	}
	if s := os.Getenv("COLUMNS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return DefaultColumns
}
