// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"scarab/internal/parser"
)

const prompt = ">> "

// Start reads snippets from in and reports whether each is a syntactically
// valid compilation unit. A line holding only :paste begins a multi-line
// snippet terminated by :end; :quit leaves the loop.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case ":quit":
			return
		case ":paste":
			var lines []string
			for scanner.Scan() {
				next := scanner.Text()
				if strings.TrimSpace(next) == ":end" {
					break
				}
				lines = append(lines, next)
			}
			check(out, strings.Join(lines, "\n"))
		case "":
		default:
			check(out, line)
		}
	}
}

func check(out io.Writer, source string) {
	if err := parser.Parse("<console>", source); err != nil {
		color.New(color.FgRed).Fprintf(out, "error: %s\n", err.Error())
		fmt.Fprintln(out, err.FormattedLine())
		return
	}
	color.New(color.FgGreen).Fprintln(out, "ok")
}
