// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the mlisp language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/reader"
	"github.com/michaelmacinnis/mlisp/internal/system/history"
)

const (
	continuation = "...... "
	name         = "<stdin>"
	prompt       = "mlisp> "
)

// Evaluator is the interface for things that want to evaluate lines of mlisp.
type Evaluator interface {
	Evaluate(name, text string) (cell.I, error)
	Logger() *log.Logger
	Render(c cell.I) string
	Stdout() io.Writer
}

// Run reads lines from the terminal and sends them to the Evaluator until
// the user exits or input ends.
func Run(e Evaluator, banner string) {
	out := e.Stdout()
	logger := e.Logger()

	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		logger.WithError(err).Debug("history not read")
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			logger.WithError(err).Debug("history not written")
		}
	}()

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "Enter 'quit' to exit")
	fmt.Fprintln(out)

	logger.Debug("session started")

	for {
		text, ok := read(cli)
		if !ok {
			fmt.Fprintln(out)

			return
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		cli.AppendHistory(strings.ReplaceAll(text, "\n", " "))

		if trimmed == "exit" || trimmed == "quit" {
			fmt.Fprintln(out, "Bye!")

			return
		}

		c, err := e.Evaluate(name, text)
		if err != nil {
			fmt.Fprintln(out, err.Error())

			continue
		}

		fmt.Fprintln(out, e.Render(c))
	}
}

// read prompts until the accumulated text parses or fails for a reason
// other than ending early. It returns false when input has ended.
func read(cli *liner.State) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = continuation
		}

		line, err := cli.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()

			continue
		} else if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(line)

		text := b.String()
		if _, err := reader.Parse(name, text); !reader.IsIncomplete(err) {
			return text, true
		}
	}
}
