package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/sergev/brise/ast"
	"github.com/sergev/brise/internal/dump"
	"github.com/sergev/brise/parser"
)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively",
		Long: `Reads one expression per input and prints its tree. Input that
ends inside a grouping or a string continues on the next line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd)
		},
	}
}

// session is one REPL run. Number literals get identities that are unique
// across the whole session.
type session struct {
	*app
	ids    *ast.Sequence
	out    io.Writer
	errOut io.Writer
}

func (a *app) runREPL(cmd *cobra.Command) error {
	s := &session{
		app:    a,
		ids:    ast.NewSequence(0),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	a.logger.InfoContext(a.ctx, "repl started")
	defer a.logger.InfoContext(a.ctx, "repl finished")

	in := cmd.InOrStdin()
	if !isInteractive(in) {
		return s.runBuffered(bufio.NewReader(in))
	}
	return s.runInteractive()
}

// eval parses src and prints the result. When src ends too early the
// error is returned unreported so the caller can ask for more input.
func (s *session) eval(src string) (incomplete error) {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	res, err := parser.ParseString(src,
		parser.WithSequence(s.ids),
		parser.WithLogger(s.logger))
	if err != nil {
		if parser.IsIncomplete(err) {
			return err
		}
		s.report(s.errOut, err)
		return nil
	}
	if err := dump.WriteExpr(s.out, s.outputFormat(), res.Expr, s.cfg.Output.ShowIDs); err != nil {
		fmt.Fprintf(s.errOut, "write error: %v\n", err)
	}
	s.warnRest(s.errOut, res.Rest)
	return nil
}

func (s *session) runBuffered(reader *bufio.Reader) error {
	var buffer strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read error: %w", err)
		}
		atEOF := err != nil
		buffer.WriteString(line)
		src := buffer.String()

		if incomplete := s.eval(src); incomplete != nil {
			if !atEOF {
				continue
			}
			s.report(s.errOut, incomplete)
		}
		buffer.Reset()
		if atEOF {
			return nil
		}
	}
}

func (s *session) runInteractive() error {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	if historyPath := s.cfg.REPL.HistoryFile; historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			} else {
				s.logger.WarnContext(s.ctx, "cannot save history", "file", historyPath, "error", err)
			}
		}()
	}

	var (
		buffer  strings.Builder
		pending error
	)

	for {
		prompt := s.cfg.REPL.Prompt
		if buffer.Len() > 0 {
			prompt = s.cfg.REPL.Continuation
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Fprintln(s.out)
				buffer.Reset()
				pending = nil
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(s.out)
				if pending != nil {
					s.report(s.errOut, pending)
				}
				return nil
			default:
				return fmt.Errorf("read error: %w", err)
			}
		}
		buffer.WriteString(input)
		buffer.WriteString("\n")

		src := buffer.String()
		if pending = s.eval(src); pending != nil {
			continue
		}
		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
	}
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
