package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sergev/brise/internal/dump"
	"github.com/sergev/brise/parser"
	"github.com/sergev/brise/token"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a source",
		Long: `Lexes a brise source and prints its tokens with their positions.
Reads standard input when no file or "-" is given.

Examples:
  brise tokens main.brs
  echo 'a + 1' | brise tokens --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runTokens,
	}
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	var (
		tokens []token.Token
		err    error
	)
	if path := sourceArg(args); path != "" {
		tokens, err = parser.TokenizeFile(path)
	} else {
		var data []byte
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		tokens, err = parser.Tokenize(string(data), "")
	}
	if err != nil {
		a.logger.DebugContext(a.ctx, "tokenize failed", "error", err)
		return err
	}
	a.logger.DebugContext(a.ctx, "tokenized", "tokens", len(tokens))
	return dump.WriteTokens(cmd.OutOrStdout(), a.outputFormat(), tokens)
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse one expression and print its tree",
		Long: `Parses the expression at the start of a brise source and prints
its tree. Tokens after the expression are reported as a warning.

Examples:
  brise parse expr.brs
  echo '1 + 2 * 3' | brise parse --format yaml --ids`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	opts := []parser.Option{parser.WithLogger(a.logger)}
	var (
		res *parser.Result
		err error
	)
	if path := sourceArg(args); path != "" {
		res, err = parser.ParseFile(path, opts...)
	} else {
		res, err = parser.ParseReader(cmd.InOrStdin(), opts...)
	}
	if err != nil {
		return err
	}
	if err := dump.WriteExpr(cmd.OutOrStdout(), a.outputFormat(), res.Expr, a.cfg.Output.ShowIDs); err != nil {
		return err
	}
	a.warnRest(cmd.ErrOrStderr(), res.Rest)
	return nil
}

// warnRest reports tokens left over after the parsed expression.
func (a *app) warnRest(w io.Writer, rest []token.Token) {
	if len(rest) == 0 {
		return
	}
	noun := "tokens"
	if len(rest) == 1 {
		noun = "token"
	}
	fmt.Fprintf(w, "%s %s %d unconsumed %s, starting with `%s`\n",
		a.styles.warnTag.Render("warning:"),
		a.styles.position.Render(rest[0].Pos.String()),
		len(rest), noun, rest[0].Lexeme())
}

func sourceArg(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return ""
	}
	return args[0]
}
