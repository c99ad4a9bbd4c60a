package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

var (
	evalNoEcho    bool
	evalPrecision int
	evalDegrees   bool
)

var evalCmd = &cobra.Command{
	Use:     "eval [expression...]",
	Aliases: []string{"calc"},
	Short:   "Evaluate an expression",
	Long: `Evaluate a calculator expression and print the result.

Arguments are joined with spaces into one expression. Without arguments,
each line read from stdin is evaluated; a prompt is shown when stdin is a
terminal.

Constants: pi, e
Functions: sqrt, cbrt, sin, cos, tan, asin, acos, atan, ln, log, log2,
           exp, pow, hypot, abs, ceil, floor, round, min, max

Expressions starting with '-' must follow '--' so they are not read as
flags.

Examples:
  shellit eval 2+2
  shellit eval -- -3*2
  shellit eval --degrees 'sin(30)'
  echo '2^10' | shellit eval --no-echo`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVarP(&evalNoEcho, "no-echo", "n", false, "Print only the result")
	evalCmd.Flags().IntVarP(&evalPrecision, "precision", "p", 0, "Significant digits (-1 = shortest)")
	evalCmd.Flags().BoolVarP(&evalDegrees, "degrees", "d", false, "Use degrees for trigonometric functions")
	evalCmd.SetFlagErrorFunc(evalFlagError)
	rootCmd.AddCommand(evalCmd)
}

// evalFlagError points at '--' when an expression was taken for a flag.
func evalFlagError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w (use 'shellit eval -- <expression>' for expressions starting with '-')", err)
}

func runEval(cmd *cobra.Command, args []string) error {
	if calculator == nil {
		return errors.New("calculator not configured")
	}
	if err := applyEvalFlags(cmd); err != nil {
		return err
	}

	echo := calculator.Settings().EchoInput && !evalNoEcho

	if len(args) > 0 {
		return evalLine(cmd, strings.Join(args, " "), echo)
	}
	return evalStream(cmd, cmd.InOrStdin(), echo)
}

func applyEvalFlags(cmd *cobra.Command) error {
	settings := calculator.Settings()
	changed := false

	if cmd.Flags().Changed("precision") {
		settings.Precision = evalPrecision
		changed = true
	}
	if cmd.Flags().Changed("degrees") {
		settings.AngleUnit = domain.AngleRadians
		if evalDegrees {
			settings.AngleUnit = domain.AngleDegrees
		}
		changed = true
	}

	if !changed {
		return nil
	}
	if err := calculator.Configure(settings); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// evalLine prints the result of one expression. Empty input prints nothing.
func evalLine(cmd *cobra.Command, expr string, echo bool) error {
	out, err := evaluate(cmd.Context(), expr, echo)
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return err
}

func evaluate(ctx context.Context, expr string, echo bool) (string, error) {
	if historyService == nil {
		return calculator.Eval(expr, echo), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return historyService.Evaluate(ctx, expr, echo)
}

func evalStream(cmd *cobra.Command, in io.Reader, echo bool) error {
	interactive := isTerminal(in)
	if interactive {
		fmt.Fprintln(cmd.OutOrStdout(), "shellit calculator. Empty line or Ctrl-D to quit.")
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(cmd.OutOrStdout(), "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if interactive {
				break
			}
			continue
		}
		if err := evalLine(cmd, line, echo); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
