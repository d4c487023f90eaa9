package cmd

import (
	"fmt"

	"github.com/abacus-calc/abacus/internal/calc"

	"github.com/spf13/cobra"
)

func newPressCmd(root *rootOptions) *cobra.Command {
	var (
		verbose   bool
		showState bool
	)

	cmd := &cobra.Command{
		Use:   "press [button ids...]",
		Short: "Press buttons without the keypad and print the display",
		Long: `Press buttons in order on a fresh calculator and print the final display.

Button ids: AC C +/- % ÷ x × - + = . 0-9
Put "--" before the ids when the first one is "-".`,
		Example: `  abacus press 7 8 + 2 2 =
  abacus press -v 5 ÷ 0 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buttons, err := calc.ParseButtons(args)
			if err != nil {
				return err
			}

			logger, closeLog, err := openLogger(root.logPath, appendLogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			engine := calc.New(calc.WithLogger(logger))
			stderr := cmd.ErrOrStderr()
			for _, b := range buttons {
				display := engine.Press(b)
				if verbose {
					fmt.Fprintf(stderr, "%-4s %s\n", b.Label(), display)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, engine.Display())
			if showState {
				s := engine.State()
				fmt.Fprintf(out, "current=%q previous=%q operator=%s mode=%s phase=%s\n",
					s.CurrentInput, s.PreviousInput, s.PendingOperator, s.Mode(), s.Phase())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the display after every press to stderr")
	cmd.Flags().BoolVar(&showState, "state", false, "print the engine state after the last press")
	return cmd
}

func newButtonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buttons",
		Short: "List the keypad button ids",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			ids := append([]string{}, calc.ButtonIDs...)
			ids = append(ids, calc.ClearEntry.ID())
			for _, id := range ids {
				b := calc.MustParseButton(id)
				fmt.Fprintf(out, "%-4s %s\n", id, describe(b))
			}
		},
	}
}

func describe(b calc.Button) string {
	switch b.Kind {
	case calc.KindDigit:
		return "digit"
	case calc.KindPoint:
		return "decimal point"
	case calc.KindOperator:
		return "operator " + b.Op.Symbol()
	case calc.KindEquals:
		return "evaluate"
	case calc.KindClear:
		return "clear all"
	case calc.KindClearEntry:
		return "clear entry"
	case calc.KindSign:
		return "toggle sign"
	case calc.KindPercent:
		return "percent"
	}
	return ""
}
