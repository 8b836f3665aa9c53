package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/evalml/evalml/internal/objectives"
	"github.com/evalml/evalml/internal/problemtypes"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newObjectivesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objectives",
		Short: "List the available scoring objectives",
		Long: `List the scoring objectives in the registry with the problem types they
apply to and whether they score probabilities.

Use --problem-type to show only the objectives for one problem type, e.g.
  evalml objectives --problem-type multiclass`,
		Args:          cobra.NoArgs,
		RunE:          runObjectives,
		SilenceErrors: true,
	}
	cmd.Flags().String("problem-type", "", "Only list objectives for this problem type")
	cmd.Flags().String("format", formatText, "Output format: text | json")
	return cmd
}

func runObjectives(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if err := validateFormat(format); err != nil {
		return err
	}
	ptFlag, err := cmd.Flags().GetString("problem-type")
	if err != nil {
		return err
	}

	list := objectives.All()
	if ptFlag != "" {
		pt, err := problemtypes.Parse(ptFlag)
		if err != nil {
			return err
		}
		list = objectives.ForProblemType(pt)
	}

	if format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), list)
	}
	writeObjectivesText(cmd.OutOrStdout(), list)
	return nil
}

func writeObjectivesText(w io.Writer, list []*objectives.Objective) {
	headers := []string{"NAME", "GREATER IS BETTER", "NEEDS PROBA", "PROBLEM TYPES"}
	rows := make([][]string, 0, len(list))
	for _, o := range list {
		types := make([]string, len(o.ProblemTypes))
		for i, pt := range o.ProblemTypes {
			types[i] = pt.String()
		}
		rows = append(rows, []string{
			o.Name,
			yesNo(o.GreaterIsBetter),
			yesNo(o.ScoreNeedsProba),
			strings.Join(types, ", "),
		})
	}
	writeTable(w, headers, rows)
}

// writeTable prints rows under headers with columns padded to the widest cell.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for _, row := range append([][]string{headers}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range append([][]string{headers}, rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.Join(cells, "  ")) //nolint:errcheck
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
