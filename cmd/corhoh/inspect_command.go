package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"corhoh/internal/failure"
	"corhoh/internal/transcript"
)

const defaultExcerptWidth = 60

func newInspectCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:         "inspect <transcript.txt>",
		Short:       "Show the question and answer turns parsed from one transcript",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, err := transcript.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return &exitError{code: 2, err: failure.Wrap(failure.ErrNotFound, "inspect", "read transcript", path, nil)}
				}
				return err
			}

			turns := transcript.Parse(text)
			questions, answers := transcript.Count(turns)

			out := cmd.OutOrStdout()
			if len(turns) == 0 {
				fmt.Fprintf(out, "No Q/A markers found in %s\n", path)
				return nil
			}

			rows := make([][]string, 0, len(turns))
			for i, turn := range turns {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					turn.Kind.String(),
					turn.Label,
					excerpt(turn.Text, width),
				})
			}
			writeLines(out,
				renderTable([]string{"#", "Kind", "Label", "Utterance"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}),
				fmt.Sprintf("Questions: %d | Answers: %d", questions, answers),
			)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", defaultExcerptWidth, "Maximum utterance characters to show (0 for all)")
	return cmd
}

// excerpt flattens text onto one line and truncates it to width runes.
func excerpt(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return flat
	}
	runes := []rune(flat)
	if len(runes) <= width {
		return flat
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
