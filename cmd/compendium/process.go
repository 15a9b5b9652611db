package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/annotate"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

var showTags bool

var processCmd = &cobra.Command{
	Use:   "process [text|-]",
	Short: "Rewrite annotation tags into readable text",
	Long: `Process replaces @UUID, @Check, @Damage and [[/act]] tags with labels in the
configured language. Reads standard input when no text or "-" is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&showTags, "tags", false, "list the tags found instead of the processed text")
}

func runProcess(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lang := application.Language()

	if showTags {
		printTags(out, annotate.Tags(text, lang))
		return nil
	}

	_, err = fmt.Fprintln(out, annotate.Process(text, lang))
	return err
}

func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "failed to read standard input")
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func printTags(w io.Writer, tags []annotate.Tag) {
	for _, t := range tags {
		label := t.ResolvedLabel
		if !t.Resolved() {
			label = "-"
		}
		fmt.Fprintf(w, "%-16s %s => %s\n", t.Kind, t.Source, label)
	}
}
