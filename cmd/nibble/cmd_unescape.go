package main

import (
	"fmt"

	"github.com/dhamidi/nibble/input"
	"github.com/dhamidi/nibble/parse"
	"github.com/spf13/cobra"
)

func newUnescapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unescape [file]",
		Short: "Decode backslash escape sequences in text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			c := input.NewText(string(data), input.Complete)
			_, out, err := unescaper()(c)
			if err != nil {
				return fmt.Errorf("unescape: %w", err)
			}
			fmt.Print(out)
			return nil
		},
	}
	return cmd
}

// unescaper decodes \n, \t, \\ and \" while copying everything else
// through unchanged.
func unescaper() parse.Parser[input.Text, string] {
	normal := parse.Map(
		parse.TakeWhile1[input.Text](func(r rune) bool { return r != '\\' }),
		input.Text.String,
	)
	escapable := parse.Alt(
		parse.Value(parse.Tag[input.Text]("n"), "\n"),
		parse.Value(parse.Tag[input.Text]("t"), "\t"),
		parse.Value(parse.Tag[input.Text](`\`), `\`),
		parse.Value(parse.Tag[input.Text](`"`), `"`),
	)
	return parse.EscapedTransform(normal, '\\', escapable,
		func(acc string, piece string) string { return acc + piece })
}
