package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/nibble/feed"
	"github.com/dhamidi/nibble/input"
	"github.com/dhamidi/nibble/parse"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func newWordsCmd() *cobra.Command {
	var refillRate float64
	var count bool

	cmd := &cobra.Command{
		Use:   "words [file]",
		Short: "Stream words out of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var opts []feed.Option
			if refillRate > 0 {
				opts = append(opts, feed.WithLimiter(rate.NewLimiter(rate.Limit(refillRate), 1)))
			}
			src := feed.NewSource(in, opts...)

			total := 0
			err := feed.Each(cmd.Context(), src, wordOrGap(), func(word string) error {
				if word == "" {
					return nil
				}
				total++
				if !count {
					fmt.Println(word)
				}
				return nil
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("scan words: %w", err)
			}
			if count {
				fmt.Println(total)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&refillRate, "rate", 0, "max buffer refills per second, 0 for unlimited")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print only the word count")

	return cmd
}

// wordOrGap matches either a run of word bytes, produced as the word,
// or a run of anything else, produced as the empty string.
func wordOrGap() parse.Parser[input.Bytes, string] {
	isWord := parse.IsAlphanumeric[byte]
	return parse.Alt(
		parse.Map(
			parse.TakeWhile1[input.Bytes](isWord),
			input.Bytes.String,
		),
		parse.Value(
			parse.TakeWhile1[input.Bytes](func(b byte) bool { return !isWord(b) }),
			"",
		),
	)
}
