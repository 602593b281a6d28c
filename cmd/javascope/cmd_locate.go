package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javascope/format"
	"github.com/dhamidi/javascope/scope"
	"github.com/dhamidi/javascope/treesitter"
)

var log = commonlog.GetLogger("javascope")

func newLocateCmd() *cobra.Command {
	var outputFormat string
	var language string
	var allNodes bool

	cmd := &cobra.Command{
		Use:   "javascope <file> <line>",
		Short: "Find the smallest code scope containing a line",
		Long: `Javascope parses a source file with a pre-built grammar and prints the
smallest syntactic scope (declaration, statement, or block) that contains
the given 1-based line number, along with its source text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("line number must be an integer, got %q", args[1])
			}
			if line <= 0 {
				return fmt.Errorf("line number must be a positive integer, got %d", line)
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}
			if total := countLines(data); line > total {
				return fmt.Errorf("line %d exceeds total number of lines (%d)", line, total)
			}

			if language == "" {
				language = viper.GetString(languageKey)
			}
			var provider treesitter.Provider
			if language != "" {
				provider, err = treesitter.New(language)
			} else {
				provider, err = treesitter.ForFile(filename)
			}
			if err != nil {
				return err
			}

			started := time.Now()
			tree, err := provider.Parse(cmd.Context(), data)
			if err != nil {
				return err
			}
			log.Debugf("parsed %s: %d nodes in %s", filename, tree.Len(), time.Since(started))

			var opts []scope.Option
			if !allNodes {
				kinds := viper.GetStringSlice(scopeKindsKey)
				if len(kinds) == 0 {
					kinds = provider.ScopeKinds()
				}
				opts = append(opts, scope.WithKinds(kinds...))
			}

			res, err := scope.Find(tree, line, opts...)
			if errors.Is(err, scope.ErrNoScope) {
				fmt.Println("No relevant code scope found for the given line number.")
				return nil
			}
			if err != nil {
				return err
			}

			if outputFormat == "" {
				outputFormat = viper.GetString(formatKey)
			}
			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(&res); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "grammar to use instead of detecting it from the file extension")
	cmd.Flags().BoolVar(&allNodes, "all-nodes", false, "let any node count as a scope, not just declarations, statements, and blocks")

	return cmd
}

// countLines counts lines the way an editor does: a trailing newline does
// not start a new line.
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte("\n"))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
