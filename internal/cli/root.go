// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the stateiter command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"code.hybscloud.com/stateiter/tokenize"
)

func Root() *cobra.Command {
	opts := DefaultOptions()
	var configFile string

	root := &cobra.Command{
		Use:   "stateiter [text...]",
		Short: "Split text into tokens",
		Long: `Split text into delimiter-bounded tokens.

The arguments are joined with spaces and tokenized. With no arguments the
text is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveOptions(cmd, &opts, configFile); err != nil {
				return err
			}
			return run(cmd, opts, args)
		},
	}

	f := root.Flags()
	f.StringVar(&configFile, "config", "", "YAML config `file`")
	f.StringVarP(&opts.Delimiter, "delimiter", "d", opts.Delimiter, "delimiter class: alnum, ascii, space, punct or chars")
	f.StringVar(&opts.Chars, "chars", opts.Chars, "delimiter characters when --delimiter=chars")
	f.StringVarP(&opts.Format, "format", "f", opts.Format, "output format: lines, table, yaml or json")
	f.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn or error")

	return root
}

// resolveOptions layers the config file under the flags that were set
// explicitly, then validates the result.
func resolveOptions(cmd *cobra.Command, opts *Options, configFile string) error {
	if configFile != "" {
		fromFile := DefaultOptions()
		if err := fromFile.LoadConfig(configFile); err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("delimiter") {
			opts.Delimiter = fromFile.Delimiter
		}
		if !flags.Changed("chars") {
			opts.Chars = fromFile.Chars
		}
		if !flags.Changed("format") {
			opts.Format = fromFile.Format
		}
		if !flags.Changed("log-level") {
			opts.LogLevel = fromFile.LogLevel
		}
	}
	return opts.Validate()
}

func run(cmd *cobra.Command, opts Options, args []string) error {
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: opts.Level(),
	}))

	text := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		text = string(b)
	}
	log.Info("tokenizing", "delimiter", opts.Delimiter, "format", opts.Format, "bytes", len(text))

	toks := Tokenize(text, opts.Predicate(), log)
	log.Info("tokenized", "tokens", len(toks))
	return Render(cmd.OutOrStdout(), opts.Format, toks)
}

// Tokenize collects the tokens of text, logging each one at debug level.
func Tokenize(text string, isDelimiter tokenize.Predicate[rune], log *slog.Logger) []Token {
	toks := []Token{}
	for tok := range tokenize.NewTokensView([]rune(text), isDelimiter).All() {
		t := Token{
			Index: len(toks),
			Begin: tok.Begin(),
			End:   tok.End(),
			Text:  tokenize.Text(tok),
		}
		log.Debug("token", "index", t.Index, "begin", t.Begin, "end", t.End)
		toks = append(toks, t)
	}
	return toks
}
