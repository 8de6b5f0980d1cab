/*
Copyright 2025 Urinorm Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli implements the urinorm command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jplu/urinorm/internal/log"
	"github.com/jplu/urinorm/uri"
)

// Output formats of the commands.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// options holds the persistent flags shared by all commands and the state
// derived from them before a command runs.
type options struct {
	logLevel  string
	logFormat string
	output    string
	strict    bool
	nfc       bool

	logger *slog.Logger
}

// NewRootCommand returns the root command of the urinorm tool. The version is
// printed by the version command.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{logger: log.Noop}

	root := &cobra.Command{
		Use:   "urinorm",
		Short: "Normalize and inspect RFC 3986 URIs",
		Long: `urinorm reduces URIs to a canonical form: lower-cased scheme and host,
compressed IPv6 literals, percent-encoding limited to what each component
requires, and standard ports removed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Minimum level of the log records (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", string(log.FormatText), "Format of the log records written to stderr (text, json, dev)")
	flags.StringVarP(&opts.output, "output", "o", outputText, "Format of the command output (text, json, yaml)")
	flags.BoolVar(&opts.strict, "strict", false, "Stop at the first input that cannot be normalized")
	flags.BoolVar(&opts.nfc, "nfc", false, "Put percent-decoded text in Unicode Normalization Form C")

	root.AddCommand(
		newNormalizeCommand(opts),
		newInspectCommand(opts),
		newVersionCommand(version),
	)
	return root
}

// Execute runs the root command with the process arguments.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// setup validates the persistent flags and builds the logger. Every record of
// a run carries the same run_id.
func (o *options) setup(w io.Writer) error {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	format, err := log.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}
	switch o.output = strings.ToLower(o.output); o.output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", o.output)
	}

	logger, err := log.New(w, format, level)
	if err != nil {
		return err
	}
	o.logger = logger.With(slog.String("run_id", ulid.Make().String()))
	return nil
}

// parse parses raw and applies the Unicode composition requested by --nfc.
func (o *options) parse(raw string) (uri.URI, error) {
	u, err := uri.Parse(raw)
	if err != nil {
		return uri.URI{}, err
	}
	if o.nfc {
		u = u.ComposeNFC()
	}
	return u, nil
}

// write encodes v in the selected output format. The text format is delegated
// to text.
func (o *options) write(w io.Writer, v any, text func(io.Writer) error) error {
	switch o.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
