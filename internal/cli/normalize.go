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

package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// result is the outcome of normalizing one input.
type result struct {
	Input string `json:"input"           yaml:"input"`
	URI   string `json:"uri,omitempty"   yaml:"uri,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newNormalizeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [uri...]",
		Short: "Print the canonical form of URIs",
		Long: `Print the canonical form of each URI given as argument, or of each
non-blank line of the standard input when no argument is given.

Inputs that cannot be normalized are logged and make the command fail once
every input has been processed (or immediately with --strict).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read standard input: %w", err)
				}
			}
			return opts.normalize(cmd.OutOrStdout(), inputs)
		},
	}
}

func (o *options) normalize(w io.Writer, inputs []string) error {
	results := make([]result, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		u, err := o.parse(in)
		if err != nil {
			failed++
			o.logger.Warn("cannot normalize", slog.String("input", in), slog.Any("error", err))
			results = append(results, result{Input: in, Error: err.Error()})
			if o.strict {
				break
			}
			continue
		}
		o.logger.Debug("normalized", slog.String("input", in), slog.Any("uri", u))
		results = append(results, result{Input: in, URI: u.String()})
	}

	err := o.write(w, results, func(w io.Writer) error {
		for _, r := range results {
			if r.Error != "" {
				continue
			}
			if _, err := fmt.Fprintln(w, r.URI); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be normalized", failed, len(results))
	}
	return nil
}

// readLines returns the trimmed non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
