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
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jplu/urinorm/uri"
)

// inspection is the detailed view of a parsed URI.
type inspection struct {
	URI               string `json:"uri"                         yaml:"uri"`
	uri.Components    `yaml:",inline"`
	Authority         string `json:"authority,omitempty"         yaml:"authority,omitempty"`
	HostKind          string `json:"hostKind"                    yaml:"hostKind"`
	RegistrableDomain string `json:"registrableDomain,omitempty" yaml:"registrableDomain,omitempty"`
}

func newInspection(u uri.URI) inspection {
	return inspection{
		URI:               u.String(),
		Components:        u.Components(),
		Authority:         u.Authority(),
		HostKind:          u.HostKind().String(),
		RegistrableDomain: u.RegistrableDomain(),
	}
}

func newInspectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <uri>",
		Short: "Print the canonical components of a URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := opts.parse(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("inspected", slog.Any("uri", u))
			info := newInspection(u)
			return opts.write(cmd.OutOrStdout(), info, info.writeText)
		},
	}
}

func (i inspection) writeText(w io.Writer) error {
	port := ""
	if i.Port != 0 {
		port = strconv.Itoa(i.Port)
	}
	rows := [][2]string{
		{"uri", i.URI},
		{"scheme", i.Scheme},
		{"user login", i.UserLogin},
		{"user password", i.UserPassword},
		{"host", i.Host},
		{"host kind", i.HostKind},
		{"port", port},
		{"path", i.Path},
		{"query", i.Query},
		{"fragment", i.Fragment},
		{"authority", i.Authority},
		{"registrable domain", i.RegistrableDomain},
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
