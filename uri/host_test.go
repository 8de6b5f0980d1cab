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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"errors"
	"strings"
	"testing"
)

// TestNormalizeHost tests the IPv4, IPv6, domain dispatch order.
func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantKind HostKind
		wantErr  bool
	}{
		{name: "empty", input: "", want: "", wantKind: HostNone},
		{name: "domain", input: "ExAmple.COM", want: "example.com", wantKind: HostDomain},
		{name: "domain with hyphen", input: "my-host.example.org", want: "my-host.example.org", wantKind: HostDomain},
		{name: "numeric sub label", input: "123.com", want: "123.com", wantKind: HostDomain},
		{name: "short IPv4", input: "1.2", want: "1.0.0.2", wantKind: HostIPv4},
		{name: "IPv4", input: "192.168.000.001", want: "192.168.0.1", wantKind: HostIPv4},
		{name: "bracketed IPv6", input: "[::1]", want: "[::1]", wantKind: HostIPv6},
		{name: "bare IPv6", input: "::1", want: "[::1]", wantKind: HostIPv6},
		{name: "long IPv6", input: "[0:0:0:0:0:0:0:1]", want: "[::1]", wantKind: HostIPv6},
		{name: "unterminated IPv6", input: "[::1", wantErr: true},
		{name: "single label", input: "localhost", wantErr: true},
		{name: "top label too short", input: "example.c", wantErr: true},
		{name: "top label too long", input: "example.abcdefg", wantErr: true},
		{name: "numeric top label", input: "example.123a", wantErr: true},
		{name: "label starting with hyphen", input: "-a.com", wantErr: true},
		{name: "label ending with hyphen", input: "a-.com", wantErr: true},
		{name: "underscore", input: "a_b.com", wantErr: true},
		{name: "trailing dot", input: "example.com.", wantErr: true},
		{name: "empty label", input: "a..com", wantErr: true},
		{name: "five numeric parts", input: "1.2.3.4.5", wantErr: true},
		{name: "label of 64 characters", input: strings.Repeat("a", 64) + ".com", wantErr: true},
		{
			name:     "label of 63 characters",
			input:    strings.Repeat("a", 63) + ".com",
			want:     strings.Repeat("a", 63) + ".com",
			wantKind: HostDomain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind, err := classifyHost(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("classifyHost(%q) = %q, error = %v, wantErr %v", tt.input, got, err, tt.wantErr)
			}
			if err != nil {
				var ne *NormalizationError
				if !errors.As(err, &ne) || ne.Component != ComponentHost || ne.Value != tt.input {
					t.Errorf("classifyHost(%q) error = %#v, want host NormalizationError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("classifyHost(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if kind != tt.wantKind {
				t.Errorf("classifyHost(%q) kind = %v, want %v", tt.input, kind, tt.wantKind)
			}
		})
	}
}

// TestNormalizeDomain_LabelCause checks that the failing label is named in the cause.
func TestNormalizeDomain_LabelCause(t *testing.T) {
	_, err := NormalizeDomain("www.bad_label.com")
	if err == nil {
		t.Fatal("NormalizeDomain() expected an error")
	}
	var ke *kindError
	if !errors.As(err, &ke) {
		t.Fatalf("NormalizeDomain() error = %v, want a kindError cause", err)
	}
	if ke.details != "bad_label" {
		t.Errorf("kindError.details = %q, want %q", ke.details, "bad_label")
	}
	if !strings.Contains(err.Error(), "label 2") {
		t.Errorf("NormalizeDomain() error = %q, want the label position", err.Error())
	}
}

// TestHostKind_String tests the names of the host kinds.
func TestHostKind_String(t *testing.T) {
	tests := map[HostKind]string{
		HostNone:     "none",
		HostIPv4:     "ipv4",
		HostIPv6:     "ipv6",
		HostDomain:   "domain",
		HostKind(42): "none",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("HostKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
