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

package uri

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	maxLabelLength = 63
	minDomainParts = 2
)

//nolint:gochecknoglobals // compiled once at package initialization.
var (
	topLabelPattern = regexp.MustCompile(`^[a-z]{2,6}$`)
	subLabelPattern = regexp.MustCompile(
		`^[a-z0-9](?:[a-z0-9` + classEscape(domainLabelExtraChars) + `]*[a-z0-9])?$`)
)

// HostKind tells which grammar a host was recognized with.
type HostKind int

// Host kinds, in the order they are tried.
const (
	HostNone HostKind = iota
	HostIPv4
	HostIPv6
	HostDomain
)

// String returns a human readable name for the host kind.
func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostDomain:
		return "domain"
	default:
		return "none"
	}
}

// hostCandidate is one of the grammars a host may follow.
type hostCandidate struct {
	kind      HostKind
	normalize func(string) (string, error)
}

//nolint:gochecknoglobals // ordered dispatch table.
var hostCandidates = []hostCandidate{
	{kind: HostIPv4, normalize: NormalizeIPv4},
	{kind: HostIPv6, normalize: normalizeIPLiteral},
	{kind: HostDomain, normalize: NormalizeDomain},
}

// NormalizeHost reduces a host to its canonical form, trying an IPv4 literal,
// then an IPv6 literal (with or without brackets) and finally a domain name.
// The empty string is returned unchanged.
func NormalizeHost(raw string) (string, error) {
	host, _, err := classifyHost(raw)
	return host, err
}

// classifyHost is NormalizeHost that also reports which grammar matched.
func classifyHost(raw string) (string, HostKind, error) {
	if raw == "" {
		return "", HostNone, nil
	}
	errs := make([]error, 0, len(hostCandidates))
	for _, c := range hostCandidates {
		host, err := c.normalize(raw)
		if err == nil {
			return host, c.kind, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", c.kind, causeOf(err)))
	}
	return "", HostNone, newNormalizationError(ComponentHost, raw, errors.Join(errs...))
}

// causeOf returns the nested cause of a NormalizationError, or err itself.
func causeOf(err error) error {
	var ne *NormalizationError
	if errors.As(err, &ne) && ne.Err != nil {
		return ne.Err
	}
	return err
}

// normalizeIPLiteral normalizes an IPv6 literal and frames it in brackets.
func normalizeIPLiteral(raw string) (string, error) {
	literal := raw
	if strings.HasPrefix(literal, "[") {
		if !strings.HasSuffix(literal, "]") {
			return "", newNormalizationError(ComponentHost, raw,
				&kindError{message: "Unterminated IP literal", details: raw})
		}
		literal = literal[1 : len(literal)-1]
	}
	ip, err := NormalizeIPv6(literal)
	if err != nil {
		return "", err
	}
	return "[" + ip + "]", nil
}

// NormalizeDomain lower-cases a fully qualified domain name and validates each
// of its labels. The last label must be 2 to 6 letters; every other label is
// at most 63 letters, digits or inner hyphens.
func NormalizeDomain(raw string) (string, error) {
	labels := strings.Split(strings.ToLower(raw), ".")
	if len(labels) < minDomainParts {
		return "", newNormalizationError(ComponentHost, raw,
			&kindError{message: "Domain name needs at least two labels", details: raw})
	}
	last := len(labels) - 1
	for i, label := range labels[:last] {
		if err := checkSubLabel(label); err != nil {
			return "", newNormalizationError(ComponentHost, raw,
				fmt.Errorf("label %d: %w", i+1, err))
		}
	}
	if !topLabelPattern.MatchString(labels[last]) {
		return "", newNormalizationError(ComponentHost, raw,
			&kindError{message: "Invalid top-level label", details: labels[last]})
	}
	return strings.Join(labels, "."), nil
}

// checkSubLabel validates a lower-cased label below the top level.
func checkSubLabel(label string) error {
	if len(label) > maxLabelLength {
		return &kindError{message: "Label longer than 63 characters", details: label}
	}
	if !subLabelPattern.MatchString(label) {
		return &kindError{message: "Invalid label", details: label}
	}
	return nil
}
