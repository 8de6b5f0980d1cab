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
	"strconv"
	"strings"
)

const (
	ipv4Parts        = 4
	maxOctet         = 255
	ipv6Segments     = 8
	ipv6DualSegments = 6 // the embedded IPv4 suffix takes two segments.
	maxHexSegment    = 4
	minCompressedRun = 2
)

// NormalizeIPv4 reduces a dotted-decimal IPv4 literal to its canonical form.
// Stray dots at either end are ignored. Literals with 2 or 3 parts are padded
// with zero parts inserted before the last one, so "1.2" is "1.0.0.2".
func NormalizeIPv4(raw string) (string, error) {
	parts := strings.Split(raw, ".")
	for len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	switch {
	case len(parts) <= 1:
		return "", newNormalizationError(ComponentHost, raw,
			&kindError{message: "IPv4 literal needs at least two parts", details: raw})
	case len(parts) > ipv4Parts:
		return "", newNormalizationError(ComponentHost, raw,
			&kindError{message: "IPv4 literal has more than four parts", details: raw})
	}

	last := len(parts) - 1
	padded := make([]string, 0, ipv4Parts)
	padded = append(padded, parts[:last]...)
	for range ipv4Parts - len(parts) {
		padded = append(padded, "0")
	}
	padded = append(padded, parts[last])

	for i, part := range padded {
		if !isDigits(part) {
			return "", newNormalizationError(ComponentHost, raw,
				&kindError{message: "Invalid IPv4 part", details: part})
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > maxOctet {
			return "", newNormalizationError(ComponentHost, raw,
				&kindError{message: "IPv4 part out of range", details: part})
		}
		padded[i] = strconv.Itoa(n)
	}
	return strings.Join(padded, "."), nil
}

// NormalizeIPv6 reduces an IPv6 literal, given without brackets, to its
// canonical form. A trailing dotted-decimal IPv4 suffix is accepted. Leading
// zeros are stripped from every segment and, unless the input already uses
// "::", the longest run of two or more zero segments is replaced with "::".
func NormalizeIPv6(raw string) (string, error) {
	invalid := func(message string) (string, error) {
		return "", newNormalizationError(ComponentHost, raw, &kindError{message: message, details: raw})
	}

	v6, v4 := raw, ""
	if i := strings.LastIndexByte(raw, ':'); i >= 0 {
		if ip, err := NormalizeIPv4(raw[i+1:]); err == nil {
			v6, v4 = raw[:i], ip
			if strings.HasSuffix(v6, ":") {
				v6 += ":"
			}
		}
	}

	if strings.Contains(v6, ":::") {
		return invalid("IPv6 literal has three or more consecutive colons")
	}
	if strings.Count(v6, "::") > 1 {
		return invalid("IPv6 literal has more than one '::'")
	}

	required := ipv6Segments
	if v4 != "" {
		required = ipv6DualSegments
	}
	shortened := strings.Contains(v6, "::")
	segments := strings.Split(v6, ":")
	count := 0
	for _, s := range segments {
		if s != "" {
			count++
		}
	}
	switch {
	case shortened && count > required-minCompressedRun:
		return invalid("IPv6 literal uses '::' to elide fewer than two segments")
	case !shortened && count != required:
		return invalid("IPv6 literal has a wrong number of segments")
	}

	if len(v6) < 2 ||
		(strings.HasPrefix(v6, ":") && !strings.HasPrefix(v6, "::")) ||
		(strings.HasSuffix(v6, ":") && !strings.HasSuffix(v6, "::")) {
		return invalid("Malformed IPv6 literal")
	}

	for i, s := range segments {
		if s == "" {
			continue
		}
		if len(s) > maxHexSegment {
			return invalid("IPv6 segment longer than four digits")
		}
		for j := range len(s) {
			if !isASCIIHexDigit(s[j]) {
				return invalid("Invalid IPv6 segment")
			}
		}
		s = strings.TrimLeft(strings.ToLower(s), "0")
		if s == "" {
			s = "0"
		}
		segments[i] = s
	}

	if shortened {
		v6 = strings.Join(segments, ":")
	} else {
		v6 = compressZeros(segments)
	}

	switch {
	case v4 == "":
		return v6, nil
	case strings.HasSuffix(v6, "::"):
		return v6 + v4, nil
	default:
		return v6 + ":" + v4, nil
	}
}

// compressZeros joins IPv6 segments, replacing the first longest run of at
// least two "0" segments with "::". Runs are compared by segment count, so a
// leading or trailing run ties with an inner run of the same count and the
// first one is compressed.
func compressZeros(segments []string) string {
	bestStart, bestLen := -1, 0
	for i := 0; i < len(segments); {
		if segments[i] != "0" {
			i++
			continue
		}
		j := i
		for j < len(segments) && segments[j] == "0" {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestLen < minCompressedRun {
		return strings.Join(segments, ":")
	}
	return strings.Join(segments[:bestStart], ":") + "::" + strings.Join(segments[bestStart+bestLen:], ":")
}
