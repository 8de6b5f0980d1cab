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

import "strings"

// subDelims is the sub-delims character class of RFC 3986, Section 2.2.
const subDelims = "!$&'()*+,;="

const (
	// schemeExtraChars are the characters allowed in a scheme besides ASCII
	// letters and digits.
	schemeExtraChars = "+-."
	// domainLabelExtraChars are the characters allowed inside (never at the
	// edges of) a domain label besides ASCII letters and digits.
	domainLabelExtraChars = "-"
	// pathNonFirstChars must not start a path: a leading ':' would read as
	// a scheme delimiter.
	pathNonFirstChars = ":"
)

// Reserved characters that stay literal in each component once normalized.
// Everything outside these sets and the unreserved set is percent-encoded.
// '?' stays escaped in queries: Parse takes the last '?' as the delimiter.
const (
	userLoginAllowed    = subDelims
	userPasswordAllowed = subDelims + ":"
	pathSegmentAllowed  = subDelims + ":@"
	queryKeyAllowed     = "!$'()*+,;:@/"
	queryValueAllowed   = queryKeyAllowed + "="
)

// standardPorts maps a scheme to its registered default port.
//
//nolint:gochecknoglobals // read-only lookup table.
var standardPorts = map[string]int{
	"ftp":    21,
	"ssh":    22,
	"telnet": 23,
	"gopher": 70,
	"http":   80,
	"ws":     80,
	"nntp":   119,
	"ldap":   389,
	"https":  443,
	"wss":    443,
	"rtsp":   554,
}

// StandardPort returns the registered default port of a scheme. The lookup is
// case-insensitive.
func StandardPort(scheme string) (int, bool) {
	port, ok := standardPorts[strings.ToLower(scheme)]
	return port, ok
}

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isUnreserved checks if a byte is in the unreserved set as defined by RFC 3986.
func isUnreserved(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}
