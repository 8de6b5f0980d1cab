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
	"regexp"
	"strconv"
	"strings"
)

const maxPort = 65535

//nolint:gochecknoglobals // compiled once at package initialization.
var schemePattern = regexp.MustCompile(`^[a-z][a-z0-9` + classEscape(schemeExtraChars) + `]+$`)

// classEscape escapes every character of s for use inside a regexp
// character class.
func classEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeScheme lower-cases a scheme and checks it against
// `[a-z][a-z0-9+\-.]+`. The empty string is returned unchanged.
func NormalizeScheme(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	scheme := strings.ToLower(raw)
	if !schemePattern.MatchString(scheme) {
		return "", newNormalizationError(ComponentScheme, raw, nil)
	}
	return scheme, nil
}

// NormalizeUserInfoValue normalizes the percent-encoding of a user login or
// password. Sub-delimiters stay literal, so do colons when password is true.
func NormalizeUserInfoValue(raw string, password bool) (string, error) {
	allowed := userLoginAllowed
	if password {
		allowed = userPasswordAllowed
	}
	value, err := recode(raw, allowed)
	if err != nil {
		return "", newNormalizationError(ComponentUserInfo, raw, err)
	}
	return value, nil
}

// NormalizePort checks that a port number is in the range [0, 65535].
func NormalizePort(port int) (int, error) {
	if port < 0 || port > maxPort {
		return 0, newNormalizationError(ComponentPort, strconv.Itoa(port), nil)
	}
	return port, nil
}

// parsePort converts the textual port of an authority. An empty string is
// port 0, i.e. no port.
func parsePort(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	if !isDigits(raw) {
		return 0, newNormalizationError(ComponentPort, raw, &kindError{message: "Invalid port"})
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newNormalizationError(ComponentPort, raw, err)
	}
	return NormalizePort(port)
}

// NormalizePath normalizes every segment of a path independently. Separators
// are kept verbatim, so leading, trailing and doubled slashes survive.
func NormalizePath(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if strings.IndexByte(pathNonFirstChars, raw[0]) >= 0 {
		return "", newNormalizationError(ComponentPath, raw,
			&kindError{message: "Invalid first path character", char: rune(raw[0])})
	}
	segments := strings.Split(raw, "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		normalized, err := recode(segment, pathSegmentAllowed)
		if err != nil {
			return "", newNormalizationError(ComponentPath, raw, err)
		}
		segments[i] = normalized
	}
	return strings.Join(segments, "/"), nil
}

// NormalizeQuery normalizes a query made of '&' separated key=value pairs.
// Pairs without a key are dropped and an empty value is written as a bare key.
func NormalizeQuery(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	pairs := strings.Split(raw, "&")
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		key, err := recode(key, queryKeyAllowed)
		if err != nil {
			return "", newNormalizationError(ComponentQuery, raw, err)
		}
		if value == "" {
			out = append(out, key)
			continue
		}
		value, err = recode(value, queryValueAllowed)
		if err != nil {
			return "", newNormalizationError(ComponentQuery, raw, err)
		}
		out = append(out, key+"="+value)
	}
	return strings.Join(out, "&"), nil
}

//nolint:gochecknoglobals // stateless replacer.
var fragmentEscaper = strings.NewReplacer("%", "%25", "#", "%23")

// NormalizeFragment percent-decodes a fragment. Fragments are opaque and are
// not escaped again, with one exception to a plain decode: '%' and '#' are
// written back as "%25" and "%23". A literal '%' would be decoded a second
// time by the next normalization, and a literal '#' would move the fragment
// delimiter Parse looks for (the last '#').
func NormalizeFragment(raw string) (string, error) {
	fragment, err := percentDecode(raw)
	if err != nil {
		return "", newNormalizationError(ComponentFragment, raw, err)
	}
	return fragmentEscaper.Replace(fragment), nil
}
