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
	"strings"

	"braces.dev/errtrace"
)

// rawComponents holds the substrings of a raw URI before normalization.
type rawComponents struct {
	scheme   string
	userInfo string
	host     string
	port     string
	path     string
	query    string
	fragment string
}

// Parse splits a raw URI string into its components by delimiter search and
// builds a URI from them. It fails with a *ParseError when the scheme, host,
// path or query is invalid, or when the parsed components do not form a
// valid authority and URI; a URI returned by Parse always has a non-empty
// String.
//
// The split is positional, not a full RFC 3986 grammar: a ':' is taken as the
// scheme delimiter only when it comes before any '/' and '['. Inputs such as
// a scheme-less path whose first segment holds a colon are therefore read as
// having a scheme.
func Parse(raw string) (URI, error) {
	parts := splitURI(raw)
	login, password, _ := strings.Cut(parts.userInfo, ":")

	fail := func(c Component, err error) (URI, error) {
		return URI{}, errtrace.Wrap(&ParseError{Input: raw, Component: c, Err: err})
	}

	u, err := New().WithScheme(parts.scheme)
	if err != nil {
		return fail(ComponentScheme, err)
	}
	u = u.WithUserInfo(login, password)
	if u, err = u.WithHost(parts.host); err != nil {
		return fail(ComponentHost, err)
	}
	port, err := parsePort(parts.port)
	if err != nil {
		port = 0
	}
	u = u.WithPort(port)
	if u, err = u.WithPath(parts.path); err != nil {
		return fail(ComponentPath, err)
	}
	if u, err = u.WithQuery(parts.query); err != nil {
		return fail(ComponentQuery, err)
	}
	u = u.WithFragment(parts.fragment)

	if err = ValidateAuthority(parts.userInfo, u.host, port); err != nil {
		return fail(ComponentAuthority, err)
	}
	if err = ValidateURI(u.scheme, u.Authority(), u.path); err != nil {
		return fail("", err)
	}
	return u, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(raw string) URI {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// splitURI cuts a raw URI into scheme, fragment, query, authority and path,
// in that order, each step working on what the previous ones left.
func splitURI(s string) rawComponents {
	var parts rawComponents

	if i := strings.IndexByte(s, ':'); i > 0 && before(i, s, '/') && before(i, s, '[') {
		parts.scheme, s = s[:i], s[i+1:]
	}
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		s, parts.fragment = s[:i], s[i+1:]
	}
	if i := strings.LastIndexByte(s, '?'); i >= 0 {
		s, parts.query = s[:i], s[i+1:]
	}
	if strings.HasPrefix(s, "//") {
		authority := s[2:]
		s = ""
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			authority, s = authority[:i], authority[i:]
		}
		parts.userInfo, parts.host, parts.port = splitAuthority(authority)
	}
	parts.path = s
	return parts
}

// before reports whether index i comes before the first c in s, or s has no c.
func before(i int, s string, c byte) bool {
	j := strings.IndexByte(s, c)
	return j < 0 || i < j
}

// splitAuthority parses an authority string into its userinfo, host, and port
// components. The last '@' ends the user information; the last ':' starts the
// port unless it belongs to a bracketed IPv6 literal.
func splitAuthority(authority string) (string, string, string) {
	var userinfo, port string

	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		userinfo, hostport = authority[:i], authority[i+1:]
	}

	host := hostport
	if i := strings.LastIndexByte(hostport, ':'); i >= 0 && i > strings.LastIndexByte(hostport, ']') {
		host, port = hostport[:i], hostport[i+1:]
	}
	return userinfo, host, port
}
