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

// Package uri provides an immutable Uniform Resource Identifier value as
// defined by RFC 3986, together with the normalizers that reduce each of its
// components to a canonical form.
//
// The package offers:
//   - URI: an immutable value whose With* methods return modified copies and
//     whose String method recomposes the canonical form.
//   - Parse: splits a raw string into components and builds a URI from them.
//   - Component normalizers (NormalizeScheme, NormalizeHost, NormalizeIPv6,
//     NormalizePath, ...) usable on their own.
//
// Scheme, host, path and query are strict: a value that cannot be normalized
// is reported as an error. User information, port and fragment are lenient:
// a malformed value silently clears the field on the returned copy.
package uri

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Components holds the canonical parts of a URI. A Port of 0 means that no
// port is set.
type Components struct {
	Scheme       string `json:"scheme,omitempty"       yaml:"scheme,omitempty"`
	UserLogin    string `json:"userLogin,omitempty"    yaml:"userLogin,omitempty"`
	UserPassword string `json:"userPassword,omitempty" yaml:"userPassword,omitempty"`
	Host         string `json:"host,omitempty"         yaml:"host,omitempty"`
	Port         int    `json:"port,omitempty"         yaml:"port,omitempty"`
	Path         string `json:"path,omitempty"         yaml:"path,omitempty"`
	Query        string `json:"query,omitempty"        yaml:"query,omitempty"`
	Fragment     string `json:"fragment,omitempty"     yaml:"fragment,omitempty"`
}

// URI is an immutable URI value. The zero value is the empty URI. Values are
// safe to copy and to share between goroutines.
type URI struct {
	scheme       string
	userLogin    string
	userPassword string
	host         string
	hostKind     HostKind
	port         int
	path         string
	query        string
	fragment     string
}

// New returns the empty URI.
func New() URI {
	return URI{}
}

// WithScheme returns a copy of u with the given scheme. An invalid scheme is
// reported as a *NormalizationError and u is left as is.
//
// The standard port check of WithPort is not re-evaluated when the scheme
// changes afterwards.
func (u URI) WithScheme(raw string) (URI, error) {
	scheme, err := NormalizeScheme(raw)
	if err != nil {
		return u, err
	}
	u.scheme = scheme
	return u, nil
}

// WithUserInfo returns a copy of u with the given login and password. An empty
// login clears both; so does a login or password with a broken percent
// encoding.
func (u URI) WithUserInfo(login, password string) URI {
	u.userLogin, u.userPassword = "", ""
	if login == "" {
		return u
	}
	l, err := NormalizeUserInfoValue(login, false)
	if err != nil {
		return u
	}
	p, err := NormalizeUserInfoValue(password, true)
	if err != nil {
		return u
	}
	u.userLogin, u.userPassword = l, p
	return u
}

// WithHost returns a copy of u with the given host. An invalid host is
// reported as a *NormalizationError and u is left as is.
func (u URI) WithHost(raw string) (URI, error) {
	host, kind, err := classifyHost(raw)
	if err != nil {
		return u, err
	}
	u.host, u.hostKind = host, kind
	return u, nil
}

// WithPort returns a copy of u with the given port. A port outside
// [0, 65535], or equal to the standard port of the current scheme, clears the
// port.
func (u URI) WithPort(port int) URI {
	p, err := NormalizePort(port)
	if err != nil {
		p = 0
	}
	if std, ok := standardPorts[u.scheme]; ok && std == p {
		p = 0
	}
	u.port = p
	return u
}

// WithPath returns a copy of u with the given path. An invalid path is
// reported as a *NormalizationError and u is left as is.
func (u URI) WithPath(raw string) (URI, error) {
	path, err := NormalizePath(raw)
	if err != nil {
		return u, err
	}
	u.path = path
	return u, nil
}

// WithQuery returns a copy of u with the given query, without the leading
// '?'. An invalid query is reported as a *NormalizationError and u is left as
// is.
func (u URI) WithQuery(raw string) (URI, error) {
	query, err := NormalizeQuery(raw)
	if err != nil {
		return u, err
	}
	u.query = query
	return u, nil
}

// WithFragment returns a copy of u with the given fragment, without the
// leading '#'. A fragment with a broken percent encoding clears the fragment.
func (u URI) WithFragment(raw string) URI {
	fragment, err := NormalizeFragment(raw)
	if err != nil {
		fragment = ""
	}
	u.fragment = fragment
	return u
}

// Scheme returns the scheme, without the trailing ':'.
func (u URI) Scheme() string { return u.scheme }

// UserLogin returns the login part of the user information.
func (u URI) UserLogin() string { return u.userLogin }

// UserPassword returns the password part of the user information.
func (u URI) UserPassword() string { return u.userPassword }

// UserInfo returns "login" or "login:password".
func (u URI) UserInfo() string {
	if u.userPassword == "" {
		return u.userLogin
	}
	return u.userLogin + ":" + u.userPassword
}

// Host returns the host. IPv6 literals are enclosed in brackets.
func (u URI) Host() string { return u.host }

// HostKind returns the grammar the host was recognized with.
func (u URI) HostKind() HostKind { return u.hostKind }

// Port returns the port and whether one is set.
func (u URI) Port() (int, bool) { return u.port, u.port != 0 }

// Path returns the path.
func (u URI) Path() string { return u.path }

// Query returns the query, without the leading '?'.
func (u URI) Query() string { return u.query }

// Fragment returns the fragment, without the leading '#'.
func (u URI) Fragment() string { return u.fragment }

// Authority returns "[user-info@]host[:port]". It is empty when there is no
// host, including when user information or a port is set without one.
func (u URI) Authority() string {
	userInfo := u.UserInfo()
	if ValidateAuthority(userInfo, u.host, u.port) != nil || u.host == "" {
		return ""
	}
	var b strings.Builder
	if userInfo != "" {
		b.WriteString(userInfo)
		b.WriteByte('@')
	}
	b.WriteString(u.host)
	if u.port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	return b.String()
}

// ComposeNFC returns a copy of u whose user information, path, query and
// fragment have their percent-decoded text put in Unicode Normalization Form
// C, so that canonically equivalent spellings such as "e%CC%81" and "%C3%A9"
// compare equal. Normalization itself never does this: it keeps correctly
// encoded octets as they are. Text that is not valid UTF-8 is left untouched.
func (u URI) ComposeNFC() URI {
	if u.userLogin != "" {
		u.userLogin = composeNFC(u.userLogin, userLoginAllowed)
		u.userPassword = composeNFC(u.userPassword, userPasswordAllowed)
	}

	segments := strings.Split(u.path, "/")
	for i, segment := range segments {
		segments[i] = composeNFC(segment, pathSegmentAllowed)
	}
	u.path = strings.Join(segments, "/")

	if u.query != "" {
		pairs := strings.Split(u.query, "&")
		for i, pair := range pairs {
			key, value, ok := strings.Cut(pair, "=")
			pairs[i] = composeNFC(key, queryKeyAllowed)
			if ok {
				pairs[i] += "=" + composeNFC(value, queryValueAllowed)
			}
		}
		u.query = strings.Join(pairs, "&")
	}

	if fragment, err := percentDecode(u.fragment); err == nil {
		u.fragment = fragmentEscaper.Replace(toNFC(fragment))
	}
	return u
}

// Components returns the canonical parts of u.
func (u URI) Components() Components {
	return Components{
		Scheme:       u.scheme,
		UserLogin:    u.userLogin,
		UserPassword: u.userPassword,
		Host:         u.host,
		Port:         u.port,
		Path:         u.path,
		Query:        u.query,
		Fragment:     u.fragment,
	}
}

// String recomposes the canonical form of u. It returns the empty string when
// the components do not form a valid URI.
func (u URI) String() string {
	authority := u.Authority()
	if ValidateURI(u.scheme, authority, u.path) != nil {
		return ""
	}

	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if authority != "" {
		b.WriteString("//")
		b.WriteString(authority)
	}

	path := u.path
	switch {
	case authority != "" && path != "" && path[0] != '/':
		b.WriteByte('/')
	case authority == "" && strings.HasPrefix(path, "//"):
		// A path starting with "//" would read as an authority.
		path = "/" + strings.TrimLeft(path, "/")
	}
	b.WriteString(path)

	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// Equal reports whether u and other have the same canonical components.
func (u URI) Equal(other URI) bool {
	return u == other
}

// RegistrableDomain returns the public suffix plus one label of a domain host
// (e.g. "example.co.uk" for "www.example.co.uk"). IP literals are returned as
// is and the empty string is returned when there is no host.
func (u URI) RegistrableDomain() string {
	if u.hostKind != HostDomain {
		return u.host
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(u.host)
	if err != nil {
		return u.host
	}
	return domain
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface by parsing
// the text with Parse.
func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a
// JSON string.
func (u URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. The empty JSON
// string decodes to the empty URI.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*u = URI{}
		return nil
	}
	return u.UnmarshalText([]byte(s))
}
