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
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const upperHex = "0123456789ABCDEF"

// unhex returns the value of an ASCII hexadecimal digit.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// percentDecode replaces every "%XX" triplet of s with the octet it encodes.
// A '%' that is not followed by two hexadecimal digits is an error.
func percentDecode(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(s[i+1]) || !isASCIIHexDigit(s[i+2]) {
			end := min(i+3, len(s))
			return "", &kindError{message: "Invalid percent encoding", details: s[i:end]}
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return b.String(), nil
}

// percentEncode escapes every octet of s that is neither unreserved nor part
// of allowed. Escapes use upper-case hexadecimal digits.
func percentEncode(s, allowed string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(allowed, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

// toNFC puts decoded text in Unicode Normalization Form C. Octet sequences
// that are not valid UTF-8 are returned untouched.
func toNFC(s string) string {
	if !utf8.ValidString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// recode decodes s and encodes it again, so that equivalent spellings such as
// "%7e", "%7E" and "~" share one canonical form. Correctly encoded octets are
// left as they are and the result is stable: recode(recode(s)) == recode(s).
func recode(s, allowed string) (string, error) {
	decoded, err := percentDecode(s)
	if err != nil {
		return "", err
	}
	return percentEncode(decoded, allowed), nil
}

// composeNFC is recode with the decoded text put in NFC. s must already be
// canonical; a value that does not decode is returned as is.
func composeNFC(s, allowed string) string {
	decoded, err := percentDecode(s)
	if err != nil {
		return s
	}
	return percentEncode(toNFC(decoded), allowed)
}
