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

import "fmt"

// ValidateAuthority checks that an authority with user information or a port
// also has a host.
func ValidateAuthority(userInfo, host string, port int) error {
	if host != "" {
		return nil
	}
	if userInfo != "" {
		return &StructureError{
			Message:     "user information requires a host",
			Combination: fmt.Sprintf("user-info=%q host=%q", userInfo, host),
		}
	}
	if port > 0 {
		return &StructureError{
			Message:     "port requires a host",
			Combination: fmt.Sprintf("port=%d host=%q", port, host),
		}
	}
	return nil
}

// ValidateURI checks that scheme, authority and path combine into a URI. The
// accepted shapes are scheme+authority+path, scheme+path, authority+path and
// a path alone: the path is always required.
func ValidateURI(scheme, authority, path string) error {
	if path != "" {
		return nil
	}
	return &StructureError{
		Message:     "URI needs a path",
		Combination: fmt.Sprintf("scheme=%q authority=%q path=%q", scheme, authority, path),
	}
}
