package swaggerkit

import "strings"

// securePaths records path and method pairs mounted under bearer auth so the
// served spec can flag them. Route wiring happens on one goroutine at startup,
// same as the mutator registry, so no locking here
var securePaths = map[string][]string{}

// MarkSecurePath records that method on path requires bearer auth
func MarkSecurePath(path, method string) {
	if path == "" || method == "" {
		return
	}
	m := strings.ToLower(method)
	for _, existing := range securePaths[path] {
		if existing == m {
			return
		}
	}
	securePaths[path] = append(securePaths[path], m)
}
