// File: pkg/combine/binary.go
package combine

import "strings"

// isBinaryContent treats any text holding a NUL byte as binary.
func isBinaryContent(content string) bool {
	return strings.IndexByte(content, 0) >= 0
}
