package combine

import (
	"fmt"
	"strings"

	"promptpack/pkg/patterns"
)

// rootSegment returns the first path component of fullPath.
func rootSegment(fullPath string) string {
	root, _, _ := strings.Cut(fullPath, patterns.Separator)
	return root
}

// relativePath strips the root segment and its separator from fullPath.
// A path no longer than the root yields "".
func relativePath(fullPath, root string) string {
	if len(fullPath) <= len(root)+1 {
		return ""
	}
	return fullPath[len(root)+1:]
}

// formatBlock renders one file as a labeled fenced block.
func formatBlock(fullPath, content string) string {
	return fmt.Sprintf("\n\nFile: %s\n\n```\n%s\n```", fullPath, content)
}
