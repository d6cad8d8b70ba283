package patterns

// DefaultExcludePatterns is the exclude list used when no patterns are configured.
var DefaultExcludePatterns = []string{
	// VCS, IDEs, build outputs, dependencies
	".git/", ".idea/", ".vscode/", ".DS_Store", "build/", "dist/", "out/",
	"node_modules/", "vendor/", "Pods/", "package-lock.json", "yarn.lock",
	".gradle/", "gradle/", "gradlew", "gradlew.bat", "local.properties",
	// Common binary file extensions
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico", ".pdf",
	".zip", ".jar", ".exe", ".dll", ".ttf", ".woff", ".woff2",
}

// Defaults returns the default set for mode. IncludeOnly has no defaults.
func Defaults(mode Mode) PatternSet {
	if mode == IncludeOnly {
		return PatternSet{}
	}
	return NewPatternSet(DefaultExcludePatterns...)
}
