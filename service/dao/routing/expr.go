package routing

import (
	"os"
	"regexp"
)

var envExpr = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]*)\}`)

// expandEnv replaces every ${env.KEY} occurrence in the input with the value
// of the environment variable KEY (or "" when unset). Expressions whose key
// contains characters outside [A-Za-z0-9_] are left untouched.
func expandEnv(value string) string {
	return envExpr.ReplaceAllStringFunc(value, func(match string) string {
		key := match[len("${env.") : len(match)-1]
		return os.Getenv(key)
	})
}
