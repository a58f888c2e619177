package tools

// Argument extraction helpers. MCP arguments arrive as JSON-decoded values,
// so numbers are float64 and nested objects are map[string]interface{}.

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func boolArg(args map[string]interface{}, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// intArg reads a numeric argument, applying def when absent or malformed.
func intArg(args map[string]interface{}, key string, def int) int {
	if f, ok := args[key].(float64); ok {
		return int(f)
	}
	return def
}

// floatArg reads a numeric argument, reporting presence.
func floatArg(args map[string]interface{}, key string) (float64, bool) {
	f, ok := args[key].(float64)
	return f, ok
}

func objectArg(args map[string]interface{}, key string) map[string]interface{} {
	m, _ := args[key].(map[string]interface{})
	return m
}

// has reports whether the caller supplied the argument at all. Absence of a
// field in the input means absence in the outgoing body.
func has(args map[string]interface{}, key string) bool {
	_, ok := args[key]
	return ok
}

// capLimit bounds a caller-supplied page size to the tool's maximum.
func capLimit(limit, max int) int {
	if limit > max {
		return max
	}
	return limit
}
