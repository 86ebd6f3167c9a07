package validate

// pythonKeywords is the Python 3 reserved-word set. A user-entered name equal
// to one of these (case-sensitive) can never become a generated identifier.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

// supportedModels is the closed set of model identifiers the generated
// project can run against.
var supportedModels = map[string]bool{
	"gemini-2.0-flash":           true,
	"gemini-2.5-flash":           true,
	"gemini-2.5-pro":             true,
	"gpt-4o":                     true,
	"gpt-4o-mini":                true,
	"claude-3-5-sonnet-20241022": true,
	"claude-3-5-haiku-20241022":  true,
}

// SupportedModels returns the supported model identifiers in sorted order,
// for display in validation messages and the CLI.
func SupportedModels() []string {
	return []string{
		"claude-3-5-haiku-20241022",
		"claude-3-5-sonnet-20241022",
		"gemini-2.0-flash",
		"gemini-2.5-flash",
		"gemini-2.5-pro",
		"gpt-4o",
		"gpt-4o-mini",
	}
}
