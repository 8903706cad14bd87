package record

import "go/token"

// ReservedSuffix is appended to field names that collide with a reserved
// word.
const ReservedSuffix = "_"

// pythonKeywords covers producers that emit Python-shaped keys ("class",
// "from", "import"). Go keywords are checked through go/token.
var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// IsReserved reports whether name cannot be used verbatim as a field name.
func IsReserved(name string) bool {
	if token.IsKeyword(name) {
		return true
	}
	_, ok := pythonKeywords[name]
	return ok
}

// FieldName returns the normalized field name for an input key.
func FieldName(key string) string {
	if IsReserved(key) {
		return key + ReservedSuffix
	}
	return key
}
