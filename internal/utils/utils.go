package utils

// NormalizeIdentifier converts the name of an identifier (operator, attribute or parameter name)
// to a valid one: only letters, digits, and underscores are allowed.
//
// Invalid characters are replaced with underscores.
// If the name starts with a digit, it is prefixed with an underscore.
func NormalizeIdentifier(name string) string {
	if name == "" {
		return ""
	}
	result := make([]rune, 0, len(name)+1)
	if name[0] >= '0' && name[0] <= '9' {
		result = append(result, '_')
	}
	for _, r := range name {
		if isIdentifierRune(r) {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

// IsValidIdentifier returns whether name is non-empty, doesn't start with a digit and is only composed of
// letters, digits and underscores. That is, whether NormalizeIdentifier(name) == name.
func IsValidIdentifier(name string) bool {
	return name != "" && NormalizeIdentifier(name) == name
}

func isIdentifierRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
