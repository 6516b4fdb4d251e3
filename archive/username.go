package archive

// NormalizeUsername strips the disambiguation suffix Instagram appends to
// certain display names in exports: an underscore followed by 10 random
// alphanumeric characters.
//
// Names of 11+ characters unconditionally lose their last 11 characters;
// shorter names are truncated at their last underscore, or returned
// unchanged if they have none. Characters, not bytes: exported names often
// carry multi-byte runes. This is a heuristic, not a parser: a legitimate
// short name containing an underscore will be truncated incorrectly, and
// applying it twice keeps stripping.
func NormalizeUsername(name string) string {
	runes := []rune(name)
	if len(runes) < 11 {
		for i := len(runes) - 1; i >= 0; i-- {
			if runes[i] == '_' {
				return string(runes[:i])
			}
		}
		return name
	}
	return string(runes[:len(runes)-11])
}
