package scriptview

import "strings"

// shebangRule maps an interpreter substring to a script type.
type shebangRule struct {
	substr string
	typ    ScriptType
}

// shebangRules are checked in order against the text after "#!",
// including interpreter arguments so that "env python3" style lines
// classify correctly. First match wins.
var shebangRules = []shebangRule{
	{"python", Python},
	{"perl", Perl},
	{"ruby", Ruby},
	{"bash", Shell},
	{"zsh", Shell},
	{"sh", Shell},
}

// contentRule maps content markers to a script type. A rule matches
// when any of its markers occurs in the lowercased text.
type contentRule struct {
	typ     ScriptType
	markers []string
}

// contentRules are evaluated in order when the shebang is absent or
// unrecognized. First match wins; there is no scoring.
var contentRules = []contentRule{
	{Python, []string{"import ", "def ", "print(", "from ", "class "}},
	{Perl, []string{"use strict", "my $", `print "`, "#!/usr/bin/perl"}},
	{Ruby, []string{"def ", "puts ", "require ", "class ", "end"}},
	{Shell, []string{"if [", "echo ", "for ", "while ", "function "}},
}

// Classify determines the script type of text. A recognized shebang
// interpreter takes priority; otherwise case-insensitive content
// heuristics apply. Free-form scripts with no recognizable markers are
// treated as shell, the common case for package install scripts.
func Classify(text string) ScriptType {
	if typ, ok := ClassifyShebang(text); ok {
		return typ
	}

	lower := strings.ToLower(text)
	for _, rule := range contentRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.typ
			}
		}
	}

	return Shell
}

// ClassifyShebang classifies text by its shebang line alone. ok is
// false when there is no shebang or the interpreter matches no known
// language.
func ClassifyShebang(text string) (ScriptType, bool) {
	rest, found := strings.CutPrefix(firstLine(text), "#!")
	if !found {
		return Unknown, false
	}
	for _, rule := range shebangRules {
		if strings.Contains(rest, rule.substr) {
			return rule.typ, true
		}
	}
	return Unknown, false
}
