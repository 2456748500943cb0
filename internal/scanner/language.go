package scanner

import "strings"

// languagesByExtension maps source file extensions to display language names.
var languagesByExtension = map[string]string{
	".py":    "Python",
	".pyw":   "Python",
	".go":    "Go",
	".nim":   "Nimrod",
	".js":    "Javascript",
	".jsx":   "Javascript",
	".html":  "Javascript",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".rs":    "Rust",
	".java":  "Java",
	".c":     "C",
	".h":     "C",
	".cc":    "C++",
	".cpp":   "C++",
	".hpp":   "C++",
	".rb":    "Ruby",
	".sh":    "Shell",
	".as":    "ActionScript",
	".swift": "Swift",
	".kt":    "Kotlin",
}

// lineCommentByLanguage maps a language to its single-line comment marker.
// Lines that consist only of such a comment are excluded from SLOC.
var lineCommentByLanguage = map[string]string{
	"Python":       "#",
	"Ruby":         "#",
	"Shell":        "#",
	"Go":           "//",
	"Javascript":   "//",
	"TypeScript":   "//",
	"Rust":         "//",
	"Java":         "//",
	"C":            "//",
	"C++":          "//",
	"ActionScript": "//",
	"Swift":        "//",
	"Kotlin":       "//",
	"Nimrod":       "#",
}

// LanguageForExtension returns the language for a file extension, or ""
// when the extension is not a recognized source type. The extension is
// matched case-insensitively and may omit the leading dot.
func LanguageForExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return languagesByExtension[ext]
}
