package remediation

import "strings"

// lineComment maps a lowercased file extension to the line-comment prefix
// used when the Ignore action needs to append `vet:ignore`.
var lineComment = map[string]string{
	".go": "//", ".rs": "//", ".js": "//", ".jsx": "//", ".mjs": "//", ".cjs": "//",
	".ts": "//", ".tsx": "//", ".java": "//", ".c": "//", ".h": "//", ".cpp": "//",
	".cc": "//", ".hpp": "//", ".cs": "//", ".swift": "//", ".kt": "//", ".kts": "//",
	".scala": "//", ".php": "//", ".dart": "//",
	".py": "#", ".rb": "#", ".sh": "#", ".bash": "#", ".zsh": "#", ".toml": "#",
	".yaml": "#", ".yml": "#", ".r": "#", ".pl": "#", ".ex": "#", ".exs": "#",
	".nix": "#", ".dockerfile": "#", ".env": "#",
	".sql": "--", ".lua": "--", ".hs": "--", ".adb": "--", ".ads": "--",
	".ini": ";", ".cfg": ";", ".asm": ";",
	".tex": "%", ".erl": "%", ".hrl": "%",
	".vim": "'", ".bas": "'",
}

// blockComment maps an extension to a (prefix, suffix) block comment for
// languages with no line-comment syntax of their own.
var blockComment = map[string][2]string{
	".html": {"<!--", "-->"},
	".htm":  {"<!--", "-->"},
	".xml":  {"<!--", "-->"},
	".svg":  {"<!--", "-->"},
	".vue":  {"<!--", "-->"},
	".css":  {"/*", "*/"},
	".scss": {"/*", "*/"},
	".less": {"/*", "*/"},
}

// IgnoreComment returns the text to append to a line to mark it as
// vet:ignore for the given file path's extension.
func IgnoreComment(path string) string {
	ext := strings.ToLower(extOf(path))
	if prefix, ok := lineComment[ext]; ok {
		return prefix + " vet:ignore"
	}
	if be, ok := blockComment[ext]; ok {
		return be[0] + " vet:ignore " + be[1]
	}
	return "# vet:ignore"
}

func extOf(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return path[idx:]
}
