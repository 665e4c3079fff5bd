package blocktree

import "strings"

const PlainTextLanguage = "plain text"

// languageTags maps lowercase identifiers, aliases included, to the code-block
// language tags the document store accepts.
var languageTags = map[string]string{
	"plain text": PlainTextLanguage,
	"plaintext":  PlainTextLanguage,
	"text":       PlainTextLanguage,
	"txt":        PlainTextLanguage,

	"bash":        "bash",
	"c":           "c",
	"c++":         "c++",
	"cpp":         "c++",
	"c#":          "c#",
	"csharp":      "c#",
	"cs":          "c#",
	"clojure":     "clojure",
	"css":         "css",
	"dart":        "dart",
	"diff":        "diff",
	"docker":      "docker",
	"dockerfile":  "docker",
	"elixir":      "elixir",
	"erlang":      "erlang",
	"go":          "go",
	"golang":      "go",
	"graphql":     "graphql",
	"groovy":      "groovy",
	"haskell":     "haskell",
	"html":        "html",
	"java":        "java",
	"javascript":  "javascript",
	"js":          "javascript",
	"jsx":         "javascript",
	"node":        "javascript",
	"json":        "json",
	"kotlin":      "kotlin",
	"lua":         "lua",
	"makefile":    "makefile",
	"make":        "makefile",
	"markdown":    "markdown",
	"md":          "markdown",
	"mermaid":     "mermaid",
	"nix":         "nix",
	"objective-c": "objective-c",
	"ocaml":       "ocaml",
	"perl":        "perl",
	"php":         "php",
	"powershell":  "powershell",
	"protobuf":    "protobuf",
	"proto":       "protobuf",
	"python":      "python",
	"py":          "python",
	"r":           "r",
	"ruby":        "ruby",
	"rb":          "ruby",
	"rust":        "rust",
	"rs":          "rust",
	"scala":       "scala",
	"scss":        "scss",
	"shell":       "shell",
	"sh":          "shell",
	"zsh":         "shell",
	"console":     "shell",
	"sql":         "sql",
	"swift":       "swift",
	"typescript":  "typescript",
	"ts":          "typescript",
	"tsx":         "typescript",
	"xml":         "xml",
	"yaml":        "yaml",
	"yml":         "yaml",
	"toml":        PlainTextLanguage,
}

// NormalizeLanguage never fails: unknown identifiers map to plain text.
func NormalizeLanguage(raw string) string {
	tag, ok := languageTags[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return PlainTextLanguage
	}

	return tag
}
