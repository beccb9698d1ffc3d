package ast

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language identifies a supported grammar. LangUnsupported files never
// reach the AST detector; the scanner falls back to the .env detector or
// skips the AST phase entirely for them.
type Language int

const (
	LangUnsupported Language = iota
	LangPython
	LangJavaScript
	LangTypeScript
	LangGo
	LangRuby
	LangJava
	LangRust
)

// LanguageForPath maps a file extension to a supported Language.
func LanguageForPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return LangPython
	case ".js", ".jsx", ".mjs", ".cjs":
		return LangJavaScript
	case ".ts", ".tsx":
		return LangTypeScript
	case ".go":
		return LangGo
	case ".rb":
		return LangRuby
	case ".java":
		return LangJava
	case ".rs":
		return LangRust
	default:
		return LangUnsupported
	}
}

// Match is a raw AST-detector hit: the trigger group that fired, and the
// half-open byte range of the matched string-literal value with its
// surrounding quotes stripped.
type Match struct {
	PatternID string
	Start     int
	End       int
}

// assignmentQuery captures (@name, @value) pairs for one grammar. The two
// captures must appear in lockstep: the Nth @name corresponds to the Nth
// @value in the match's capture list.
var assignmentQueries = map[Language]string{
	LangPython: `
		(assignment left: (identifier) @name right: (string) @value)
		(assignment left: (attribute attribute: (identifier) @name) right: (string) @value)
		(keyword_argument name: (identifier) @name value: (string) @value)
		(pair key: (string) @name value: (string) @value)
	`,
	LangJavaScript: `
		(variable_declarator name: (identifier) @name value: (string) @value)
		(assignment_expression left: (identifier) @name right: (string) @value)
		(assignment_expression left: (member_expression property: (property_identifier) @name) right: (string) @value)
		(pair key: (property_identifier) @name value: (string) @value)
		(pair key: (string) @name value: (string) @value)
	`,
	LangTypeScript: `
		(variable_declarator name: (identifier) @name value: (string) @value)
		(assignment_expression left: (identifier) @name right: (string) @value)
		(assignment_expression left: (member_expression property: (property_identifier) @name) right: (string) @value)
		(pair key: (property_identifier) @name value: (string) @value)
		(pair key: (string) @name value: (string) @value)
	`,
	LangGo: `
		(short_var_declaration left: (expression_list (identifier) @name) right: (expression_list (interpreted_string_literal) @value))
		(assignment_statement left: (expression_list (identifier) @name) right: (expression_list (interpreted_string_literal) @value))
		(keyed_element (literal_element (identifier) @name) (literal_element (interpreted_string_literal) @value))
	`,
	LangRuby: `
		(assignment left: (identifier) @name right: (string) @value)
		(pair key: (hash_key_symbol) @name value: (string) @value)
		(pair key: (string) @name value: (string) @value)
	`,
	LangJava: `
		(variable_declarator name: (identifier) @name value: (string_literal) @value)
		(field_declaration declarator: (variable_declarator name: (identifier) @name value: (string_literal) @value))
		(assignment_expression left: (identifier) @name right: (string_literal) @value)
	`,
	LangRust: `
		(let_declaration pattern: (identifier) @name value: (string_literal) @value)
		(assignment_expression left: (identifier) @name right: (string_literal) @value)
		(field_expression field: (field_identifier) @name value: (string_literal) @value)
	`,
}

func grammarFor(lang Language) *sitter.Language {
	switch lang {
	case LangPython:
		return python.GetLanguage()
	case LangJavaScript:
		return javascript.GetLanguage()
	case LangTypeScript:
		return typescript.GetLanguage()
	case LangGo:
		return golang.GetLanguage()
	case LangRuby:
		return ruby.GetLanguage()
	case LangJava:
		return java.GetLanguage()
	case LangRust:
		return rust.GetLanguage()
	default:
		return nil
	}
}

// Detector runs the tree-sitter assignment queries and resolves survivors
// against the trigger groups the scanner assembled for the current file's
// must-run AST-strategy patterns. One Detector is safe for concurrent use:
// parsers are checked out of a per-language pool and never shared between
// concurrent callers while in use.
type Detector struct {
	mu      sync.Mutex
	pools   map[Language]*sync.Pool
	queries map[Language]*sitter.Query
}

// NewDetector compiles every supported grammar's assignment query once.
func NewDetector() (*Detector, error) {
	d := &Detector{
		pools:   make(map[Language]*sync.Pool),
		queries: make(map[Language]*sitter.Query),
	}
	for lang, src := range assignmentQueries {
		grammar := grammarFor(lang)
		q, err := sitter.NewQuery([]byte(src), grammar)
		if err != nil {
			return nil, err
		}
		d.queries[lang] = q
		d.pools[lang] = &sync.Pool{
			New: func() any {
				p := sitter.NewParser()
				p.SetLanguage(grammar)
				return p
			},
		}
	}
	return d, nil
}

// Detect parses content under lang and returns one Match per string-literal
// assignment whose target name fires a trigger group, after stripping
// surrounding quotes and applying the 8-120 character value-length filter.
func (d *Detector) Detect(ctx context.Context, content []byte, lang Language, groups []TriggerGroup) ([]Match, error) {
	query, ok := d.queries[lang]
	if !ok {
		return nil, nil
	}
	pool := d.pools[lang]
	parser := pool.Get().(*sitter.Parser)
	defer pool.Put(parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, tree.RootNode())

	var out []Match
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		var nameNode, valueNode *sitter.Node
		for _, c := range m.Captures {
			capName := query.CaptureNameForId(c.Index)
			switch capName {
			case "name":
				nameNode = c.Node
			case "value":
				valueNode = c.Node
			}
		}
		if nameNode == nil || valueNode == nil {
			continue
		}

		name := stripQuotes(nameNode.Content(content))
		valStart, valEnd := stripQuoteRange(content, int(valueNode.StartByte()), int(valueNode.EndByte()))
		valLen := valEnd - valStart
		if valLen < 8 || valLen > 120 {
			continue
		}

		group, matched := FirstMatch(groups, name)
		if !matched {
			continue
		}

		out = append(out, Match{PatternID: group.PatternID, Start: valStart, End: valEnd})
	}
	return out, nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// stripQuoteRange narrows [start, end) by one byte on each side when both
// boundary bytes are matching quote characters.
func stripQuoteRange(content []byte, start, end int) (int, int) {
	if end-start < 2 {
		return start, end
	}
	first, last := content[start], content[end-1]
	if (first == '"' || first == '\'' || first == '`') && first == last {
		return start + 1, end - 1
	}
	return start, end
}
