package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a frontmatter block
const Delimiter = "---"

const dateLayout = "2006-01-02"

// Frontmatter represents the structured metadata at the top of a post file
type Frontmatter struct {
	Title         string   `yaml:"title"`
	Subtitle      string   `yaml:"subtitle"`
	Date          string   `yaml:"date"`
	Author        string   `yaml:"author"`
	AuthorProfile string   `yaml:"authorprofile"`
	Role          string   `yaml:"role"`
	Description   string   `yaml:"description"`
	Keywords      []string `yaml:"keywords"`
	TOC           bool     `yaml:"toc"`
	Thumbnail     string   `yaml:"thumbnail"`
	Featured      bool     `yaml:"featured"`
	Category      string   `yaml:"category"`
}

// ParseError represents a metadata parsing error
type ParseError struct {
	Field   string
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s - %s", e.Field, e.Message)
}

// ParseResult contains the parsing outcome with detailed error information
type ParseResult struct {
	Frontmatter *Frontmatter
	Body        string
	Errors      []ParseError
}

// Parser handles frontmatter extraction from Markdown files
type Parser struct {
	strict bool
}

// NewParser creates a new metadata parser.
// In strict mode a missing or malformed date is an error.
func NewParser(strict bool) *Parser {
	return &Parser{
		strict: strict,
	}
}

// Parse extracts frontmatter and body from file content
func (p *Parser) Parse(content string) (*ParseResult, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(strings.NewReader(content), &fm)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	result := &ParseResult{
		Frontmatter: &fm,
		Body:        string(body),
		Errors:      []ParseError{},
	}

	if strings.TrimSpace(fm.Title) == "" {
		result.Errors = append(result.Errors, ParseError{Field: "title", Message: "missing mandatory field"})
	}

	if p.strict {
		switch {
		case fm.Date == "":
			result.Errors = append(result.Errors, ParseError{Field: "date", Message: "missing mandatory field"})
		case validation.Validate(fm.Date, validation.Date(dateLayout)) != nil:
			result.Errors = append(result.Errors, ParseError{Field: "date", Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", fm.Date)})
		}
	}

	if len(result.Errors) > 0 {
		return result, fmt.Errorf("parsing failed with %d errors", len(result.Errors))
	}

	return result, nil
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// Field is a single frontmatter entry. Value must be a string, bool or []string.
type Field struct {
	Key   string
	Value any
}

// Format renders fields as a frontmatter block in the given order.
// Strings are double quoted, booleans plain, lists in flow style:
//
//	title: "My Great Post!"
//	keywords: ["go", "cli"]
//	toc: true
func Format(fields []Field) (string, error) {
	if len(fields) == 0 {
		return Delimiter + "\n" + Delimiter + "\n", nil
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		value, err := valueNode(f.Value)
		if err != nil {
			return "", fmt.Errorf("frontmatter field %q: %w", f.Key, err)
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}, value)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render frontmatter: %w", err)
	}

	return Delimiter + "\n" + string(data) + Delimiter + "\n", nil
}

func valueNode(v any) (*yaml.Node, error) {
	switch value := v.(type) {
	case string:
		return quoted(value), nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}, nil
	case []string:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, item := range value {
			seq.Content = append(seq.Content, quoted(item))
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}
