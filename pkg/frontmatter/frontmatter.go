package frontmatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)`)

// Header is the metadata block at the top of a puzzle input file
type Header struct {
	Day     int    `yaml:"day"`
	Title   string `yaml:"title,omitempty"`
	Source  string `yaml:"source,omitempty"` // "example" for the puzzle statement sample
	PartOne string `yaml:"part_one,omitempty"`
	PartTwo string `yaml:"part_two,omitempty"`
}

// HasExpectations reports whether the header pins at least one answer.
func (h *Header) HasExpectations() bool {
	return h != nil && (h.PartOne != "" || h.PartTwo != "")
}

// Parse extracts the header from content and returns it with the remaining
// body. Content without a header is returned unchanged with a nil header.
func Parse(content string) (*Header, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		return nil, content, nil
	}

	var h Header
	if err := yaml.Unmarshal([]byte(matches[1]), &h); err != nil {
		return nil, content, fmt.Errorf("failed to parse input header: %w", err)
	}

	return &h, matches[2], nil
}

// Build renders the header with a fixed field order
func Build(h *Header) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("day: %d\n", h.Day))
	if h.Title != "" {
		sb.WriteString(fmt.Sprintf("title: %s\n", quote(h.Title)))
	}
	if h.Source != "" {
		sb.WriteString(fmt.Sprintf("source: %s\n", quote(h.Source)))
	}

	// Answers are always quoted so numeric answers stay strings.
	if h.PartOne != "" {
		sb.WriteString(fmt.Sprintf("part_one: %s\n", strconv.Quote(h.PartOne)))
	}
	if h.PartTwo != "" {
		sb.WriteString(fmt.Sprintf("part_two: %s\n", strconv.Quote(h.PartTwo)))
	}
	sb.WriteString("---")

	return sb.String()
}

// BuildContent joins a header and a body into a complete input file
func BuildContent(h *Header, body string) string {
	return Build(h) + "\n" + body
}

func quote(s string) string {
	if strings.ContainsAny(s, ",:[]{}\"'#") {
		return strconv.Quote(s)
	}
	return s
}
