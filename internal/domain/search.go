package domain

// SearchMatch is a single matching line from a content search. Line
// numbers are 1-based; Content carries the line without its trailing
// newline.
type SearchMatch struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Content string `json:"content" yaml:"content"`
}
