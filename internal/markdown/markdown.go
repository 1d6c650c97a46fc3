package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a section heading found in a document.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// FencedBlock is the literal content of a fenced code block.
type FencedBlock struct {
	Language string
	Content  string
	Line     int
}

// Parse parses a Markdown document into a Goldmark AST.
func Parse(src []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(src))
}

// Headings returns the plain text of every heading at the given level, in
// document order. ATX and setext headings are treated the same.
func Headings(src []byte, level int) []Heading {
	root := Parse(src)
	lines := newLineIndex(src)

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if h.Level == level {
			headings = append(headings, Heading{
				Level: h.Level,
				Text:  inlineText(h, src),
				Line:  lines.lineOf(blockStart(h)),
			})
		}
		// Headings cannot contain other headings.
		return gmast.WalkSkipChildren, nil
	})

	return headings
}

// FencedBlocks returns every fenced code block whose info string language is
// exactly language, in document order. Blocks nested in lists or quotes are
// included.
// Indented code blocks never match since they carry no language.
func FencedBlocks(src []byte, language string) []FencedBlock {
	root := Parse(src)
	lines := newLineIndex(src)

	blocks := make([]FencedBlock, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		fb, ok := n.(*gmast.FencedCodeBlock)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if string(fb.Language(src)) != language {
			return gmast.WalkSkipChildren, nil
		}

		var buf bytes.Buffer
		segs := fb.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			buf.Write(seg.Value(src))
		}

		blocks = append(blocks, FencedBlock{
			Language: language,
			Content:  buf.String(),
			Line:     lines.lineOf(blockStart(fb)),
		})
		return gmast.WalkSkipChildren, nil
	})

	return blocks
}

// inlineText concatenates the literal text below n, so that "## [1.2.0](url)"
// yields "1.2.0" and soft line breaks become spaces.
func inlineText(n gmast.Node, src []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := c.(type) {
		case *gmast.Text:
			sb.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(node.Value)
		case *gmast.AutoLink:
			sb.Write(node.Label(src))
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// blockStart returns the byte offset where a block's content begins, or -1.
func blockStart(n gmast.Node) int {
	if segs := n.Lines(); segs != nil && segs.Len() > 0 {
		return segs.At(0).Start
	}
	return -1
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int
}

func newLineIndex(src []byte) lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts}
}

func (l lineIndex) lineOf(offset int) int {
	if offset < 0 {
		return 0
	}
	lo, hi := 0, len(l.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}
