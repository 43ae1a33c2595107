// Package editor implements a structured rich-text document: typed
// blocks carrying mark-annotated text spans, serialized to a markup
// string for storage. It backs the editing surface, the slash-command
// palette and the markdown export.
package editor

type BlockType string

const (
	BlockParagraph   BlockType = "paragraph"
	BlockHeading     BlockType = "heading"
	BlockBulletList  BlockType = "bulletList"
	BlockOrderedList BlockType = "orderedList"
	BlockTaskList    BlockType = "taskList"
	BlockCodeBlock   BlockType = "codeBlock"
	BlockBlockquote  BlockType = "blockquote"
	BlockImage       BlockType = "image"
)

type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Mark is a bitmask of inline formatting marks. Links are not a bit:
// they carry an href and live on the span directly.
type Mark uint8

const (
	MarkBold Mark = 1 << iota
	MarkItalic
	MarkUnderline
	MarkStrike
)

// Span is a run of text sharing one set of marks. A non-empty Href
// makes the run a link.
type Span struct {
	Text  string
	Marks Mark
	Href  string
}

type ListItem struct {
	Spans   []Span
	Checked bool // task lists only
}

// Block is one top-level node. Exactly one of Spans, Items or Src is
// meaningful, depending on Type.
type Block struct {
	Type  BlockType
	Level int       // headings: 1-3
	Align Alignment // headings and paragraphs only; "" means left
	Spans []Span
	Items []ListItem
	Src   string // images
}

type Document struct {
	Blocks []Block
}

// BlockSpec describes a block capability: which tag serializes it and
// what the block supports. The registry replaces the upstream
// framework's extension system.
type BlockSpec struct {
	Tag         string
	AllowsMarks bool
	AllowsAlign bool
	IsList      bool
}

var blockRegistry = map[BlockType]BlockSpec{
	BlockParagraph:   {Tag: "p", AllowsMarks: true, AllowsAlign: true},
	BlockHeading:     {Tag: "h", AllowsMarks: true, AllowsAlign: true},
	BlockBulletList:  {Tag: "ul", AllowsMarks: true, IsList: true},
	BlockOrderedList: {Tag: "ol", AllowsMarks: true, IsList: true},
	BlockTaskList:    {Tag: "ul", AllowsMarks: true, IsList: true},
	BlockCodeBlock:   {Tag: "pre"},
	BlockBlockquote:  {Tag: "blockquote", AllowsMarks: true},
	BlockImage:       {Tag: "img"},
}

// BlockSpecFor returns the registered capability set for a block type.
func BlockSpecFor(t BlockType) BlockSpec {
	return blockRegistry[t]
}

// markSpec pairs a mark bit with its serialization tag. Order here is
// the nesting order in the markup, innermost last.
type markSpec struct {
	mark Mark
	tag  string
}

var markRegistry = []markSpec{
	{MarkBold, "strong"},
	{MarkItalic, "em"},
	{MarkUnderline, "u"},
	{MarkStrike, "s"},
}

// Text returns the block's plain text, list items joined as-is.
func (b *Block) Text() string {
	if b.Type == BlockImage {
		return ""
	}
	var out string
	if BlockSpecFor(b.Type).IsList {
		for _, item := range b.Items {
			out += spansText(item.Spans)
		}
		return out
	}
	return spansText(b.Spans)
}

func spansText(spans []Span) string {
	var out string
	for _, s := range spans {
		out += s.Text
	}
	return out
}

func spansLength(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += len([]rune(s.Text))
	}
	return n
}

// splitSpans cuts a span run at a rune offset.
func splitSpans(spans []Span, off int) (left, right []Span) {
	pos := 0
	for _, s := range spans {
		runes := []rune(s.Text)
		if pos+len(runes) <= off {
			left = append(left, s)
			pos += len(runes)
			continue
		}
		if pos >= off {
			right = append(right, s)
			pos += len(runes)
			continue
		}
		cut := off - pos
		l, r := s, s
		l.Text = string(runes[:cut])
		r.Text = string(runes[cut:])
		left = append(left, l)
		right = append(right, r)
		pos += len(runes)
	}
	return left, right
}

// cutSpans splits a span run into before/middle/after around a range.
func cutSpans(spans []Span, from, to int) (before, middle, after []Span) {
	before, rest := splitSpans(spans, from)
	middle, after = splitSpans(rest, to-from)
	return before, middle, after
}

// mergeSpans drops empty spans and joins adjacent spans with equal
// formatting.
func mergeSpans(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Marks == s.Marks && out[n-1].Href == s.Href {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

func cloneSpans(spans []Span) []Span {
	out := make([]Span, len(spans))
	copy(out, spans)
	return out
}

func (d *Document) clone() *Document {
	out := &Document{Blocks: make([]Block, len(d.Blocks))}
	for i, b := range d.Blocks {
		nb := b
		nb.Spans = cloneSpans(b.Spans)
		if b.Items != nil {
			nb.Items = make([]ListItem, len(b.Items))
			for j, item := range b.Items {
				nb.Items[j] = ListItem{Spans: cloneSpans(item.Spans), Checked: item.Checked}
			}
		}
		out.Blocks[i] = nb
	}
	return out
}

func emptyDocument() *Document {
	return &Document{Blocks: []Block{{Type: BlockParagraph}}}
}
