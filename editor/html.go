package editor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTML serializes the document. The format is the storage contract:
// ParseDocument(d.HTML()) reproduces d exactly, and the wholesale
// overwrite on external load relies on string equality of this output.
func (d *Document) HTML() string {
	var sb strings.Builder
	for i := range d.Blocks {
		renderBlock(&sb, &d.Blocks[i])
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, b *Block) {
	switch b.Type {
	case BlockParagraph:
		openTag(sb, "p", b.Align)
		renderSpans(sb, b.Spans)
		sb.WriteString("</p>")
	case BlockHeading:
		tag := fmt.Sprintf("h%d", b.Level)
		openTag(sb, tag, b.Align)
		renderSpans(sb, b.Spans)
		sb.WriteString("</" + tag + ">")
	case BlockBulletList:
		sb.WriteString("<ul>")
		renderItems(sb, b.Items, false)
		sb.WriteString("</ul>")
	case BlockOrderedList:
		sb.WriteString("<ol>")
		renderItems(sb, b.Items, false)
		sb.WriteString("</ol>")
	case BlockTaskList:
		sb.WriteString(`<ul data-type="taskList">`)
		renderItems(sb, b.Items, true)
		sb.WriteString("</ul>")
	case BlockCodeBlock:
		sb.WriteString("<pre><code>")
		sb.WriteString(html.EscapeString(spansText(b.Spans)))
		sb.WriteString("</code></pre>")
	case BlockBlockquote:
		sb.WriteString("<blockquote>")
		renderSpans(sb, b.Spans)
		sb.WriteString("</blockquote>")
	case BlockImage:
		sb.WriteString(`<img src="` + html.EscapeString(b.Src) + `">`)
	}
}

func openTag(sb *strings.Builder, tag string, align Alignment) {
	if align != "" && align != AlignLeft {
		fmt.Fprintf(sb, `<%s style="text-align: %s">`, tag, align)
		return
	}
	sb.WriteString("<" + tag + ">")
}

func renderItems(sb *strings.Builder, items []ListItem, task bool) {
	for _, item := range items {
		if task {
			fmt.Fprintf(sb, `<li data-checked="%t">`, item.Checked)
		} else {
			sb.WriteString("<li>")
		}
		renderSpans(sb, item.Spans)
		sb.WriteString("</li>")
	}
}

func renderSpans(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		text := strings.ReplaceAll(html.EscapeString(s.Text), "\n", "<br>")
		for i := len(markRegistry) - 1; i >= 0; i-- {
			if s.Marks&markRegistry[i].mark != 0 {
				text = "<" + markRegistry[i].tag + ">" + text + "</" + markRegistry[i].tag + ">"
			}
		}
		if s.Href != "" {
			text = `<a href="` + html.EscapeString(s.Href) + `">` + text + "</a>"
		}
		sb.WriteString(text)
	}
}

// ParseDocument rebuilds a document from serialized markup. Unknown
// tags are dropped, their text kept. An empty or unusable input yields
// a single empty paragraph.
func ParseDocument(markup string) (*Document, error) {
	doc := &Document{}
	z := html.NewTokenizer(strings.NewReader(markup))

	curBlock := -1 // index into doc.Blocks
	curItem := -1
	var marks Mark
	var href string

	appendText := func(text string) {
		if curBlock < 0 || text == "" {
			return
		}
		b := &doc.Blocks[curBlock]
		span := Span{Text: text, Marks: marks, Href: href}
		if b.Type == BlockCodeBlock {
			span = Span{Text: text}
		}
		if BlockSpecFor(b.Type).IsList {
			if curItem < 0 {
				return
			}
			b.Items[curItem].Spans = mergeSpans(append(b.Items[curItem].Spans, span))
			return
		}
		b.Spans = mergeSpans(append(b.Spans, span))
	}

	startBlock := func(b Block) {
		doc.Blocks = append(doc.Blocks, b)
		curBlock = len(doc.Blocks) - 1
		curItem = -1
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "p":
				startBlock(Block{Type: BlockParagraph, Align: alignFromAttrs(tok.Attr)})
			case "h1", "h2", "h3":
				level := int(tok.Data[1] - '0')
				startBlock(Block{Type: BlockHeading, Level: level, Align: alignFromAttrs(tok.Attr)})
			case "ul":
				if attrValue(tok.Attr, "data-type") == "taskList" {
					startBlock(Block{Type: BlockTaskList})
				} else {
					startBlock(Block{Type: BlockBulletList})
				}
			case "ol":
				startBlock(Block{Type: BlockOrderedList})
			case "li":
				if curBlock >= 0 && BlockSpecFor(doc.Blocks[curBlock].Type).IsList {
					b := &doc.Blocks[curBlock]
					b.Items = append(b.Items, ListItem{
						Checked: attrValue(tok.Attr, "data-checked") == "true",
					})
					curItem = len(b.Items) - 1
				}
			case "pre":
				startBlock(Block{Type: BlockCodeBlock})
			case "code":
				// wrapped inside pre; nothing to do
			case "blockquote":
				startBlock(Block{Type: BlockBlockquote})
			case "img":
				startBlock(Block{Type: BlockImage, Src: attrValue(tok.Attr, "src")})
				curBlock = -1
			case "br":
				appendText("\n")
			case "strong", "b":
				marks |= MarkBold
			case "em", "i":
				marks |= MarkItalic
			case "u":
				marks |= MarkUnderline
			case "s":
				marks |= MarkStrike
			case "a":
				href = attrValue(tok.Attr, "href")
			}
		case html.TextToken:
			appendText(string(z.Text()))
		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "p", "h1", "h2", "h3", "ul", "ol", "pre", "blockquote":
				curBlock = -1
				curItem = -1
			case "li":
				curItem = -1
			case "strong", "b":
				marks &^= MarkBold
			case "em", "i":
				marks &^= MarkItalic
			case "u":
				marks &^= MarkUnderline
			case "s":
				marks &^= MarkStrike
			case "a":
				href = ""
			}
		}
	}

	if len(doc.Blocks) == 0 {
		return emptyDocument(), nil
	}
	return doc, nil
}

func attrValue(attrs []html.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func alignFromAttrs(attrs []html.Attribute) Alignment {
	style := attrValue(attrs, "style")
	if style == "" {
		return ""
	}
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "text-align" {
			continue
		}
		switch Alignment(strings.TrimSpace(parts[1])) {
		case AlignCenter:
			return AlignCenter
		case AlignRight:
			return AlignRight
		case AlignJustify:
			return AlignJustify
		case AlignLeft:
			return AlignLeft
		}
	}
	return ""
}
