package editor

// Selection addresses a run of text: a block, the list item within it
// (-1 for non-list blocks), and rune offsets. Start == End is a caret.
type Selection struct {
	Block int
	Item  int
	Start int
	End   int
}

// Range is a span of text to operate on, same addressing as Selection.
type Range struct {
	Block int
	Item  int
	From  int
	To    int
}

const maxHistory = 100

// Editor holds the in-memory document, the selection, pending marks at
// a caret and snapshot-based undo/redo. All of it is transient client
// state; nothing is persisted until a save fires.
type Editor struct {
	doc       *Document
	sel       Selection
	pending   Mark
	undoStack []*Document
	redoStack []*Document
}

func New() *Editor {
	return &Editor{
		doc: emptyDocument(),
		sel: Selection{Item: -1},
	}
}

func NewFromHTML(markup string) (*Editor, error) {
	e := New()
	if err := e.SetContent(markup); err != nil {
		return nil, err
	}
	e.undoStack = nil
	return e, nil
}

// HTML returns the current serialized content.
func (e *Editor) HTML() string {
	return e.doc.HTML()
}

// IsEmpty reports whether the document is a single empty paragraph.
func (e *Editor) IsEmpty() bool {
	if len(e.doc.Blocks) != 1 {
		return false
	}
	b := &e.doc.Blocks[0]
	return b.Type == BlockParagraph && len(b.Spans) == 0
}

func (e *Editor) Selection() Selection {
	return e.sel
}

// SetSelection moves the selection, clamping it into the document.
func (e *Editor) SetSelection(block, item, start, end int) {
	if block < 0 {
		block = 0
	}
	if block >= len(e.doc.Blocks) {
		block = len(e.doc.Blocks) - 1
	}
	b := &e.doc.Blocks[block]
	if BlockSpecFor(b.Type).IsList {
		if item < 0 {
			item = 0
		}
		if len(b.Items) == 0 {
			b.Items = append(b.Items, ListItem{})
		}
		if item >= len(b.Items) {
			item = len(b.Items) - 1
		}
	} else {
		item = -1
	}

	length := spansLength(e.spansAt(block, item))
	start = clamp(start, 0, length)
	end = clamp(end, start, length)

	e.sel = Selection{Block: block, Item: item, Start: start, End: end}
	e.pending = 0
}

// SetContent replaces the document wholesale when the supplied markup
// differs from the current serialization. No diffing, no merging.
func (e *Editor) SetContent(markup string) error {
	if markup == e.HTML() {
		return nil
	}
	doc, err := ParseDocument(markup)
	if err != nil {
		return err
	}
	e.snapshot()
	e.doc = doc
	e.sel = Selection{Item: -1}
	e.normalizeSelection()
	return nil
}

// InsertText inserts at the caret, carrying the marks active there.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	spans := e.selSpans()
	if spans == nil {
		return
	}
	e.snapshot()

	if e.sel.Start != e.sel.End {
		e.deleteSelected()
		spans = e.selSpans()
	}

	marks := e.marksAtCaret()
	b := &e.doc.Blocks[e.sel.Block]
	span := Span{Text: text, Marks: marks}
	if b.Type == BlockCodeBlock {
		span.Marks = 0
	}

	left, right := splitSpans(*spans, e.sel.Start)
	merged := mergeSpans(append(append(left, span), right...))
	*spans = merged

	advance := len([]rune(text))
	e.sel.Start += advance
	e.sel.End = e.sel.Start
	e.pending = 0
}

// DeleteRange removes text, used by the slash palette to drop the
// trigger sequence before applying a block transform.
func (e *Editor) DeleteRange(r Range) {
	spans := e.spansPtrAt(r.Block, r.Item)
	if spans == nil || r.To <= r.From {
		return
	}
	e.snapshot()
	before, _, after := cutSpans(*spans, r.From, r.To)
	*spans = mergeSpans(append(before, after...))
	e.sel = Selection{Block: r.Block, Item: r.Item, Start: r.From, End: r.From}
}

func (e *Editor) ToggleBold()      { e.toggleMark(MarkBold) }
func (e *Editor) ToggleItalic()    { e.toggleMark(MarkItalic) }
func (e *Editor) ToggleUnderline() { e.toggleMark(MarkUnderline) }
func (e *Editor) ToggleStrike()    { e.toggleMark(MarkStrike) }

func (e *Editor) toggleMark(m Mark) {
	b := &e.doc.Blocks[e.sel.Block]
	if !BlockSpecFor(b.Type).AllowsMarks {
		return
	}
	if e.sel.Start == e.sel.End {
		e.pending ^= m
		return
	}
	spans := e.selSpans()
	if spans == nil {
		return
	}
	e.snapshot()

	before, middle, after := cutSpans(*spans, e.sel.Start, e.sel.End)
	all := true
	for _, s := range middle {
		if s.Marks&m == 0 {
			all = false
			break
		}
	}
	for i := range middle {
		if all {
			middle[i].Marks &^= m
		} else {
			middle[i].Marks |= m
		}
	}
	*spans = mergeSpans(append(append(before, middle...), after...))
}

// IsActive reports whether a mark applies at the current selection,
// for toolbar state.
func (e *Editor) IsActive(m Mark) bool {
	if e.sel.Start == e.sel.End {
		return e.marksAtCaret()&m != 0
	}
	spans := e.selSpans()
	if spans == nil {
		return false
	}
	_, middle, _ := cutSpans(*spans, e.sel.Start, e.sel.End)
	if len(middle) == 0 {
		return false
	}
	for _, s := range middle {
		if s.Marks&m == 0 {
			return false
		}
	}
	return true
}

// LinkAt returns the href under the selection, if any.
func (e *Editor) LinkAt() string {
	spans := e.selSpans()
	if spans == nil {
		return ""
	}
	_, middle, _ := cutSpans(*spans, e.sel.Start, e.sel.End)
	for _, s := range middle {
		if s.Href != "" {
			return s.Href
		}
	}
	if e.sel.Start == e.sel.End {
		left, right := splitSpans(*spans, e.sel.Start)
		if len(right) > 0 && right[0].Href != "" {
			return right[0].Href
		}
		if len(left) > 0 && left[len(left)-1].Href != "" {
			return left[len(left)-1].Href
		}
	}
	return ""
}

// SetLink marks the selected text as a link.
func (e *Editor) SetLink(href string) {
	if href == "" || e.sel.Start == e.sel.End {
		return
	}
	spans := e.selSpans()
	if spans == nil {
		return
	}
	e.snapshot()
	before, middle, after := cutSpans(*spans, e.sel.Start, e.sel.End)
	for i := range middle {
		middle[i].Href = href
	}
	*spans = mergeSpans(append(append(before, middle...), after...))
}

// UnsetLink removes the link mark from the selected text.
func (e *Editor) UnsetLink() {
	spans := e.selSpans()
	if spans == nil {
		return
	}
	e.snapshot()
	before, middle, after := cutSpans(*spans, e.sel.Start, e.sel.End)
	for i := range middle {
		middle[i].Href = ""
	}
	*spans = mergeSpans(append(append(before, middle...), after...))
}

// SetHeading turns the current block into a heading of the given
// level (1-3).
func (e *Editor) SetHeading(level int) {
	if level < 1 || level > 3 {
		return
	}
	e.snapshot()
	b := &e.doc.Blocks[e.sel.Block]
	align := b.Align
	*b = Block{Type: BlockHeading, Level: level, Align: align, Spans: e.blockContent(b)}
	e.sel.Item = -1
	e.clampSelection()
}

// SetParagraph turns the current block back into plain text.
func (e *Editor) SetParagraph() {
	e.snapshot()
	b := &e.doc.Blocks[e.sel.Block]
	align := b.Align
	*b = Block{Type: BlockParagraph, Align: align, Spans: e.blockContent(b)}
	e.sel.Item = -1
	e.clampSelection()
}

func (e *Editor) ToggleBulletList()  { e.toggleList(BlockBulletList) }
func (e *Editor) ToggleOrderedList() { e.toggleList(BlockOrderedList) }
func (e *Editor) ToggleTaskList()    { e.toggleList(BlockTaskList) }

// toggleList converts the current block to the target list type, back
// to a paragraph when it already is one, or across list types keeping
// the items.
func (e *Editor) toggleList(target BlockType) {
	e.snapshot()
	b := &e.doc.Blocks[e.sel.Block]
	switch {
	case b.Type == target:
		*b = Block{Type: BlockParagraph, Spans: e.blockContent(b)}
		e.sel.Item = -1
	case BlockSpecFor(b.Type).IsList:
		b.Type = target
	default:
		*b = Block{Type: target, Items: []ListItem{{Spans: e.blockContent(b)}}}
		e.sel.Item = 0
	}
	e.clampSelection()
}

// ToggleCodeBlock converts to a code block, stripping marks; toggling
// again restores a paragraph of plain text.
func (e *Editor) ToggleCodeBlock() {
	e.snapshot()
	b := &e.doc.Blocks[e.sel.Block]
	if b.Type == BlockCodeBlock {
		*b = Block{Type: BlockParagraph, Spans: e.blockContent(b)}
	} else {
		text := b.Text()
		var spans []Span
		if text != "" {
			spans = []Span{{Text: text}}
		}
		*b = Block{Type: BlockCodeBlock, Spans: spans}
	}
	e.sel.Item = -1
	e.clampSelection()
}

func (e *Editor) ToggleBlockquote() {
	e.snapshot()
	b := &e.doc.Blocks[e.sel.Block]
	if b.Type == BlockBlockquote {
		*b = Block{Type: BlockParagraph, Spans: e.blockContent(b)}
	} else {
		*b = Block{Type: BlockBlockquote, Spans: e.blockContent(b)}
	}
	e.sel.Item = -1
	e.clampSelection()
}

// SetTextAlign applies to headings and paragraphs only.
func (e *Editor) SetTextAlign(align Alignment) {
	b := &e.doc.Blocks[e.sel.Block]
	if !BlockSpecFor(b.Type).AllowsAlign {
		return
	}
	e.snapshot()
	e.doc.Blocks[e.sel.Block].Align = align
}

// InsertImage places an image block after the current block and moves
// the caret to a fresh paragraph after it.
func (e *Editor) InsertImage(src string) {
	if src == "" {
		return
	}
	e.snapshot()
	at := e.sel.Block + 1
	blocks := make([]Block, 0, len(e.doc.Blocks)+2)
	blocks = append(blocks, e.doc.Blocks[:at]...)
	blocks = append(blocks, Block{Type: BlockImage, Src: src})
	blocks = append(blocks, Block{Type: BlockParagraph})
	blocks = append(blocks, e.doc.Blocks[at:]...)
	e.doc.Blocks = blocks
	e.sel = Selection{Block: at + 1, Item: -1}
}

// Undo restores the previous snapshot. Returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool {
	if len(e.undoStack) == 0 {
		return false
	}
	e.redoStack = append(e.redoStack, e.doc.clone())
	e.doc = e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.normalizeSelection()
	return true
}

func (e *Editor) Redo() bool {
	if len(e.redoStack) == 0 {
		return false
	}
	e.undoStack = append(e.undoStack, e.doc.clone())
	e.doc = e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.normalizeSelection()
	return true
}

// CurrentBlock returns the selected block's type and heading level.
func (e *Editor) CurrentBlock() (BlockType, int) {
	b := &e.doc.Blocks[e.sel.Block]
	return b.Type, b.Level
}

// internals

func (e *Editor) snapshot() {
	e.undoStack = append(e.undoStack, e.doc.clone())
	if len(e.undoStack) > maxHistory {
		e.undoStack = e.undoStack[1:]
	}
	e.redoStack = nil
}

// blockContent extracts the text spans a block transform keeps: the
// selected list item for lists, the spans otherwise.
func (e *Editor) blockContent(b *Block) []Span {
	if BlockSpecFor(b.Type).IsList {
		item := e.sel.Item
		if item < 0 || item >= len(b.Items) {
			if len(b.Items) == 0 {
				return nil
			}
			item = 0
		}
		return b.Items[item].Spans
	}
	return b.Spans
}

func (e *Editor) spansAt(block, item int) []Span {
	ptr := e.spansPtrAt(block, item)
	if ptr == nil {
		return nil
	}
	return *ptr
}

func (e *Editor) spansPtrAt(block, item int) *[]Span {
	if block < 0 || block >= len(e.doc.Blocks) {
		return nil
	}
	b := &e.doc.Blocks[block]
	if b.Type == BlockImage {
		return nil
	}
	if BlockSpecFor(b.Type).IsList {
		if item < 0 || item >= len(b.Items) {
			return nil
		}
		return &b.Items[item].Spans
	}
	return &b.Spans
}

func (e *Editor) selSpans() *[]Span {
	return e.spansPtrAt(e.sel.Block, e.sel.Item)
}

func (e *Editor) marksAtCaret() Mark {
	spans := e.selSpans()
	if spans == nil {
		return e.pending
	}
	left, _ := splitSpans(*spans, e.sel.Start)
	var base Mark
	if len(left) > 0 {
		base = left[len(left)-1].Marks
	}
	return base ^ e.pending
}

func (e *Editor) deleteSelected() {
	spans := e.selSpans()
	if spans == nil || e.sel.Start == e.sel.End {
		return
	}
	before, _, after := cutSpans(*spans, e.sel.Start, e.sel.End)
	*spans = mergeSpans(append(before, after...))
	e.sel.End = e.sel.Start
}

func (e *Editor) normalizeSelection() {
	e.SetSelection(e.sel.Block, e.sel.Item, e.sel.Start, e.sel.End)
}

func (e *Editor) clampSelection() {
	e.normalizeSelection()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
