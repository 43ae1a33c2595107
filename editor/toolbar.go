package editor

// ToolbarState mirrors the formatting at the current selection, the
// data the inline toolbar renders from.
type ToolbarState struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Link      bool
	Block     BlockType
	Level     int
	Align     Alignment
}

func (e *Editor) Toolbar() ToolbarState {
	block, level := e.CurrentBlock()
	align := e.doc.Blocks[e.sel.Block].Align
	if align == "" {
		align = AlignLeft
	}
	return ToolbarState{
		Bold:      e.IsActive(MarkBold),
		Italic:    e.IsActive(MarkItalic),
		Underline: e.IsActive(MarkUnderline),
		Strike:    e.IsActive(MarkStrike),
		Link:      e.LinkAt() != "",
		Block:     block,
		Level:     level,
		Align:     align,
	}
}

// PromptLink drives the link toolbar button: prompt with the existing
// href, cancel keeps everything, an empty answer removes the link,
// anything else sets it.
func PromptLink(e *Editor, prompt Prompter) {
	url, ok := prompt.Prompt("URL", e.LinkAt())
	if !ok {
		return
	}
	if url == "" {
		e.UnsetLink()
		return
	}
	e.SetLink(url)
}
