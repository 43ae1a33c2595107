package editor

import "strings"

// Prompter models the synchronous URL prompt shown for links and
// images. ok is false when the user cancels.
type Prompter interface {
	Prompt(message, initial string) (value string, ok bool)
}

// SlashItem is one entry in the block-insertion palette.
type SlashItem struct {
	Title       string
	Description string
	Command     func(e *Editor, r Range)
}

const maxSlashItems = 10

// SlashItems returns the palette in its fixed order. Every command
// deletes the trigger range first, except Image, which only touches
// the document once a URL was actually supplied.
func SlashItems(prompt Prompter) []SlashItem {
	return []SlashItem{
		{
			Title:       "Heading 1",
			Description: "Big section heading",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.SetHeading(1)
			},
		},
		{
			Title:       "Heading 2",
			Description: "Medium section heading",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.SetHeading(2)
			},
		},
		{
			Title:       "Heading 3",
			Description: "Small section heading",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.SetHeading(3)
			},
		},
		{
			Title:       "Text",
			Description: "Just start typing with plain text",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.SetParagraph()
			},
		},
		{
			Title:       "Bullet List",
			Description: "Create a simple bullet list",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.ToggleBulletList()
			},
		},
		{
			Title:       "Numbered List",
			Description: "Create a list with numbering",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.ToggleOrderedList()
			},
		},
		{
			Title:       "Todo List",
			Description: "Track tasks with a todo list",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.ToggleTaskList()
			},
		},
		{
			Title:       "Code Block",
			Description: "Capture a code snippet",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.ToggleCodeBlock()
			},
		},
		{
			Title:       "Image",
			Description: "Upload an image",
			Command: func(e *Editor, r Range) {
				url, ok := prompt.Prompt("Enter image URL", "")
				if ok && url != "" {
					e.DeleteRange(r)
					e.InsertImage(url)
				}
			},
		},
		{
			Title:       "Quote",
			Description: "Capture a quotation",
			Command: func(e *Editor, r Range) {
				e.DeleteRange(r)
				e.ToggleBlockquote()
			},
		},
	}
}

// FilterSlashItems does a case-insensitive substring match over title
// and description, capped at 10 results. An empty query returns the
// first 10 items.
func FilterSlashItems(items []SlashItem, query string) []SlashItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if len(items) > maxSlashItems {
			return items[:maxSlashItems]
		}
		return items
	}

	out := make([]SlashItem, 0, maxSlashItems)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			out = append(out, item)
			if len(out) == maxSlashItems {
				break
			}
		}
	}
	return out
}

// CommandsList is the palette's keyboard-driven selection state: a
// bounded circular index over the filtered items.
type CommandsList struct {
	Items         []SlashItem
	SelectedIndex int
}

// SetItems replaces the list and resets the selection to the top.
func (l *CommandsList) SetItems(items []SlashItem) {
	l.Items = items
	l.SelectedIndex = 0
}

func (l *CommandsList) Up() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = (l.SelectedIndex + len(l.Items) - 1) % len(l.Items)
}

func (l *CommandsList) Down() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = (l.SelectedIndex + 1) % len(l.Items)
}

func (l *CommandsList) Selected() (SlashItem, bool) {
	if l.SelectedIndex < 0 || l.SelectedIndex >= len(l.Items) {
		return SlashItem{}, false
	}
	return l.Items[l.SelectedIndex], true
}

// SlashMenu ties the palette to an editor: it tracks the trigger
// range and query, and turns key events into list navigation or
// command execution.
type SlashMenu struct {
	editor *Editor
	items  []SlashItem
	list   CommandsList
	open   bool
	query  string
	anchor Range
}

func NewSlashMenu(e *Editor, prompt Prompter) *SlashMenu {
	return &SlashMenu{
		editor: e,
		items:  SlashItems(prompt),
	}
}

// Open shows the menu. at is the position of the trigger character.
func (m *SlashMenu) Open(at Range) {
	m.open = true
	m.query = ""
	m.anchor = at
	m.anchor.To = m.anchor.From + 1 // the trigger character itself
	m.list.SetItems(FilterSlashItems(m.items, ""))
}

// SetQuery refilters as the user keeps typing after the trigger.
func (m *SlashMenu) SetQuery(query string) {
	if !m.open {
		return
	}
	m.query = query
	m.anchor.To = m.anchor.From + 1 + len([]rune(query))
	m.list.SetItems(FilterSlashItems(m.items, query))
}

// OnKeyDown handles Up/Down/Enter/Escape. Returns true when the key
// was consumed by the menu.
func (m *SlashMenu) OnKeyDown(key string) bool {
	if !m.open {
		return false
	}
	switch key {
	case "Escape":
		m.open = false
		return true
	case "ArrowUp":
		m.list.Up()
		return true
	case "ArrowDown":
		m.list.Down()
		return true
	case "Enter":
		if item, ok := m.list.Selected(); ok {
			m.open = false
			item.Command(m.editor, m.anchor)
		}
		return true
	}
	return false
}

func (m *SlashMenu) IsOpen() bool { return m.open }

func (m *SlashMenu) Query() string { return m.query }

func (m *SlashMenu) SelectedIndex() int { return m.list.SelectedIndex }

// Visible returns the currently filtered items.
func (m *SlashMenu) Visible() []SlashItem { return m.list.Items }
