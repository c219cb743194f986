package tui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"summify/internal/domain"
	"summify/internal/samples"
)

// Engine is the TUI-facing subset of the summarization engine.
type Engine interface {
	Summarize(text string, mode domain.Mode, count int) (domain.Result, error)
}

// Options seeds the initial mode and sentence count.
type Options struct {
	Mode     domain.Mode
	Count    int
	MaxCount int
	Backend  string
}

type focus int

const (
	focusEditor focus = iota
	focusSummary
)

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	engine   Engine
	editor   textarea.Model
	viewport viewport.Model
	opts     Options
	mode     domain.Mode
	count    int
	result   *domain.Result
	status   string
	focus    focus
	ready    bool
	now      func() time.Time
}

// New creates a new TUI model instance with optional initial text.
func New(engine Engine, text string, opts Options) Model {
	if opts.MaxCount <= 0 {
		opts.MaxCount = 10
	}
	if opts.Count <= 0 || opts.Count > opts.MaxCount {
		opts.Count = min(3, opts.MaxCount)
	}
	ta := textarea.New()
	ta.Placeholder = "Paste text, then press ctrl+s"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(text)
	ta.Focus()
	vp := viewport.New(0, 0)
	return Model{
		engine:   engine,
		editor:   ta,
		viewport: vp,
		opts:     opts,
		mode:     opts.Mode,
		count:    opts.Count,
		status:   "ctrl+s summarize · tab mode · esc switch pane · ctrl+l sample · ctrl+c quit",
		now:      time.Now,
	}
}

// Init initializes the model (textarea cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyTab:
			m.mode = nextMode(m.mode)
			m.status = fmt.Sprintf("Mode: %s", m.mode)
			if m.result != nil {
				m.summarize()
			}
			return m, nil
		case tea.KeyCtrlS:
			m.summarize()
			return m, nil
		case tea.KeyCtrlL:
			s := samples.Pick(m.now())
			m.editor.SetValue(s.Text)
			m.status = "Loaded sample: " + s.Title
			return m, nil
		case tea.KeyEsc:
			m.toggleFocus()
			return m, nil
		}
		if m.focus == focusSummary {
			switch msg.String() {
			case "+", "=":
				m.setCount(m.count + 1)
				return m, nil
			case "-", "_":
				m.setCount(m.count - 1)
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View renders the editor, the summary pane and the status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Summify") + "  " +
		infoStyle.Render(fmt.Sprintf("mode: %s · sentences: %d · tokenizer: %s", m.mode, m.count, m.opts.Backend))
	editorBox, summaryBox := blurredBoxStyle, blurredBoxStyle
	if m.focus == focusEditor {
		editorBox = focusedBoxStyle
	} else {
		summaryBox = focusedBoxStyle
	}
	status := statusStyle.Render(m.status)
	return header + "\n" + editorBox.Render(m.editor.View()) + "\n" + summaryBox.Render(m.viewport.View()) + "\n" + status
}

func (m *Model) resize(width, height int) {
	fw, fh := focusedBoxStyle.GetFrameSize()
	w := max(20, width-fw)
	avail := height - 2 - 2*fh // header + status
	editorH := max(3, avail/3)
	m.editor.SetWidth(w)
	m.editor.SetHeight(editorH)
	m.viewport.Width = w
	m.viewport.Height = max(3, avail-editorH)
}

func (m *Model) toggleFocus() {
	if m.focus == focusEditor {
		m.focus = focusSummary
		m.editor.Blur()
		return
	}
	m.focus = focusEditor
	m.editor.Focus()
}

func (m *Model) setCount(n int) {
	if n < 1 || n > m.opts.MaxCount {
		return
	}
	m.count = n
	m.status = fmt.Sprintf("Sentences: %d", n)
	if m.result != nil {
		m.summarize()
	}
}

func (m *Model) summarize() {
	res, err := m.engine.Summarize(m.editor.Value(), m.mode, m.count)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.result = nil
	} else {
		m.result = &res
		m.status = fmt.Sprintf("Summarized %d of %d sentences in %s",
			res.Stats.SelectedSentenceCount, res.Stats.OriginalSentenceCount, res.Stats.Elapsed)
	}
	m.viewport.SetContent(m.renderResult())
	m.viewport.GotoTop()
}

func (m Model) renderResult() string {
	if m.result == nil {
		return "No summary yet."
	}
	r := m.result
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", highlightKeywords(r.Summary, r.Keywords))

	terms := make([]string, len(r.Keywords))
	for i, k := range r.Keywords {
		terms[i] = fmt.Sprintf("%s (%.2f)", k.Term, k.Weight)
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Keywords:"), strings.Join(terms, ", "))
	fmt.Fprintf(&b, "%s %d → %d words (-%d%%), %d → %d sentences",
		labelStyle.Render("Stats:"),
		r.Stats.InputWords, r.Stats.SummaryWords, r.Stats.WordReductionPct,
		r.Stats.OriginalSentenceCount, r.Stats.SelectedSentenceCount)
	return b.String()
}

func nextMode(m domain.Mode) domain.Mode {
	modes := domain.Modes()
	for i, x := range modes {
		if x == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	infoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	focusedBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	blurredBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	unicodeWordRe   = regexp.MustCompile(`\p{L}+`)
)

// highlightKeywords renders every word of text that is one of the keywords.
func highlightKeywords(text string, kw []domain.Keyword) string {
	if len(kw) == 0 {
		return text
	}
	set := make(map[string]struct{}, len(kw))
	for _, k := range kw {
		set[k.Term] = struct{}{}
	}
	return unicodeWordRe.ReplaceAllStringFunc(text, func(w string) string {
		if _, ok := set[strings.ToLower(w)]; ok {
			return highlightStyle.Render(w)
		}
		return w
	})
}
