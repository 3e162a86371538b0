// Package tui provides the Bubble Tea training interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sumitore/internal/editbuffer"
	"github.com/verte-zerg/sumitore/internal/evaluation"
	"github.com/verte-zerg/sumitore/internal/llm"
	"github.com/verte-zerg/sumitore/internal/model"
	statsPkg "github.com/verte-zerg/sumitore/internal/stats"
	"github.com/verte-zerg/sumitore/internal/store"
)

type viewMode int

const (
	modeMenu viewMode = iota
	modeTraining
	modeReport
	modeHelp
)

// pendingOp is the single slot for an in-flight network operation. Nothing
// new is issued while it is non-empty.
type pendingOp int

const (
	pendingNone pendingOp = iota
	pendingGenerate
	pendingEvaluate
)

type generateDoneMsg struct {
	text string
	err  error
}

type evaluateDoneMsg struct {
	raw string
	err error
}

const defaultTimeout = 30 * time.Second

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	menuItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	passageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	editorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Underline(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).Padding(0, 1)
	overlayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea training UI. It owns the edit buffer, the
// result history, and the single pending-operation slot; every transition
// runs to completion inside Update before the next message is observed.
type Model struct {
	cfg     model.Config
	client  llm.Client
	store   *store.Store
	timeout time.Duration

	mode       viewMode
	returnMode viewMode
	menuIndex  int

	history []model.TrainingResult
	streak  int
	badges  []model.Badge

	passage       string
	passageScroll int
	buf           *editbuffer.Buffer
	editing       bool
	pending       pendingOp

	verdict       *evaluation.Verdict
	showOverlay   bool
	overlayScroll int
	helpScroll    int
	status        string

	width  int
	height int
}

// NewModel constructs the training UI model. The history is loaded once;
// streak and badges are recomputed from it, never read from storage.
func NewModel(cfg model.Config, client llm.Client, st *store.Store, history []model.TrainingResult) *Model {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	lengths := cfg.Lengths
	if len(lengths) == 0 {
		lengths = model.DefaultLengths
	}
	cfg.Lengths = lengths
	m := &Model{
		cfg:     cfg,
		client:  client,
		store:   st,
		timeout: timeout,
		mode:    modeMenu,
		buf:     editbuffer.New(),
		history: history,
		status:  "Select a passage length.",
	}
	m.streak, m.badges = statsPkg.Recompute(m.history)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case generateDoneMsg:
		m.handleGenerateDone(msg)
		return m, nil
	case evaluateDoneMsg:
		m.handleEvaluateDone(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.mode {
	case modeMenu:
		return m.handleMenuKey(msg)
	case modeReport:
		return m.handleReportKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleTrainingKey(msg)
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(m.cfg.Lengths)-1 {
			m.menuIndex++
		}
	case "enter":
		return m, m.startTraining()
	case "r":
		m.openReport(modeMenu)
	case "h":
		m.openHelp(modeMenu)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleTrainingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "i", "enter":
		if m.pending == pendingNone && !m.showOverlay && m.passage != "" {
			m.editing = true
			m.status = "Editing. Ctrl+S submits, Esc leaves edit mode."
		}
	case "e":
		if m.verdict != nil {
			m.showOverlay = !m.showOverlay
			m.overlayScroll = 0
		}
	case "n":
		if m.showOverlay {
			m.showOverlay = false
			return m, m.startTraining()
		}
	case "r":
		m.openReport(modeTraining)
	case "h":
		m.openHelp(modeTraining)
	case "esc":
		m.mode = modeMenu
		m.status = "Select a passage length."
	case "j", "down":
		if m.showOverlay {
			m.overlayScroll++
		} else {
			m.passageScroll++
		}
	case "k", "up":
		if m.showOverlay {
			if m.overlayScroll > 0 {
				m.overlayScroll--
			}
		} else if m.passageScroll > 0 {
			m.passageScroll--
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlS:
		return m, m.submitSummary()
	case tea.KeyEsc:
		m.editing = false
		m.status = "Press 'i' to edit, Ctrl+S to submit."
	case tea.KeyEnter:
		m.buf.Newline()
	case tea.KeyBackspace:
		m.buf.Backspace()
	case tea.KeyDelete:
		m.buf.Delete()
	case tea.KeyLeft:
		m.buf.MoveLeft()
	case tea.KeyRight:
		m.buf.MoveRight()
	case tea.KeyUp:
		m.buf.MoveUp()
	case tea.KeyDown:
		m.buf.MoveDown()
	case tea.KeySpace:
		m.buf.Insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.buf.Insert(r)
		}
	}
	return m, nil
}

func (m *Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "esc":
		m.mode = m.returnMode
		m.status = "Press 'i' to edit, Ctrl+S to submit."
		if m.mode == modeMenu {
			m.status = "Select a passage length."
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "esc":
		m.mode = m.returnMode
		m.helpScroll = 0
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// startTraining issues a generation for the selected length. The pending
// slot is the concurrency gate: a second request while one is in flight is
// a no-op.
func (m *Model) startTraining() tea.Cmd {
	if m.pending != pendingNone {
		return nil
	}
	length := m.cfg.Lengths[m.menuIndex]
	m.mode = modeTraining
	m.pending = pendingGenerate
	m.verdict = nil
	m.showOverlay = false
	m.status = fmt.Sprintf("Generating a %d-character passage...", length)
	return m.generateCmd(length)
}

// submitSummary issues an evaluation for the buffer contents. Submitting
// while an operation is pending leaves everything untouched, including the
// edit-mode flag.
func (m *Model) submitSummary() tea.Cmd {
	if m.pending != pendingNone {
		return nil
	}
	summary := m.buf.Contents()
	if strings.TrimSpace(summary) == "" {
		return nil
	}
	m.editing = false
	m.pending = pendingEvaluate
	m.status = "Evaluating your summary..."
	return m.evaluateCmd(m.passage, summary)
}

func (m *Model) generateCmd(length int) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := client.GenerateText(ctx, length)
		return generateDoneMsg{text: text, err: err}
	}
}

func (m *Model) evaluateCmd(original, summary string) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		raw, err := client.EvaluateSummary(ctx, original, summary)
		return evaluateDoneMsg{raw: raw, err: err}
	}
}

func (m *Model) handleGenerateDone(msg generateDoneMsg) {
	if m.pending != pendingGenerate {
		return
	}
	m.pending = pendingNone
	if msg.err != nil {
		m.passage = ""
		m.status = fmt.Sprintf("Failed to generate passage: %v", msg.err)
		return
	}
	m.passage = msg.text
	m.passageScroll = 0
	m.buf.Clear()
	m.editing = false
	m.verdict = nil
	m.showOverlay = false
	m.status = "Press 'i' to edit, Ctrl+S to submit."
}

func (m *Model) handleEvaluateDone(msg evaluateDoneMsg) {
	if m.pending != pendingEvaluate {
		return
	}
	m.pending = pendingNone
	if msg.err != nil {
		m.status = fmt.Sprintf("Evaluation failed: %v", msg.err)
		return
	}
	verdict := evaluation.Parse(msg.raw)
	m.verdict = &verdict
	m.showOverlay = true
	m.overlayScroll = 0
	if !verdict.Determinate {
		// No overall marker: nothing is recorded, the attempt is discarded.
		m.status = "Evaluator output had no overall result; nothing recorded."
		return
	}
	// Set the success status first so a persistence warning from
	// appendResult is what the user ends up seeing.
	m.status = "Evaluation complete. 'e' toggles the verdict, 'n' starts the next passage."
	m.appendResult(verdict)
	m.buf.Clear()
}

// appendResult records a determinate outcome, recomputes derived stats, and
// persists the appended entry. A persistence failure downgrades to a status
// warning; the in-memory history stays authoritative for the session.
func (m *Model) appendResult(verdict evaluation.Verdict) {
	result := model.TrainingResult{
		Timestamp: time.Now(),
		Passed:    verdict.OverallPass,
		Scores: model.Scores{
			Importance:  verdict.Importance,
			Conciseness: verdict.Conciseness,
			Accuracy:    verdict.Accuracy,
		},
	}
	m.history = append(m.history, result)
	m.streak, m.badges = statsPkg.Recompute(m.history)
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := m.store.InsertResult(ctx, result); err != nil {
		m.status = fmt.Sprintf("Warning: failed to save result: %v", err)
		logErrf("failed to save result: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
