package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/go-qr-studio/internal/service"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/models"
)

type wizardStage int

const (
	stageHistory wizardStage = iota
	stageType
	stageForm
	stageStyle
	stageResult
)

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	outputDir string

	stage   wizardStage
	status  string
	errMsg  string
	loading bool

	entries []store.HistoryEntry
	idx     int

	typeIdx int

	formType   models.ContentType
	formInputs []textinput.Model
	formFocus  int

	formTitle   string
	formContent models.QRContent

	styleInputs []textinput.Model
	styleFocus  int
	rendering   bool

	resultPayload string
	resultPath    string

	serverVersion string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, outputDir string) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		outputDir: outputDir,
		stage:     stageHistory,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadHistory(), m.cmdVersion())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case renderDoneMsg:
		m.rendering = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.resultPayload = msg.payload
		m.resultPath = msg.savedPath
		m.stage = stageResult
		return m, nil

	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case copiedMsg:
		m.status = "Payload copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.stage {
	case stageHistory:
		return m.updateHistory(keyMsg)
	case stageType:
		return m.updateType(keyMsg)
	case stageForm:
		return m.updateForm(keyMsg)
	case stageStyle:
		return m.updateStyle(keyMsg)
	case stageResult:
		return m.updateResult(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stage {
	case stageForm:
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	case stageStyle:
		m.styleInputs[m.styleFocus], cmd = m.styleInputs[m.styleFocus].Update(msg)
	}
	return m, cmd
}

// ── History ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateHistory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case "n":
		m.stage = stageType
		m.typeIdx = 0
		m.status = ""
		m.errMsg = ""
	case "c":
		if len(m.entries) == 0 {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopy(m.entries[m.idx].Payload)
	case "r":
		m.loading = true
		return m, m.cmdLoadHistory()
	}
	return m, nil
}

// ── Type selection ──────────────────────────────────────────────────────────

func (m mainLoopModel) updateType(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = stageHistory
	case "up", "k":
		if m.typeIdx > 0 {
			m.typeIdx--
		}
	case "down", "j":
		if m.typeIdx < len(contentTypeOptions)-1 {
			m.typeIdx++
		}
	case "enter":
		m.formType = contentTypeOptions[m.typeIdx]
		m.formInputs = newFormInputs(m.formType)
		m.formFocus = 0
		m.errMsg = ""
		m.stage = stageForm
	}
	return m, nil
}

// ── Content form ────────────────────────────────────────────────────────────

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = stageType
		m.errMsg = ""
		return m, nil
	case "tab", "down":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	case "shift+tab", "up":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	case "enter":
		title, content, err := collectContent(m.formType, m.formInputs)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.formTitle = title
		m.formContent = content
		m.styleInputs = newStyleInputs()
		m.styleFocus = 0
		m.errMsg = ""
		m.stage = stageStyle
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(keyMsg)
	return m, cmd
}

// ── Style form ──────────────────────────────────────────────────────────────

func (m mainLoopModel) updateStyle(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = stageForm
		m.errMsg = ""
		return m, nil
	case "tab", "down":
		m.styleInputs[m.styleFocus].Blur()
		m.styleFocus = (m.styleFocus + 1) % len(m.styleInputs)
		m.styleInputs[m.styleFocus].Focus()
		return m, nil
	case "shift+tab", "up":
		m.styleInputs[m.styleFocus].Blur()
		m.styleFocus = (m.styleFocus - 1 + len(m.styleInputs)) % len(m.styleInputs)
		m.styleInputs[m.styleFocus].Focus()
		return m, nil
	case "enter":
		if m.rendering {
			return m, nil
		}
		opts, err := collectStyle(m.styleInputs)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.rendering = true
		return m, m.cmdRender(m.formTitle, m.formContent, opts)
	}

	var cmd tea.Cmd
	m.styleInputs[m.styleFocus], cmd = m.styleInputs[m.styleFocus].Update(keyMsg)
	return m, cmd
}

// ── Result ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateResult(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "enter":
		m.stage = stageHistory
		m.status = ""
		m.loading = true
		return m, m.cmdLoadHistory()
	case "c":
		return m, cmdCopy(m.resultPayload)
	}
	return m, nil
}

// ── Commands ────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.HistoryService.Recent(m.ctx, 0)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdRender(title string, content models.QRContent, opts models.RenderOptions) tea.Cmd {
	return func() tea.Msg {
		rendered, err := m.services.QRService.Generate(m.ctx, title, content, opts)
		if err != nil {
			return renderDoneMsg{err: err}
		}

		name := imageFileName(title)
		path, err := m.services.QRService.SaveImage(rendered.DataURL, m.outputDir, name)
		if err != nil {
			return renderDoneMsg{err: err}
		}

		return renderDoneMsg{payload: rendered.Payload, savedPath: path}
	}
}

func (m mainLoopModel) cmdVersion() tea.Cmd {
	return func() tea.Msg {
		v, err := m.services.QRService.ServerVersion(m.ctx)
		return versionMsg{version: v, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return renderDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

// imageFileName derives a filesystem-safe PNG name from the entry title.
func imageFileName(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "qr"
	}
	return fmt.Sprintf("%s-%s.png", slug, time.Now().Format("20060102-150405"))
}

// ── Views ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.stage {
	case stageType:
		return m.viewType()
	case stageForm:
		return m.viewForm()
	case stageStyle:
		return m.viewStyle()
	case stageResult:
		return m.viewResult()
	default:
		return m.viewHistory()
	}
}

func (m mainLoopModel) viewHistory() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading history...\n")
	} else if len(m.entries) == 0 {
		b.WriteString("No codes generated yet. Press n to create one.\n")
	} else {
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%-20s %-10s %s",
				cursor, fitText(entry.Title, 20), entry.QRType, fitText(entry.Payload, 40))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	title := "QR Studio"
	if m.serverVersion != "" {
		title += "  (server " + m.serverVersion + ")"
	}

	return renderPage(title, b.String(), "n: new  c: copy payload  r: reload  q: quit")
}

func (m mainLoopModel) viewType() string {
	var b strings.Builder
	for i, qrType := range contentTypeOptions {
		cursor := "  "
		if i == m.typeIdx {
			cursor = "> "
		}
		b.WriteString(cursor + contentTypeLabels[qrType] + "\n")
	}
	return renderPage("Choose content type", b.String(), "enter: select  esc: back")
}

func (m mainLoopModel) viewForm() string {
	specs := formFields(m.formType)

	var b strings.Builder
	for i, in := range m.formInputs {
		b.WriteString(fmt.Sprintf("%-14s %s\n", specs[i].label+":", in.View()))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	return renderPage("New "+contentTypeLabels[m.formType]+" code", b.String(),
		"tab: next field  enter: continue  esc: back")
}

func (m mainLoopModel) viewStyle() string {
	var b strings.Builder
	for i, in := range m.styleInputs {
		b.WriteString(fmt.Sprintf("%-12s %s\n", styleFieldLabels[i]+":", in.View()))
	}
	if m.rendering {
		b.WriteString("\nRendering...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	return renderPage("Image style", b.String(), "tab: next field  enter: generate  esc: back")
}

func (m mainLoopModel) viewResult() string {
	var b strings.Builder
	b.WriteString("Payload: " + m.resultPayload + "\n")
	b.WriteString("Saved:   " + m.resultPath + "\n")
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("Code generated", b.String(), "c: copy payload  enter: done")
}
