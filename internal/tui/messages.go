package tui

import (
	"github.com/ebelikov/go-qr-studio/internal/store"
)

type historyLoadedMsg struct {
	entries []store.HistoryEntry
	err     error
}

type previewMsg struct {
	payload    string
	renderable bool
	reason     string
	err        error
}

type renderDoneMsg struct {
	payload   string
	savedPath string
	err       error
}

type versionMsg struct {
	version string
	err     error
}

type copiedMsg struct{}
