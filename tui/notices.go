package tui

import tea "github.com/charmbracelet/bubbletea"

// noticeMsg delivers one notification to the model.
type noticeMsg struct {
	text string
}

// noticeQueue is the Notifier handed to the exporter. Notify is called from
// command goroutines; the model drains the queue through listen, one
// message at a time, so notices are shown without blocking the UI.
type noticeQueue struct {
	ch chan string
}

func newNoticeQueue() *noticeQueue {
	return &noticeQueue{ch: make(chan string, 32)}
}

func (q *noticeQueue) Notify(message string) {
	q.ch <- message
}

func (q *noticeQueue) listen() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{text: <-q.ch}
	}
}
