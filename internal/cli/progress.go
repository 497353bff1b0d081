package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sargunv/snes2asm/lib/cartridge"
	"github.com/sargunv/snes2asm/lib/disasm"
)

var (
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// bankUpdate reports one bank finishing its sweep.
type bankUpdate struct {
	done, total int
}

type sweepDoneMsg struct{}

// progressModel drives the sweep on a background goroutine and renders a
// bubbles/progress bar for completed banks, in the spirit of the teacher
// repository's own bubbletea progress model for its scraper's lookups.
type progressModel struct {
	d        *disasm.Disassembler
	cart     *cartridge.Cartridge
	updates  chan bankUpdate
	done     int
	total    int
	bar      progress.Model
	finished bool
}

func newProgressModel(d *disasm.Disassembler, cart *cartridge.Cartridge) progressModel {
	return progressModel{
		d:       d,
		cart:    cart,
		updates: make(chan bankUpdate),
		bar:     progress.New(progress.WithDefaultGradient()),
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.startSweep(), waitForBankUpdate(m.updates))
}

func (m progressModel) startSweep() tea.Cmd {
	return func() tea.Msg {
		go func() {
			m.d.RunWithProgress(m.cart, func(done, total int) {
				m.updates <- bankUpdate{done: done, total: total}
			})
			close(m.updates)
		}()
		return nil
	}
}

func waitForBankUpdate(ch <-chan bankUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return sweepDoneMsg{}
		}
		return update
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case bankUpdate:
		m.done = msg.done
		m.total = msg.total
		return m, waitForBankUpdate(m.updates)
	case sweepDoneMsg:
		m.finished = true
		return m, tea.Quit
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.total == 0 {
		return dimStyle.Render("scanning cartridge...") + "\n"
	}
	pct := float64(m.done) / float64(m.total)
	status := fmt.Sprintf(" bank %d/%d", m.done, m.total)
	if m.finished {
		status = doneStyle.Render(" done")
	}
	return m.bar.ViewAs(pct) + status + "\n"
}
