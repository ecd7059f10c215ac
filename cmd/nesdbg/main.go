// Command nesdbg is an interactive step debugger for the emulator
// core: it loads a ROM, then lets a developer single-step the master
// clock and inspect CPU/PPU/OAM state between steps.
package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/console"
	"github.com/mtellier/nescore/internal/dump"
)

var romPath = flag.String("rom", "", "path to an iNES ROM image")

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	emu *console.Emulator

	steps int
	err   error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			m.stepInstruction()
		case "f":
			// run a full frame, counting each master tick
			for {
				m.emu.TickOne()
				m.steps++
				if m.emu.Bus.PPU.FrameReady() {
					break
				}
			}
		}
	}
	return m, nil
}

// stepInstruction ticks the master clock until the CPU reaches its
// next instruction boundary, so "n" always steps one instruction
// rather than one dot.
func (m *model) stepInstruction() {
	started := false
	for i := 0; i < 100000; i++ {
		m.emu.TickOne()
		m.steps++
		if !m.emu.CPU.AtInstructionBoundary() {
			started = true
		} else if started {
			return
		}
	}
}

func (m model) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("nescore debugger"),
		dump.CPU(m.emu.CPU),
		dump.PPU(m.emu.Bus.PPU),
		fmt.Sprintf("master ticks: %d", m.steps),
		"",
		dump.OAM(m.emu.Bus.PPU, 4),
		"",
		"[space/n] step instruction  [f] run frame  [q] quit",
	)
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, errorStyle.Render(m.err.Error()))
	}
	return body
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("nesdbg: -rom is required")
	}

	cart, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("nesdbg: couldn't load ROM: %v", err)
	}

	m := model{emu: console.New(cart)}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
