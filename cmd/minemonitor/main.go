package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	psutil "github.com/shirou/gopsutil/v3/cpu"
	psmem "github.com/shirou/gopsutil/v3/mem"

	"trigpeach/internal/config"
	"trigpeach/internal/rng"
	"trigpeach/pkg/peach"
	"trigpeach/pkg/trailer"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00")).
			Bold(true).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399"))

	diff = flag.Uint("diff", 1, "difficulty in leading zero bits")
)

type statsMsg struct {
	attempts  uint64
	solved    uint64
	nonceHead uint32
	mapFill   float64
	resources string
}

type tickMsg time.Time

// model is the bubbletea program state: cumulative mining counters plus
// the last sampled resource line.
type model struct {
	attempts  uint64
	solved    uint64
	nonceHead uint32
	mapFill   float64
	resources string
	start     time.Time

	fillBar progress.Model
	statsCh chan statsMsg
}

func newModel(statsCh chan statsMsg) model {
	return model{
		start:   time.Now(),
		statsCh: statsCh,
		fillBar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForStats(m.statsCh), sampleResources(), tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) }))
}

func waitForStats(ch chan statsMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func sampleResources() tea.Cmd {
	return func() tea.Msg {
		cpuPercent, _ := psutil.Percent(0, false)
		memInfo, _ := psmem.VirtualMemory()
		var cpu float64
		if len(cpuPercent) > 0 {
			cpu = cpuPercent[0]
		}
		return statsMsg{resources: fmt.Sprintf("CPU: %.1f%% | RAM: %.1f%% | Go: %s", cpu, memInfo.UsedPercent, runtime.Version())}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case statsMsg:
		if msg.resources != "" {
			m.resources = msg.resources
		}
		if msg.attempts > 0 {
			m.attempts = msg.attempts
			m.solved = msg.solved
			m.nonceHead = msg.nonceHead
			m.mapFill = msg.mapFill
		}
		return m, waitForStats(m.statsCh)
	case tickMsg:
		return m, tea.Batch(sampleResources(), tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) }))
	}
	return m, nil
}

func (m model) View() string {
	elapsed := time.Since(m.start)
	rate := float64(0)
	if elapsed.Seconds() > 0 {
		rate = float64(m.attempts) / elapsed.Seconds()
	}

	header := headerStyle.Render("trigpeach minemonitor")
	body := fmt.Sprintf(
		"attempts:    %d\nsolved:      %d\nhash rate:   %s h/s\nnonce head:  %08x\nmap fill:    %s\nelapsed:     %s\n\n%s",
		m.attempts, m.solved, progressStyle.Render(fmt.Sprintf("%.1f", rate)), m.nonceHead,
		m.fillBar.ViewAs(m.mapFill), elapsed.Round(time.Second), m.resources,
	)

	return header + "\n" + panelStyle.Render(body) + "\n\npress q to quit\n"
}

// mine runs an unbounded Peach mining loop, reporting progress over ch.
func mine(bt *trailer.Trailer, ch chan statsMsg) {
	var P peach.Context
	if err := peach.Solve(&P, bt); err != nil {
		log.Fatalf("solve: %v", err)
	}
	defer peach.Free(&P)

	var attempts, solved uint64
	var out [32]byte
	for {
		attempts++
		if peach.Generate(&P, &out) {
			solved++
		}
		if attempts%1000 == 0 {
			var nonceHead uint32
			for i, b := range out[:4] {
				nonceHead |= uint32(b) << (8 * uint(i))
			}
			ch <- statsMsg{attempts: attempts, solved: solved, nonceHead: nonceHead, mapFill: P.FillFraction()}
		}
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	bt := trailer.New()
	bt.SetDifficulty(uint32(*diff))
	if cfg.Difficulty != 0 && !isFlagSet("diff") {
		bt.SetDifficulty(uint32(cfg.Difficulty))
	}

	rng.Srand(uint32(time.Now().UnixNano()))

	statsCh := make(chan statsMsg, 8)
	go mine(bt, statsCh)

	m := newModel(statsCh)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("monitor UI error: %v", err)
	}
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
