// Command qpusim is an interactive terminal front end for the simulator:
// pick a preset circuit, choose a shot count, and inspect the wire diagram
// and outcome histogram.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "qpusim: %v\n", err)
		os.Exit(1)
	}
}
