// Package render draws compiled circuits and execution results as styled
// terminal text. Circuit produces a wire diagram from a compiled grid,
// Histogram a bar chart of outcome counts.
package render

import (
	"fmt"
	"sort"
	"strings"

	"qpusim/circuit"
	"qpusim/gate"
)

// Circuit renders the circuit's compiled grid as a wire diagram: one
// labeled three-line band per qubit, one column per scheduled position,
// and a doubled classical wire underneath collecting the measurements.
func Circuit(c *circuit.Circuit) string {
	grid := c.Grid()
	n := c.NumQubits()

	var sb strings.Builder

	header := strings.Repeat(" ", labelW)
	for pos := 1; pos <= len(grid); pos++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", pos), cellW))
	}
	sb.WriteString(header + "\n")

	for q := 0; q < n; q++ {
		topLine := strings.Repeat(" ", labelW)
		midLine := wireLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("q[%d]", q))) + "──"
		botLine := strings.Repeat(" ", labelW)

		for _, row := range grid {
			top, mid, bot := renderCell(row, q)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// Classical wire with one landing point per measurement column.
	cbitLine := cbitLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("c%d", n))) + cbitWireStyle.Render("══")
	for _, row := range grid {
		if q := measuredQubit(row); q >= 0 {
			bitLabel := fmt.Sprintf("%d", q)
			dashL := (cellW - 1) / 2
			dashR := max(cellW-dashL-1-len(bitLabel), 0)
			cbitLine += cbitWireStyle.Render(strings.Repeat("═", dashL)) +
				cbitConnectorStyle.Render("╩"+bitLabel) +
				cbitWireStyle.Render(strings.Repeat("═", dashR))
		} else {
			cbitLine += cbitWireStyle.Render(strings.Repeat("═", cellW))
		}
	}
	sb.WriteString(cbitLine + "\n")

	return sb.String()
}

// Histogram renders the outcome counts of a result as a bar chart, widest
// bar scaled to barWidth columns, outcomes in lexicographic order.
func Histogram(res *circuit.Result, barWidth int) string {
	if barWidth < 1 {
		barWidth = 40
	}

	outcomes := make([]string, 0, len(res.Counts))
	maxCount := 0
	for outcome, count := range res.Counts {
		outcomes = append(outcomes, outcome)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Strings(outcomes)

	var sb strings.Builder
	for _, outcome := range outcomes {
		count := res.Counts[outcome]
		width := count * barWidth / maxCount
		if width < 1 {
			width = 1
		}
		pct := 100 * float64(count) / float64(res.Shots)
		sb.WriteString(countStyle.Render(outcome))
		sb.WriteString("  ")
		sb.WriteString(barStyle.Render(strings.Repeat("█", width)))
		sb.WriteString(countStyle.Render(fmt.Sprintf(" %d (%.1f%%)", count, pct)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderCell returns the three lines of one grid cell for qubit q. Each
// line is exactly cellW visible characters wide.
func renderCell(row []circuit.Cell, q int) (top, mid, bot string) {
	cell := row[q]
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dblVertRow := strings.Repeat(" ", halfW) + cbitConnectorStyle.Render("║") + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	// A barrier fences every wire even though only its end columns carry
	// the marker in the grid.
	for _, other := range row {
		if other.Op == circuit.CellBarrier {
			top = vertRow
			mid = strings.Repeat("─", dashL) + "│" + strings.Repeat("─", dashR)
			bot = vertRow
			return
		}
	}

	lo, hi := rowSpan(row)
	vertAbove := lo < q && q <= hi
	vertBelow := lo <= q && q < hi
	measured := measuredQubit(row)
	measureBelow := measured >= 0 && q >= measured

	switch cell.Op {
	case circuit.CellControl:
		top, bot = connectors(vertAbove, vertBelow, measureBelow, emptyRow, vertRow, dblVertRow)
		mid = strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR)

	case circuit.CellSwap:
		top, bot = connectors(vertAbove, vertBelow, measureBelow, emptyRow, vertRow, dblVertRow)
		mid = strings.Repeat("─", dashL) + gateStyle.Render("×") + strings.Repeat("─", dashR)

	case circuit.CellMeasure:
		top, mid, bot = gateBox("M")
		if measureBelow {
			bot = dblVertRow
		}

	case circuit.CellGate:
		if sym, ok := targetSymbol(row, cell.Kind); ok {
			top, bot = connectors(vertAbove, vertBelow, measureBelow, emptyRow, vertRow, dblVertRow)
			mid = strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR)
		} else {
			top, mid, bot = gateBox(cell.Kind.String())
			if measureBelow {
				bot = dblVertRow
			} else if vertBelow {
				bot = vertRow
			}
			if vertAbove {
				top = vertRow
			}
		}

	default:
		if measureBelow {
			top = dblVertRow
			mid = strings.Repeat("─", dashL) + cbitConnectorStyle.Render("╫") + strings.Repeat("─", dashR)
			bot = dblVertRow
		} else if vertAbove || vertBelow {
			// Idle wire crossed by a vertical connection.
			top = vertRow
			mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
			bot = vertRow
			if !vertAbove {
				top = emptyRow
			}
			if !vertBelow {
				bot = emptyRow
			}
		} else {
			top = emptyRow
			mid = strings.Repeat("─", cellW)
			bot = emptyRow
		}
	}
	return
}

// targetSymbol picks the compact wire symbol for the target of a
// controlled gate. Boxed names are used outside controlled rows and for
// parameterized targets.
func targetSymbol(row []circuit.Cell, kind gate.Kind) (string, bool) {
	controlled := false
	for _, cell := range row {
		if cell.Op == circuit.CellControl {
			controlled = true
			break
		}
	}
	if !controlled {
		return "", false
	}
	switch kind {
	case gate.X:
		return "⊕", true
	case gate.Z:
		return "●", true
	}
	return "", false
}

func connectors(above, below, measureBelow bool, emptyRow, vertRow, dblVertRow string) (top, bot string) {
	top, bot = emptyRow, emptyRow
	if above {
		top = vertRow
	}
	if below {
		bot = vertRow
	}
	if measureBelow {
		bot = dblVertRow
	}
	return
}

// gateBox draws a boxed gate name centered in the cell.
func gateBox(name string) (top, mid, bot string) {
	margin := (cellW - gateBoxW) / 2
	rightMargin := cellW - margin - gateBoxW
	label := padCenter(name, gateNameW)

	top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
	mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+label+"├") + strings.Repeat("─", rightMargin)
	bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
	return
}

// rowSpan returns the first and last occupied column of a row, or (0, -1)
// for an all-identity row.
func rowSpan(row []circuit.Cell) (lo, hi int) {
	lo, hi = 0, -1
	seen := false
	for q, cell := range row {
		if cell.Op == circuit.CellIdentity {
			continue
		}
		if !seen {
			lo = q
			seen = true
		}
		hi = q
	}
	return
}

func measuredQubit(row []circuit.Cell) int {
	for q, cell := range row {
		if cell.Op == circuit.CellMeasure {
			return q
		}
	}
	return -1
}

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
