// Package pretty renders analysis reports with github.com/jedib0t/go-pretty.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/captaingang"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const rule = 60

// WriteReport writes a plain-text report of result to w.
func WriteReport(w io.Writer, result *captaingang.AnalysisResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, strings.Repeat("=", rule))
	fmt.Fprintln(&b, "CAPTAIN GANG ANALYSIS RESULTS")
	fmt.Fprintln(&b, strings.Repeat("=", rule))
	fmt.Fprintf(&b, "Captain ID: %s\n", result.CaptainID)
	if name := result.DisplayCaptainName(); name != "" {
		fmt.Fprintf(&b, "Captain/Co-Captain: %s\n", name)
	}

	if result.NoTeams() {
		fmt.Fprintln(&b, "No captain teams found!")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Teams analyzed: %d\n", len(result.Teams))
	fmt.Fprintf(&b, "Total player appearances: %d\n", result.TotalAppearances)
	fmt.Fprintf(&b, "Unique players: %d\n", result.UniquePlayers())

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Captain teams:")
	b.WriteString(teamTable(result).Render())
	fmt.Fprintln(&b)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Player appearances across all captain teams:")
	b.WriteString(playerTable(result.Frequencies).Render())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, strings.Repeat("=", rule))

	_, err := io.WriteString(w, b.String())
	return err
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}

func teamTable(result *captaingang.AnalysisResult) table.Writer {
	t := newTable()
	t.AppendHeader(table.Row{"Team", "ID", "Role", "Players"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})
	for i, team := range result.Teams {
		t.AppendRow(table.Row{team.Name, team.ID, role(team), result.TeamPlayerCount(i)})
	}
	return t
}

func role(team captaingang.TeamRef) string {
	if team.IsCoCaptain() {
		return "co-captain"
	}
	return "captain"
}

func playerTable(freq captaingang.FrequencyTable) table.Writer {
	t := newTable()
	t.AppendHeader(table.Row{"Player", "Times"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	for _, row := range freq.Sorted() {
		t.AppendRow(table.Row{row.Name, row.Count})
	}
	return t
}
