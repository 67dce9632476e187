package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	hiBlue = color.New(color.FgHiBlue).SprintFunc()
)

func renderRound(w io.Writer, round int, fights []*game.FightOutput) {
	fmt.Fprintln(w, bold(fmt.Sprintf("=== Round %d ===", round)))
	for _, f := range fights {
		renderFight(w, f)
	}
}

func renderFight(w io.Writer, f *game.FightOutput) {
	fmt.Fprintf(w, "%s vs %s\n", cyan(f.Player1.Name), cyan(f.Player2.Name))
	renderList(w, f.Player1.Name+" upgrades", f.Messages(game.Player1Upgrades))
	renderList(w, f.Player2.Name+" upgrades", f.Messages(game.Player2Upgrades))
	renderList(w, f.Player1.Name+" effects", f.Messages(game.Player1Effects))
	renderList(w, f.Player2.Name+" effects", f.Messages(game.Player2Effects))
	for _, msg := range f.Messages(game.BeforeCombat) {
		fmt.Fprintln(w, "  "+yellow(msg))
	}
	for _, msg := range f.Messages(game.DuringCombat) {
		fmt.Fprintln(w, "  "+msg)
	}
	if f.Loser != nil {
		fmt.Fprintf(w, "  %s\n", red(fmt.Sprintf("%s has %d lives left.", f.Loser.Name, f.Loser.Lives())))
	}
}

func renderList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", hiBlue(title))
	for _, item := range items {
		fmt.Fprintf(w, "    - %s\n", item)
	}
}
