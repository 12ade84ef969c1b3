// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/PRO-2684/jiu/pkg/recipe"

	"github.com/charmbracelet/lipgloss"
)

// renderList renders the recipe file description followed by one line per
// recipe: its names, its argument summary and its description, the last
// aligned in a column.
func renderList(cfg *recipe.Config, st *styles) string {
	var sb strings.Builder

	if cfg.Description != "" {
		sb.WriteString(st.Title.Render(cfg.Description))
		sb.WriteString("\n")
	}

	summaries := cfg.Summaries()
	if len(summaries) == 0 {
		sb.WriteString(st.Muted.Render("No recipes defined."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(st.Subtitle.Render("Recipes:"))
	sb.WriteString("\n")

	heads := make([]string, len(summaries))
	width := 0
	for i, s := range summaries {
		heads[i] = renderSummaryHead(s, st)
		width = max(width, lipgloss.Width(heads[i]))
	}

	for i, s := range summaries {
		sb.WriteString("  ")
		sb.WriteString(heads[i])
		if s.Description != "" {
			sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(heads[i])+2))
			sb.WriteString(st.Muted.Render(s.Description))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderSummaryHead(s recipe.Summary, st *styles) string {
	parts := make([]string, 0, len(s.Arguments)+1)
	parts = append(parts, st.Recipe.Render(s.Label()))
	for _, slot := range s.Arguments {
		parts = append(parts, renderSlot(slot, st))
	}
	return strings.Join(parts, " ")
}

// renderSlot renders an argument as its symbol followed by its name.
func renderSlot(slot recipe.ArgumentSlot, st *styles) string {
	symbol := slot.Quantifier.Symbol()
	if symbol == "" {
		return st.Argument.Render(slot.Name)
	}
	return st.Symbol.Render(symbol) + st.Argument.Render(slot.Name)
}
