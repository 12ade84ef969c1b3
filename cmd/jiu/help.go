// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/PRO-2684/jiu/internal/config"
)

const description = "A minimal command runner driven by .jiu.toml recipes"

func renderHelp(program string, st *styles) string {
	var sb strings.Builder

	sb.WriteString(st.Title.Render(config.AppName))
	sb.WriteString(": " + description + "\n\n")

	sb.WriteString(st.Subtitle.Render("Usage:"))
	fmt.Fprintf(&sb, " %s [OPTION_OR_RECIPE] [ARGS]...\n\n", program)

	sb.WriteString(st.Subtitle.Render("Options:"))
	sb.WriteString("\n")
	for _, opt := range [][2]string{
		{"-h, --help", "Show this help message"},
		{"-v, --version", "Show version information"},
		{"-l, --list", "List all available recipes"},
	} {
		fmt.Fprintf(&sb, "  %-15s  %s\n", opt[0], opt[1])
	}

	sb.WriteString("\n")
	sb.WriteString(st.Subtitle.Render("Environment:"))
	sb.WriteString("\n")
	for _, env := range [][2]string{
		{config.EnvPrefix + "_DEBUG", "Print debug diagnostics when set"},
		{config.EnvPrefix + "_COLOR", "auto, always or never"},
		{config.EnvPrefix + "_CONFIG", "Use this recipe file instead of searching for .jiu.toml"},
	} {
		fmt.Fprintf(&sb, "  %-15s  %s\n", env[0], env[1])
	}

	return sb.String()
}

func renderVersion() string {
	return config.AppName + " " + getVersionString() + "\n"
}
