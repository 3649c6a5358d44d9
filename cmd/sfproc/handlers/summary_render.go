package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/sfproc/internal/processor"
)

var (
	summaryColorGreen = lipgloss.Color("#22c55e")
	summaryColorRed   = lipgloss.Color("#ef4444")
	summaryColorBlue  = lipgloss.Color("#3b82f6")
	summaryColorDim   = lipgloss.Color("#6b7280")
	summaryColorWhite = lipgloss.Color("#f9fafb")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryGreenStyle = lipgloss.NewStyle().
				Foreground(summaryColorGreen)

	summaryRedStyle = lipgloss.NewStyle().
			Foreground(summaryColorRed)
)

// renderSummary produces a lipgloss-styled run summary string.
func renderSummary(s *processor.Summary) string {
	var b strings.Builder

	title := fmt.Sprintf("  sfproc: s3://%s/%s", s.Bucket, s.Prefix)
	if s.Pretend {
		title += " (pretend)"
	}

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(summarySectionStyle.Render("  Objects"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    Discovered:      %5d\n", s.Discovered))
	b.WriteString(fmt.Sprintf("    Eligible:        %5d\n", s.Eligible))
	b.WriteString(fmt.Sprintf("    Not eligible:    %5d\n", s.Ineligible))
	if s.InvalidPattern > 0 {
		b.WriteString(summaryRedStyle.Render(fmt.Sprintf("    Invalid pattern: %5d", s.InvalidPattern)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summarySectionStyle.Render("  Copies"))
	b.WriteString("\n")
	if s.Pretend {
		b.WriteString(fmt.Sprintf("    Pretended:       %5d\n", s.Pretended))
	}
	b.WriteString(summaryGreenStyle.Render(fmt.Sprintf("    Succeeded:       %5d", s.Succeeded)))
	b.WriteString("\n")
	b.WriteString(renderFailed("    Failed:          %5d", s.Failed))
	b.WriteString("\n")

	if s.Failed > 0 {
		b.WriteString(summaryDimStyle.Render(fmt.Sprintf(
			"      missing KMS key: %d, copy errors: %d, rejected: %d",
			s.MissingEncryptionKey, s.CopyFailed, s.Rejected,
		)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderFailed(format string, n int) string {
	line := fmt.Sprintf(format, n)
	if n == 0 {
		return line
	}
	return summaryRedStyle.Render(line)
}
