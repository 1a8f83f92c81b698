// Package report prints the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/starford/markdowntoc/internal/generator"
)

const (
	green  = "#A9DC76"
	orange = "#FC9867"
	red    = "#FF6188"
	grey   = "#727072"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(green))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(orange))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(red))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(grey))
)

// Summary describes a finished run.
type Summary struct {
	Stats generator.Stats
	// Bear is set when notes were written to the Bear database.
	Bear bool
}

// Render writes the summary to w. Colors are only used when styled is true.
func Render(w io.Writer, s Summary, styled bool) error {
	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}

	var b strings.Builder
	b.WriteString(paint(titleStyle, "==================== [DONE] ===================="))
	b.WriteByte('\n')

	counts := fmt.Sprintf("%d document(s): %d written, %d printed, %d skipped",
		s.Stats.Documents, s.Stats.Written, s.Stats.Printed, s.Stats.Skipped)
	b.WriteString(paint(dimStyle, counts))
	b.WriteByte('\n')

	if s.Stats.Failed > 0 {
		b.WriteString(paint(errorStyle, fmt.Sprintf("%d document(s) failed, see the log above", s.Stats.Failed)))
		b.WriteByte('\n')
	}

	if s.Bear && s.Stats.Written > 0 {
		b.WriteString(paint(warningStyle, "[WARNING]: There still might be syncing issues with iCloud, for a precautionary measure, edit the note again."))
		b.WriteByte('\n')
		b.WriteString("To see your changes, please restart Bear!\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
