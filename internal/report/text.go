package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteText writes the resolution view as human-readable styled text
// to the writer. Output uses lipgloss for color and formatting when
// the output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, v View) error {
	s := DefaultStyles()

	if v.Package != "" {
		fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("Package %s", v.Package)))
		fmt.Fprintln(w)
	}

	if len(v.Identities) == 0 && len(v.Conflicts) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No contracts resolved."))
		return nil
	}

	for _, id := range v.Identities {
		writeIdentity(w, id, s)
	}

	if len(v.Conflicts) > 0 {
		fmt.Fprintln(w, s.Conflict.Render("CONFLICTS"))
		for _, c := range v.Conflicts {
			fmt.Fprintf(w, "  %s\n", s.Conflict.Render("✗ ")+c.Message)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf(
		"%d identit(ies) resolved, %d conflict(s)",
		len(v.Identities), len(v.Conflicts))))

	return nil
}

func writeIdentity(w io.Writer, id IdentityView, s Styles) {
	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", id.Name)))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %s %s, serves %s",
		id.Kind,
		s.ClassStyle(id.Class).Render(id.Class),
		strings.Join(id.Contracts, ", "))))

	// Signature table fits in 80 cols; borders and padding take
	// ~10, KEY=12, leaving the shape column the rest.
	const maxShape = 54
	rows := make([][]string, 0, len(id.Signatures))
	for _, sig := range id.Signatures {
		shape := sig.Shape
		if len(shape) > maxShape {
			shape = shape[:maxShape-3] + "..."
		}
		rows = append(rows, []string{sig.Key, shape})
	}

	t := table.New().
		Width(76). // Leave 4 chars for left indent.
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		}).
		Headers("KEY", "SIGNATURE").
		Rows(rows...)

	fmt.Fprintln(w, t)
}
