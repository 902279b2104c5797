package series

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-tabby/tabby/internal/config"
	"github.com/go-tabby/tabby/internal/value"
)

// emptyLiteral is the fixed rendering of an empty Series.
const emptyLiteral = "Empty Series"

const truncationMark = "..."

// String renders a tabular preview: at most MaxPreviewRows rows of
// "index | value" lines with the index column padded to the widest shown
// index, value text truncated at MaxValueWidth characters, missing values
// shown as the NA token, an ellipsis row when rows are omitted, and a
// closing "Length: N" summary. Limits come from the global configuration.
func (s *Series) String() string {
	cfg := config.GetGlobalConfig()
	if len(s.values) == 0 {
		return emptyLiteral
	}

	shown := len(s.values)
	if shown > cfg.MaxPreviewRows {
		shown = cfg.MaxPreviewRows
	}

	cells := make([]string, shown)
	for i := 0; i < shown; i++ {
		cells[i] = renderCell(s.values[i], cfg)
	}

	idxWidth := len(strconv.Itoa(shown - 1))

	var b strings.Builder
	for i, cell := range cells {
		fmt.Fprintf(&b, "%*d | %s\n", idxWidth, i, cell)
	}
	if len(s.values) > shown {
		b.WriteString(truncationMark + "\n")
	}
	fmt.Fprintf(&b, "\nLength: %d", len(s.values))
	return b.String()
}

func renderCell(v any, cfg config.Config) string {
	if value.IsNA(v) {
		return cfg.NAToken
	}
	text := value.Format(v)
	if runes := []rune(text); len(runes) > cfg.MaxValueWidth {
		text = string(runes[:cfg.MaxValueWidth]) + truncationMark
	}
	return text
}

// Fprint writes the preview followed by a blank line.
func (s *Series) Fprint(w io.Writer) {
	fmt.Fprintln(w, s.String())
	fmt.Fprintln(w)
}

// Show prints the preview to stdout followed by a blank line.
func (s *Series) Show() {
	s.Fprint(os.Stdout)
}
