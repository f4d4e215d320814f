package output

import (
	"io"

	"github.com/jeduden/cefrize/internal/analyzer"
)

// Formatter defines the interface for rendering analysis reports.
type Formatter interface {
	Format(w io.Writer, rep *analyzer.Report) error
}
