// internal/adapters/output/block_writer.go
package output

import (
	"fmt"
	"io"
	"strings"

	"asmx/internal/core/domain"
)

// Separator layout between consecutive extraction blocks. The width is part
// of the output contract: humans diff multi-target output against it.
const (
	SeparatorWidth = 50
	SeparatorChar  = "-"
)

// BlockWriter emits extraction blocks to a writer. Output is the product:
// the toolchain's text passes through verbatim, framed only by a one-line
// banner per block and the separator between blocks.
type BlockWriter struct {
	w io.Writer
}

// NewBlockWriter creates a BlockWriter targeting w (normally os.Stdout).
func NewBlockWriter(w io.Writer) *BlockWriter {
	return &BlockWriter{w: w}
}

// WriteBanner prints the one-line banner naming the resolved target and the
// function being inspected. Printed before the toolchain is invoked.
func (b *BlockWriter) WriteBanner(req domain.ExtractionRequest) error {
	_, err := fmt.Fprintf(b.w, "asmx: %s [%s -> %s]\n",
		req.Function, req.Target.Alias, req.Target.Triple)
	return err
}

// WriteOutput emits the captured toolchain stdout unchanged. If the capture
// does not end in a newline one is appended, so a following separator always
// starts its own line.
func (b *BlockWriter) WriteOutput(res *domain.ExtractionResult) error {
	return b.writeTerminated(res.Output)
}

// WriteDiagnostics emits the toolchain's diagnostic output verbatim.
// Used when an invocation fails: the diagnostic text is the payload.
func (b *BlockWriter) WriteDiagnostics(res *domain.ExtractionResult) error {
	return b.writeTerminated(res.Diagnostics)
}

// WriteSeparator emits the fixed-width separator line followed by a blank
// line. Callers emit it between consecutive blocks only, never before the
// first or after the last.
func (b *BlockWriter) WriteSeparator() error {
	_, err := fmt.Fprintf(b.w, "%s\n\n", strings.Repeat(SeparatorChar, SeparatorWidth))
	return err
}

func (b *BlockWriter) writeTerminated(s string) error {
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(b.w, s)
	return err
}
