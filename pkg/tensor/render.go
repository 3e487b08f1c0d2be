package tensor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// String returns a compact one-line description of the tensor.
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString("Tensor(shape=[")
	for i, dim := range t.shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteString("])")
	return sb.String()
}

// Render writes a human-readable view of the tensor. Matrices render as a
// bordered table with row and column indices; other ranks render the flat
// row-major data.
func (t *Tensor) Render(w io.Writer) {
	if t.Rank() == 2 {
		t.renderMatrix(w)
		return
	}

	_, _ = fmt.Fprintf(w, "%s\n", t.String())
	for i, v := range t.data {
		if i > 0 {
			_, _ = fmt.Fprint(w, " ")
		}
		_, _ = fmt.Fprintf(w, "%.4f", v)
	}
	_, _ = fmt.Fprintln(w)
}

func (t *Tensor) renderMatrix(w io.Writer) {
	rows, cols := t.shape[0], t.shape[1]

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := table.Row{""}
	for j := 0; j < cols; j++ {
		header = append(header, j)
	}
	tw.AppendHeader(header)

	for i := 0; i < rows; i++ {
		row := table.Row{i}
		for j := 0; j < cols; j++ {
			row = append(row, strconv.FormatFloat(t.data[i*cols+j], 'g', 6, 64))
		}
		tw.AppendRow(row)
	}
	tw.Render()
}
