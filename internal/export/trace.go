package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/rootlab/internal/experiment"
	"github.com/san-kum/rootlab/internal/rootfind"
)

// WriteTraceCSV writes one row per iteration: step, x, f(x) and delta.
func WriteTraceCSV(w io.Writer, trace []rootfind.Iteration) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "x", "fx", "delta"}); err != nil {
		return err
	}

	for _, it := range trace {
		row := []string{
			strconv.Itoa(it.Step),
			strconv.FormatFloat(it.X, 'f', 6, 64),
			strconv.FormatFloat(it.FX, 'f', 6, 64),
			strconv.FormatFloat(it.Delta, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteReportJSON(w io.Writer, report *experiment.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
