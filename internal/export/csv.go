package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/loopgen/internal/loop"
)

// WriteCSV emits one row per loop frame, closing frame included.
func WriteCSV(w io.Writer, res loop.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"t", "x", "y", "theta", "orientation", "scale_tangent", "scale_normal"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range res.LoopFrames {
		row := []string{
			strconv.FormatFloat(f.T, 'f', 6, 64),
			strconv.FormatFloat(f.X, 'f', 6, 64),
			strconv.FormatFloat(f.Y, 'f', 6, 64),
			strconv.FormatFloat(f.Angle, 'f', 6, 64),
			strconv.FormatFloat(f.Orientation, 'f', 6, 64),
			strconv.FormatFloat(f.ScaleTangent, 'f', 6, 64),
			strconv.FormatFloat(f.ScaleNormal, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, res loop.Result) error {
	if path == "-" {
		return WriteCSV(os.Stdout, res)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, res)
}
