package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/loopgen/internal/loop"
)

// Keyframe is one entry of a percentage-keyed keyframe sequence. The offset
// is the frame position relative to the path center, so consumers can attach
// the animation to any element without knowing the center.
type Keyframe struct {
	Key string
	DX  float64
	DY  float64
}

// Keyframes maps LoopFrames[i] to i/frameCount·100%. The closing frame's key
// is forced to exactly "100%" so the sequence is well-formed for CSS.
func Keyframes(res loop.Result, in loop.Input) []Keyframe {
	n := len(res.Samples)
	kfs := make([]Keyframe, 0, len(res.LoopFrames))

	for i, f := range res.LoopFrames {
		key := "100%"
		if i < n {
			key = formatPercent(float64(i) / float64(n) * 100)
		}
		kfs = append(kfs, Keyframe{
			Key: key,
			DX:  round6(f.X - in.CenterX),
			DY:  round6(f.Y - in.CenterY),
		})
	}
	return kfs
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(round6(p), 'f', -1, 64) + "%"
}

// WriteCSS emits an @keyframes block named name, plus the matching animation
// shorthand as a comment so the consumer can copy both.
func WriteCSS(w io.Writer, name string, durationSec float64, kfs []Keyframe) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "/* animation: %s %.6fs linear infinite; */\n", name, durationSec)
	fmt.Fprintf(&sb, "@keyframes %s {\n", name)
	for _, kf := range kfs {
		fmt.Fprintf(&sb, "  %s { transform: translate(%.6fpx, %.6fpx); }\n", kf.Key, kf.DX, kf.DY)
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func ExportCSS(path, name string, durationSec float64, kfs []Keyframe) error {
	if path == "-" {
		return WriteCSS(os.Stdout, name, durationSec, kfs)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSS(file, name, durationSec, kfs)
}
