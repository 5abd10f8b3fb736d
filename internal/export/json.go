package export

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/loopgen/internal/loop"
)

// Document is the JSON form of a generated loop. All float values are
// rounded to 6 decimal places so exports diff cleanly across platforms.
type Document struct {
	Meta   Meta        `json:"meta"`
	Params ParamsJSON  `json:"params"`
	Frames []FrameJSON `json:"frames"`
}

type Meta struct {
	DurationSec float64 `json:"durationSec"`
	FrameCount  int     `json:"frameCount"`
	Center      Point   `json:"center"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ParamsJSON struct {
	Inertia     float64 `json:"inertia"`
	Stiffness   float64 `json:"stiffness"`
	Damping     float64 `json:"damping"`
	RefVelocity float64 `json:"refVelocity"`
	RefPhase    float64 `json:"refPhase"`
	Softness    float64 `json:"softness"`
}

type FrameJSON struct {
	T            float64 `json:"t"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Theta        float64 `json:"theta"`
	Orientation  float64 `json:"orientation"`
	ScaleTangent float64 `json:"scaleTangent"`
	ScaleNormal  float64 `json:"scaleNormal"`
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// NewDocument builds the export document from a result. in must be the same
// input the result was generated from (it carries the path center).
func NewDocument(res loop.Result, in loop.Input) Document {
	doc := Document{
		Meta: Meta{
			DurationSec: round6(res.Period),
			FrameCount:  len(res.Samples),
			Center:      Point{X: round6(in.CenterX), Y: round6(in.CenterY)},
		},
		Params: ParamsJSON{
			Inertia:     round6(res.Params.Inertia),
			Stiffness:   round6(res.Params.Stiffness),
			Damping:     round6(res.Params.Damping),
			RefVelocity: round6(res.Params.RefVelocity),
			RefPhase:    round6(res.Params.RefPhase),
			Softness:    round6(res.Params.Softness),
		},
		Frames: make([]FrameJSON, 0, len(res.LoopFrames)),
	}

	for _, f := range res.LoopFrames {
		doc.Frames = append(doc.Frames, FrameJSON{
			T:            round6(f.T),
			X:            round6(f.X),
			Y:            round6(f.Y),
			Theta:        round6(f.Angle),
			Orientation:  round6(f.Orientation),
			ScaleTangent: round6(f.ScaleTangent),
			ScaleNormal:  round6(f.ScaleNormal),
		})
	}
	return doc
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func ExportJSON(path string, doc Document) error {
	if path == "-" {
		return WriteJSON(os.Stdout, doc)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, doc)
}
