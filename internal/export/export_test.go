package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/loopgen/internal/loop"
)

func testResult() (loop.Result, loop.Input) {
	in := loop.DefaultInput()
	in.FrameCount = 12
	in.CenterX = 50
	in.CenterY = -20
	return loop.NewGenerator().Generate(in), in
}

func TestKeyframesLastKeyIs100Percent(t *testing.T) {
	res, in := testResult()
	kfs := Keyframes(res, in)

	if len(kfs) != len(res.LoopFrames) {
		t.Fatalf("expected %d keyframes, got %d", len(res.LoopFrames), len(kfs))
	}

	if kfs[0].Key != "0%" {
		t.Errorf("first key should be 0%%, got %s", kfs[0].Key)
	}
	if kfs[len(kfs)-1].Key != "100%" {
		t.Errorf("last key must be exactly 100%%, got %s", kfs[len(kfs)-1].Key)
	}
}

func TestKeyframesSeamOffsetsMatch(t *testing.T) {
	res, in := testResult()
	kfs := Keyframes(res, in)

	first, last := kfs[0], kfs[len(kfs)-1]
	if first.DX != last.DX || first.DY != last.DY {
		t.Errorf("seam offsets must match: first=(%f,%f) last=(%f,%f)",
			first.DX, first.DY, last.DX, last.DY)
	}
}

func TestKeyframesOffsetsRelativeToCenter(t *testing.T) {
	res, in := testResult()
	kfs := Keyframes(res, in)

	for i, kf := range kfs {
		f := res.LoopFrames[i]
		if math.Abs(kf.DX-(f.X-in.CenterX)) > 1e-6 {
			t.Errorf("keyframe %d: DX not relative to center", i)
		}
	}
}

func TestWriteCSSShape(t *testing.T) {
	res, in := testResult()
	kfs := Keyframes(res, in)

	var buf bytes.Buffer
	if err := WriteCSS(&buf, "spin", res.Period, kfs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "@keyframes spin {") {
		t.Error("missing @keyframes header")
	}
	if !strings.Contains(out, "100% {") {
		t.Error("missing 100% key")
	}
	if strings.Count(out, "transform: translate(") != len(kfs) {
		t.Errorf("expected %d transform lines", len(kfs))
	}
}

func TestDocumentRoundsToSixDecimals(t *testing.T) {
	res, in := testResult()
	doc := NewDocument(res, in)

	if len(doc.Frames) != len(res.LoopFrames) {
		t.Fatalf("expected %d frames, got %d", len(res.LoopFrames), len(doc.Frames))
	}

	for i, f := range doc.Frames {
		for _, v := range []float64{f.T, f.X, f.Y, f.Theta} {
			scaled := v * 1e6
			if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
				t.Errorf("frame %d: value %v not rounded to 6 decimals", i, v)
			}
		}
	}
}

func TestWriteJSONDecodes(t *testing.T) {
	res, in := testResult()
	doc := NewDocument(res, in)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}

	var decoded Document
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Meta.DurationSec != doc.Meta.DurationSec {
		t.Error("duration did not survive the round trip")
	}
	if decoded.Meta.Center.X != 50 || decoded.Meta.Center.Y != -20 {
		t.Errorf("center mismatch: %+v", decoded.Meta.Center)
	}
}

func TestWriteCSVRows(t *testing.T) {
	res, _ := testResult()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != len(res.LoopFrames)+1 {
		t.Errorf("expected header + %d rows, got %d", len(res.LoopFrames), len(records))
	}
	if records[0][0] != "t" || records[0][3] != "theta" {
		t.Errorf("unexpected header: %v", records[0])
	}
}
