// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/render"
)

func TestRecorderRecordsCalls(t *testing.T) {
	r := New()
	g := placement.Glyphs{Text: "Hi", Origin: maplabel.Pt(10, 20), Font: "10px sans-serif", ScaleX: 1, ScaleY: 1}
	b := placement.Box{Rect: maplabel.RectXYWH(0, 0, 4, 2)}

	_ = r.FillRect(b, maplabel.White)
	_ = r.StrokeRect(b, maplabel.Black, 2)
	_ = r.StrokeText(g, maplabel.White, 3)
	_ = r.FillText(g, maplabel.Black)

	cmds := r.Commands()
	if len(cmds) != 4 {
		t.Fatalf("len(Commands()) = %d, want 4", len(cmds))
	}
	if st, ok := cmds[2].(StrokeTextCommand); !ok || st.Width != 3 || st.Glyphs.Text != "Hi" {
		t.Errorf("Commands()[2] = %#v", cmds[2])
	}

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"FillRect at=(0.00,0.00)",
		"StrokeRect",
		`StrokeText "Hi" at=(10.00,20.00)`,
		`FillText "Hi"`,
		"width=3.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteTo() output misses %q:\n%s", want, out)
		}
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d", r.Len())
	}
}

func TestRecorderMeasure(t *testing.T) {
	if e := New().Measure("20px serif", "ab"); e.Width != 24 {
		t.Errorf("default Measure width = %v, want 24", e.Width)
	}
	p := metrics.ProviderFunc(func(string, string) metrics.Extent { return metrics.Extent{Width: 1} })
	if e := New(WithMetrics(p)).Measure("x", "y"); e.Width != 1 {
		t.Errorf("WithMetrics Measure width = %v, want 1", e.Width)
	}
}

func TestRecorderRegistered(t *testing.T) {
	b, err := render.NewBackend("recorder", 10, 10)
	if err != nil {
		t.Fatalf("NewBackend(recorder) error = %v", err)
	}
	if _, ok := b.(*Recorder); !ok {
		t.Errorf("NewBackend(recorder) = %T", b)
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdStrokeText.String() != "StrokeText" || CommandType(99).String() != "Unknown" {
		t.Error("CommandType.String mismatch")
	}
}
