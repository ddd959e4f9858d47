// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/benchrank/benchstat"
	"golang.org/x/benchrank/benchunit"
)

func scenarios() []*benchstat.Scenario {
	return []*benchstat.Scenario{
		{Name: "flat_map", Samples: []float64{1000, 1200, 1100, 1500, 900}},
		{Name: "unmeasured"},
		{Name: "map.flatten", Samples: []float64{2000, 2100, 2500, 1900}},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, scenarios(), "svg", benchunit.Best); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG:\n%.200s", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, scenarios(), "png", benchunit.Best); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not PNG")
	}
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []*benchstat.Scenario{{Name: "x"}}, "svg", benchunit.Best); !errors.Is(err, ErrNoSamples) {
		t.Errorf("got %v, want ErrNoSamples", err)
	}
	if err := Write(&buf, scenarios(), "gif", benchunit.Best); err == nil {
		t.Errorf("gif format should fail")
	}
}

func TestFormatFor(t *testing.T) {
	check := func(path, want string, ok bool) {
		t.Helper()
		got, err := FormatFor(path)
		if (err == nil) != ok || got != want {
			t.Errorf("FormatFor(%q) = %q, %v", path, got, err)
		}
	}
	check("out.svg", "svg", true)
	check("out/Chart.PNG", "png", true)
	check("out.pdf", "", false)
	check("out", "", false)
}
