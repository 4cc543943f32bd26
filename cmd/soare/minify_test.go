package main

import (
	"bytes"
	"errors"
	"testing"

	"soare/internal/driver"
)

func TestWriteMinifyTextStdoutJoinsWithComments(t *testing.T) {
	report := &driver.MinifyReport{Results: []driver.MinifyResult{
		{Path: "a.soare", Output: []byte("let a=1")},
		{Path: "b.soare", Err: errors.New("boom")},
		{Path: "c.soare", Output: []byte("write 2")},
	}}
	var buf bytes.Buffer
	if err := writeMinifyText(&buf, report, driver.MinifyOptions{Stdout: true}, false); err != nil {
		t.Fatal(err)
	}
	want := "? a.soare\nlet a=1\n? c.soare\nwrite 2\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteMinifyTextCheckAndWrite(t *testing.T) {
	report := &driver.MinifyReport{Results: []driver.MinifyResult{
		{Path: "a.soare", OutPath: "a.min.soare", Changed: true},
		{Path: "b.soare", OutPath: "b.min.soare"},
	}}

	var check bytes.Buffer
	if err := writeMinifyText(&check, report, driver.MinifyOptions{Check: true}, false); err != nil {
		t.Fatal(err)
	}
	if check.String() != "stale: a.soare\n" {
		t.Fatalf("check output %q", check.String())
	}

	var write bytes.Buffer
	if err := writeMinifyText(&write, report, driver.MinifyOptions{}, false); err != nil {
		t.Fatal(err)
	}
	if write.String() != "minified a.soare -> a.min.soare\n" {
		t.Fatalf("write output %q", write.String())
	}

	var silent bytes.Buffer
	if err := writeMinifyText(&silent, report, driver.MinifyOptions{}, true); err != nil {
		t.Fatal(err)
	}
	if silent.Len() != 0 {
		t.Fatalf("quiet output %q", silent.String())
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("fancy"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if !shouldUseTUI(uiModeOn) || shouldUseTUI(uiModeOff) {
		t.Error("explicit modes must win")
	}
}
