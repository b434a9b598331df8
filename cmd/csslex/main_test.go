package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestRunPrintsOneLinePerToken(t *testing.T) {
	var buf bytes.Buffer
	run(&buf, "div { color: red; }")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("expected at least one line of output")
	}
	if !strings.Contains(lines[0], "IDENT") {
		t.Errorf("expected first line to describe an IDENT token, got %q", lines[0])
	}
}

func TestRunNeverPanicsOnMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"url(bad\n",
		"'unterminated",
		"/* unterminated",
	}
	for _, input := range inputs {
		var buf bytes.Buffer
		run(&buf, input)
	}
}

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/test.css"
	if err := os.WriteFile(path, []byte("a{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := readInput([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if content != "a{}" {
		t.Errorf("got %q", content)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := readInput([]string{"/no/such/file.css"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
