package main

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestRunScenarioA(t *testing.T) {
	script := `
make a 0
make b 0
link a b
cut a b
`
	if err := run(strings.NewReader(script), "sum", testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunUnknownAggregate(t *testing.T) {
	if err := run(strings.NewReader(""), "median", testLogger()); err == nil {
		t.Fatal("expected an error for an unknown aggregate")
	}
}

func TestRunUnknownNodeLabel(t *testing.T) {
	err := run(strings.NewReader("link a b\n"), "sum", testLogger())
	if err == nil {
		t.Fatal("expected an error referencing an unmade node")
	}
}

func TestRunCommentsAndBlankLinesIgnored(t *testing.T) {
	script := `
# comment

make a 1

# another comment
`
	if err := run(strings.NewReader(script), "max", testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
}
