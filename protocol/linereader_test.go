package protocol

import (
	"strings"
	"testing"
)

func TestLineReaderParsesValidCommands(t *testing.T) {
	input := "BUY 1 GOOG 100 10\nSELL 2 goog 101 5\nCANCEL 1\n"
	r := NewLineReader(strings.NewReader(input))

	cmd, status, err := r.ReadNext()
	if err != nil || status != Success {
		t.Fatalf("unexpected read: %+v %v %v", cmd, status, err)
	}
	if cmd.Type != CommandBuy || cmd.ID != 1 || cmd.Instrument != "GOOG" || cmd.Price != 100 || cmd.Count != 10 {
		t.Errorf("unexpected buy command: %+v", cmd)
	}

	cmd, status, err = r.ReadNext()
	if err != nil || status != Success {
		t.Fatalf("unexpected read: %+v %v %v", cmd, status, err)
	}
	if cmd.Type != CommandSell || cmd.Instrument != "goog" {
		t.Errorf("expected case-sensitive instrument name preserved, got %+v", cmd)
	}

	cmd, status, err = r.ReadNext()
	if err != nil || status != Success || cmd.Type != CommandCancel || cmd.ID != 1 {
		t.Fatalf("unexpected cancel read: %+v %v %v", cmd, status, err)
	}

	_, status, err = r.ReadNext()
	if status != EndOfFile || err != nil {
		t.Fatalf("expected EndOfFile, got %v %v", status, err)
	}
}

func TestLineReaderSkipsBlankLines(t *testing.T) {
	r := NewLineReader(strings.NewReader("\n\nCANCEL 5\n\n"))
	cmd, status, err := r.ReadNext()
	if err != nil || status != Success || cmd.ID != 5 {
		t.Fatalf("unexpected read: %+v %v %v", cmd, status, err)
	}
	_, status, _ = r.ReadNext()
	if status != EndOfFile {
		t.Fatalf("expected EndOfFile, got %v", status)
	}
}

func TestLineReaderRejectsMalformedCommands(t *testing.T) {
	cases := []string{
		"BUY 1 GOOG 100",        // missing count
		"BUY x GOOG 100 10",     // bad id
		"BUY 1 GOOG -100 10",    // non-positive price
		"BUY 1 GOOG 100 0",      // non-positive count
		"FROB 1 GOOG 100 10",    // unknown type
		"CANCEL",                // missing id
		"CANCEL 1 2",            // extra field
	}
	for _, line := range cases {
		r := NewLineReader(strings.NewReader(line + "\n"))
		_, status, err := r.ReadNext()
		if status != ReadErr || err == nil {
			t.Errorf("expected ReadErr for %q, got status=%v err=%v", line, status, err)
		}
	}
}
