package diag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/mmproof/codec"
)

func TestNewLogger(t *testing.T) {
	text, js := &bytes.Buffer{}, &bytes.Buffer{}
	log := NewLogger(text, js)
	log.Info("verified", "theorem", "a1i")

	if got, want := text.String(), "msg=verified theorem=a1i\n"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	var rec map[string]any
	if err := json.Unmarshal(js.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["level"] != "INFO" || rec["theorem"] != "a1i" || rec["time"] == nil {
		t.Errorf("json record %v", rec)
	}
}

func TestLogSink(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &LogSink{Log: NewLogger(buf, nil)}
	err := &codec.Error{Theorem: "th", Block: 1, Char: 4, Err: codec.ErrBadChar}
	s.Error("th", err)
	got := buf.String()
	for _, want := range []string{"level=ERROR", "theorem=th", "block=2", "char=5"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}

	buf.Reset()
	s.Error("th", &codec.Error{Theorem: "th", Label: "x", Block: -1, Char: -1, Err: codec.ErrLabelNotFound})
	if strings.Contains(buf.String(), "block=") {
		t.Errorf("label error logged a position: %q", buf)
	}
}

func TestCollector(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Error(fmt.Sprint("th", i), errors.New("boom"))
		}()
	}
	wg.Wait()
	if n := len(c.Errors()); n != 10 {
		t.Errorf("%d errors, want 10", n)
	}

	text := &bytes.Buffer{}
	m := Multi{c, &LogSink{Log: NewLogger(text, nil)}}
	m.Info("a1i", "verified")
	want := []Entry{{Theorem: "a1i", Msg: "verified"}}
	if diff := cmp.Diff(want, c.Infos()); diff != "" {
		t.Errorf("infos (-want +got):\n%s", diff)
	}
	if !strings.Contains(text.String(), "theorem=a1i") {
		t.Errorf("log = %q", text)
	}
}
