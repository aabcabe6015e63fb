package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
	}{
		{
			name:  "logrus line with fields",
			input: `time="2026-10-16T09:00:00Z" level=warning msg="catalog request failed" source=books kind=transport error="dial tcp: refused"`,
			want: Entry{
				Time:    "2026-10-16T09:00:00Z",
				Level:   "warning",
				Message: "catalog request failed",
				Fields: []Field{
					{Key: "source", Value: "books"},
					{Key: "kind", Value: "transport"},
					{Key: "error", Value: "dial tcp: refused"},
				},
			},
		},
		{
			name:  "escaped quote in message",
			input: `time=now level=info msg="said \"hi\""`,
			want:  Entry{Time: "now", Level: "info", Message: `said "hi"`},
		},
		{
			name:  "plain text line",
			input: "  panic: something odd  ",
			want:  Entry{Message: "panic: something odd"},
		},
		{
			name:  "pairs without level",
			input: "a=b c=d",
			want:  Entry{Message: "a=b c=d"},
		},
		{
			name:  "unterminated quote",
			input: `level=info msg="oops`,
			want:  Entry{Message: `level=info msg="oops`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			tt.want.Raw = tt.input
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParse_LogrusEscapes(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.WithField("source", "books").
		WithError(errors.New("line1\nline2\ttab")).
		Warn("catalog request failed")

	line := strings.TrimRight(buf.String(), "\n")
	if strings.Contains(line, "\n") {
		t.Fatalf("formatter wrote a raw newline: %q", line)
	}

	got := Parse(line)
	if got.Level != "warning" || got.Message != "catalog request failed" {
		t.Fatalf("Parse() = %#v", got)
	}
	want := map[string]string{"source": "books", "error": "line1\nline2\ttab"}
	for _, f := range got.Fields {
		if w, ok := want[f.Key]; ok {
			if f.Value != w {
				t.Errorf("field %s = %q, want %q", f.Key, f.Value, w)
			}
			delete(want, f.Key)
		}
	}
	if len(want) != 0 {
		t.Errorf("missing fields: %v", want)
	}
}

func TestParseAll_KeepsOrder(t *testing.T) {
	got := ParseAll([]string{"level=info msg=one", "level=error msg=two"})
	if len(got) != 2 || got[0].Message != "one" || got[1].Level != "error" {
		t.Fatalf("ParseAll = %#v", got)
	}
}
