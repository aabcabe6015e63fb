package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logfmt/logfmt"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one logrus text-format line split into its fields.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []Field // remaining key=value pairs in file order
	Raw     string
}

// Field is a key=value pair that is not time, level or msg.
type Field struct {
	Key   string
	Value string
}

// Parse splits a `time=... level=... msg="..." k=v` line. Lines that are
// not in that format come back with only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	pairs, ok := splitPairs(line)
	if !ok {
		entry.Message = strings.TrimSpace(line)
		return entry
	}
	for _, p := range pairs {
		switch p.Key {
		case "time":
			entry.Time = p.Value
		case "level":
			entry.Level = p.Value
		case "msg":
			entry.Message = p.Value
		default:
			entry.Fields = append(entry.Fields, p)
		}
	}
	if entry.Level == "" {
		return Entry{Raw: line, Message: strings.TrimSpace(line)}
	}
	return entry
}

// ParseAll parses each line in order.
func ParseAll(lines []string) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		out = append(out, Parse(line))
	}
	return out
}

// splitPairs decodes one logfmt record. Quoted values are unescaped, so
// "\n" in a logged error comes back as a newline.
func splitPairs(line string) ([]Field, bool) {
	dec := logfmt.NewDecoder(strings.NewReader(line))
	var pairs []Field
	for dec.ScanRecord() {
		for dec.ScanKeyval() {
			pairs = append(pairs, Field{Key: string(dec.Key()), Value: string(dec.Value())})
		}
	}
	if dec.Err() != nil {
		return nil, false
	}
	return pairs, len(pairs) > 0
}
