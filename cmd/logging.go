package cmd

import (
	"bytes"
	"io"
	"strings"
)

var levels = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

var tags = []struct {
	tag   []byte
	level int
}{
	{[]byte("[DEBUG]"), 0},
	{[]byte("[INFO]"), 1},
	{[]byte("[WARN]"), 2},
	{[]byte("[ERROR]"), 3},
}

// levelWriter drops log lines whose [LEVEL] tag is below the minimum.
// Untagged lines are always written.
type levelWriter struct {
	out io.Writer
	min int
}

func newLevelWriter(out io.Writer, level string) *levelWriter {
	min, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		min = levels["info"]
	}
	return &levelWriter{out: out, min: min}
}

func (w *levelWriter) Write(p []byte) (int, error) {
	for _, t := range tags {
		if bytes.Contains(p, t.tag) {
			if t.level < w.min {
				return len(p), nil
			}
			break
		}
	}
	return w.out.Write(p)
}
