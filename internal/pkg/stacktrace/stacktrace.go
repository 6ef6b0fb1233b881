// Package stacktrace trims raw goroutine dumps down to the frames that belong
// to this module.
package stacktrace

import (
	"bufio"
	"bytes"
	"strings"
)

const marker = "/internal/"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" locations found
// in a raw stack trace such as the one produced by runtime/debug.Stack.
func InternalPaths(stack []byte) []string {
	var paths []string

	sc := bufio.NewScanner(bytes.NewReader(stack))
	for sc.Scan() {
		if p, ok := location(strings.TrimSpace(sc.Text())); ok {
			paths = append(paths, p)
		}
	}

	return paths
}

func location(line string) (string, bool) {
	idx := strings.Index(line, ".go:")
	if idx == -1 {
		return "", false
	}

	loc := line
	if sp := strings.IndexByte(line[idx:], ' '); sp != -1 {
		loc = line[:idx+sp]
	}

	at := strings.Index(loc, marker)
	if at == -1 {
		return "", false
	}

	return loc[at+1:], true
}
