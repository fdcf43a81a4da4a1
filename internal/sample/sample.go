// Package sample reads trailing lines from a log file to feed format
// detection. A ring buffer keeps memory bounded by the sample size rather
// than the file size.
package sample

import (
	"bufio"
	"fmt"
	"os"
)

// LastLines returns at most max lines from the end of the file at path, in
// file order. A non-positive max returns every line.
func LastLines(path string, max int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if max <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read sample file: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, max)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % max
		if count < max {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sample file: %w", err)
	}

	lines := make([]string, count)
	if count == max {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%max]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
