package model

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineContext is a window around one line of the input file, used when
// showing the rows behind a violation.
type LineContext struct {
	Before     []string // up to two lines preceding the target
	Target     string   // the line itself
	After      []string // up to two lines following the target
	LineNumber int
	ErrorMsg   string // set if the file could not be read
}

// GetLineContext re-reads the input file and returns the named line with
// surrounding context. Schedule files are small, so a full read is fine.
func GetLineContext(filePath string, lineNumber int) LineContext {
	result := LineContext{LineNumber: lineNumber}

	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			filePath = strings.Replace(filePath, "~", home, 1)
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read file: %v", err)
		return result
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		result.ErrorMsg = fmt.Sprintf("Error reading file: %v", err)
		return result
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	idx := lineNumber - 1
	result.Target = lines[idx]
	lo := idx - 2
	if lo < 0 {
		lo = 0
	}
	result.Before = lines[lo:idx]
	hi := idx + 3
	if hi > len(lines) {
		hi = len(lines)
	}
	result.After = lines[idx+1 : hi]
	return result
}
