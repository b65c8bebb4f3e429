package diagnostic

import (
	"fmt"
	"log"

	"github.com/fatih/color"
)

// ConsolePrinter collects diagnostic lines during one transform run and
// flushes them together, matching the donor's pattern of batching
// console output rather than logging inline mid-walk.
type ConsolePrinter struct {
	path  string
	lines []string
}

var printer *ConsolePrinter

// EnablePrinter turns on debug diagnostics for the file at path,
// wired to the `--debug` CLI flag.
func EnablePrinter(path string) {
	printer = &ConsolePrinter{path: path}
}

// Note records a non-fatal diagnostic line if the printer is enabled;
// it is a no-op otherwise.
func Note(format string, args ...any) {
	if printer == nil {
		return
	}
	printer.lines = append(printer.lines, red(fmtLine(format, args...)))
}

// ReportFailure records a TransformError's message, highlighted red,
// before the driver returns it as an error.
func ReportFailure(err *TransformError) {
	if printer == nil {
		printer = &ConsolePrinter{}
	}
	printer.lines = append(printer.lines, red(err.Error()))
}

// Flush logs every collected diagnostic line and clears the buffer.
func Flush() {
	if printer == nil {
		return
	}
	for _, line := range printer.lines {
		log.Println(line)
	}
	printer.lines = nil
}

func red(s string) string {
	return color.New(color.FgRed, color.Bold).Sprint(s)
}

func fmtLine(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
