package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorStyle = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	iceStyle   = pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
	gutterText = pterm.NewStyle(pterm.FgGray)
	caretStyle = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	iceCaret   = pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
)

// displayICE displays an internal compiler error message with no associated
// source span: the invariant that failed wasn't anchored to a particular
// AST node.
func displayICE(message string) {
	fmt.Println(iceStyle.Sprint("internal compiler error:"), message)
	fmt.Println("this is a bug in the compiler, not in the compiled source")
}

// displayICEAt displays an internal compiler error anchored to the span of
// the AST node whose invariant failed, reusing the same caret display as a
// compile error but in the ICE severity's own color so the two are never
// mistaken for one another at a glance.
func displayICEAt(absPath, reprPath string, span *TextSpan, message string) {
	if span == nil {
		displayICE(message)
		return
	}

	fmt.Printf("%s:%d:%d: %s\n", reprPath, span.StartLine+1, span.StartCol+1, iceStyle.Sprint("internal compiler error:")+" "+message)
	displaySourceText(absPath, span, iceCaret)
	fmt.Println("this is a bug in the compiler, not in the compiled source")
}

// displayFatal displays a fatal error message with no associated source.
func displayFatal(message string) {
	fmt.Println(errorStyle.Sprint("fatal error:"), message)
}

// displayCompileMessage displays a fatal compilation error anchored to a
// source file. label is the string to prefix the message with, e.g. "error".
func displayCompileMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	if span == nil {
		fmt.Printf("%s: %s\n", reprPath, errorStyle.Sprint(label+":")+" "+message)
	} else {
		fmt.Printf("%s:%d:%d: %s\n", reprPath, span.StartLine+1, span.StartCol+1, errorStyle.Sprint(label+":")+" "+message)
		displaySourceText(absPath, span, caretStyle)
	}
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text
// span, with a caret-underline row beneath each line of source. caret
// selects the style of the underline (and, by extension, the severity it
// belongs to — a fatal error and an internal compiler error never share
// a caret color).
func displaySourceText(absPath string, span *TextSpan, caret *pterm.Style) {
	file, err := os.Open(absPath)
	if err != nil {
		displayICE(fmt.Sprintf("failed to open file %s for reporting: %s", absPath, err))
		os.Exit(2)
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if err := sc.Err(); err != nil {
		displayICE(fmt.Sprintf("failed to read file %s for reporting: %s", absPath, err))
		os.Exit(2)
	}

	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Print(gutterText.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Println(line[minIndent:])

		fmt.Print(gutterText.Sprint(strings.Repeat(" ", maxLineNumLen) + " | "))

		// For every line but the first, underlining continues from the
		// previous line, so the prefix is zero. For the first line, it's
		// the start column minus the trimmed indent.
		var carretPrefixCount int
		if i == 0 {
			carretPrefixCount = span.StartCol - minIndent
		}

		// For every line but the last, underlining runs to the end of the
		// line. For the last line, it stops at the span's end column.
		var carretSuffixCount int
		if i == len(lines)-1 {
			carretSuffixCount = len(line) - span.EndCol
		}

		fmt.Print(strings.Repeat(" ", carretPrefixCount))
		fmt.Println(caret.Sprint(strings.Repeat("^", len(line)-carretSuffixCount-carretPrefixCount-minIndent)))
	}

	fmt.Println()
}
