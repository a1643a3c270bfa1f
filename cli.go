package sleap

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// GetTerminalSize returns the terminal width and height of whichever of
// stdout, stdin, or stderr is attached to a terminal, trying each in
// that order, falling back to (80, 24) when none is.
func GetTerminalSize() (width, height int) {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stdin.Fd(), os.Stderr.Fd()} {
		if w, h, err := term.GetSize(int(fd)); err == nil {
			return w, h
		}
	}
	return 80, 24
}

// PrintUsage writes fs's flag usage to w, preceded by a one-line banner
// naming the flags' purpose and the detected terminal width. The flag
// lines are printed as fs.PrintDefaults formats them; they are not
// wrapped to that width. Intended as the FlagSet.Usage hook for a
// tracker CLI.
func PrintUsage(fs *flag.FlagSet, w io.Writer) {
	width, _ := GetTerminalSize()
	fmt.Fprintf(w, "tracker options (terminal width %d):\n", width)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
