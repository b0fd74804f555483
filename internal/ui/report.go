package ui

import (
	"fmt"
	"io"
)

// PrintSelected echoes the chosen menu entry
func PrintSelected(w io.Writer, label string) {
	fmt.Fprintf(w, "You selected: %s\n", AccentStyle.Render(label))
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, SuccessStyle.Render(message))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: "+message))
}
