package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report to the terminal. If the terminal
// renderer cannot be built, the raw markdown is still perfectly readable.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
