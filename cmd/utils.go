package cmd

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sitegen/pkg/ui"
)

// Summary icons
const (
	iconTitle     = "📝"
	iconID        = "🆔"
	iconURL       = "🔗"
	iconChecklist = "📋"
)

// titleArgs requires exactly one title, or at most one when --interactive is set
func titleArgs(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	if len(args) == 0 {
		return fmt.Errorf("requires a title argument (or --interactive)")
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// resolveTitle returns the positional title or prompts for one
func resolveTitle(args []string, interactive bool, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !interactive {
		return "", fmt.Errorf("requires a title argument")
	}
	return ui.Prompt(label, "")
}

// copyToClipboard copies text and reports the outcome without failing the command
func copyToClipboard(out io.Writer, text string) {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintln(out, ui.FormatWarning("Could not copy to clipboard: "+err.Error()))
		return
	}
	fmt.Fprintln(out, ui.FormatInfo("Copied "+text+" to clipboard"))
}

// printSummary writes the post-creation report: confirmation, key facts and next steps
func printSummary(out io.Writer, headline string, facts [][2]string, steps []string) {
	fmt.Fprintln(out, ui.FormatSuccess(headline))
	for _, f := range facts {
		fmt.Fprintln(out, ui.RenderKeyValue(f[0], f[1]))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatSection(iconChecklist, "Next steps"))
	fmt.Fprint(out, ui.RenderNumberedList(steps))
}
