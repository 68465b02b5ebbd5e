package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sitegen/internal/core/services"
	"github.com/kamal-hamza/sitegen/pkg/ui"
)

var checkStrict bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check generated posts and usecases",
	Long: `Read generated files back and report problems.

.json files are checked as usecase entries, everything else as blog posts.
Problems (missing title, bad dates, asset paths that no longer match the
slug or id) make the command fail. Placeholder copy that was never replaced
is reported as a warning, or as a problem with --strict.

Examples:
  sitegen check my-great-post.mdx
  sitegen check --strict public/usecase/posts/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat leftover placeholder text as a problem")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := getContext()

	table := ui.NewTable(
		ui.TableColumn{Header: "File"},
		ui.TableColumn{Header: "Kind", Width: 7},
		ui.TableColumn{Header: "Status", Width: 10},
	)

	var reports []*services.CheckReport
	failed := 0
	for _, path := range args {
		report, err := checkService.Execute(ctx, path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatError(err.Error()))
			table.AddRow(path, "-", "unreadable")
			failed++
			continue
		}
		if checkStrict {
			report.Problems = append(report.Problems, report.Warnings...)
			report.Warnings = nil
		}

		reports = append(reports, report)
		if !report.OK() {
			failed++
		}
		table.AddRow(path, string(report.Kind), checkStatus(report))
	}

	fmt.Fprint(out, table.Render())

	for _, r := range reports {
		if r.OK() && len(r.Warnings) == 0 {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.FormatBold(r.Path))
		for _, p := range r.Problems {
			fmt.Fprintln(out, "  "+ui.FormatError(p))
		}
		for _, w := range r.Warnings {
			fmt.Fprintln(out, "  "+ui.FormatWarning(w))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files have problems", failed, len(args))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("%d %s checked", len(args), plural(len(args), "file"))))
	return nil
}

func checkStatus(r *services.CheckReport) string {
	switch {
	case !r.OK():
		return fmt.Sprintf("%d %s", len(r.Problems), plural(len(r.Problems), "problem"))
	case len(r.Warnings) > 0:
		return fmt.Sprintf("%d %s", len(r.Warnings), plural(len(r.Warnings), "warning"))
	default:
		return "ok"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
