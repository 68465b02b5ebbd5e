package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sitegen/internal/core/domain"
	"github.com/kamal-hamza/sitegen/internal/core/services"
	"github.com/kamal-hamza/sitegen/pkg/ui"
)

var (
	usecaseID              string
	usecasePrompt          string
	usecaseDescription     string
	usecaseVideoTitle      string
	usecaseReplayURL       string
	usecaseUploadDate      string
	usecaseKeywords        string
	usecaseMetaDescription string
	usecaseOutputDir       string
	usecaseFeatured        bool
	usecaseInteractive     bool
	usecaseCopy            bool
)

// usecaseCmd represents the usecase command
var usecaseCmd = &cobra.Command{
	Use:   "usecase [title]",
	Short: "Create a new usecase gallery entry",
	Long: `Create a new usecase JSON file for the gallery.

The id defaults to the snake_case title and every asset path is derived
from it. The file is written to <output-dir>/<id>.json.

Examples:
  sitegen usecase "Quarterly Report"
  sitegen usecase "Invoice Triage" --featured --keywords finance,automation
  sitegen usecase "Lead Scoring" --upload-date 2025-01-15 --replay-url https://example.com/r/42`,
	Args: titleArgs,
	RunE: runUsecase,
}

func init() {
	usecaseCmd.Flags().StringVar(&usecaseID, "id", "", "Custom ID (defaults to snake_case version of title)")
	usecaseCmd.Flags().StringVar(&usecasePrompt, "prompt", "", "Short prompt description for card display (50-100 chars)")
	usecaseCmd.Flags().StringVar(&usecaseDescription, "description", "", "Full detailed description")
	usecaseCmd.Flags().StringVar(&usecaseVideoTitle, "video-title", "", "Demo video title (defaults to 'Demo: <title>')")
	usecaseCmd.Flags().StringVar(&usecaseReplayURL, "replay-url", "", "Replay URL for the recorded run")
	usecaseCmd.Flags().StringVar(&usecaseUploadDate, "upload-date", "", "Upload date YYYY-MM-DD (defaults to today)")
	usecaseCmd.Flags().StringVar(&usecaseKeywords, "keywords", "", "Comma-separated keywords (e.g., 'finance,reporting,automation'); empty entries are dropped")
	usecaseCmd.Flags().StringVar(&usecaseMetaDescription, "meta-description", "", "SEO meta description (150-160 characters)")
	usecaseCmd.Flags().StringVar(&usecaseOutputDir, "output-dir", "", "Output directory (defaults to current directory)")
	usecaseCmd.Flags().BoolVar(&usecaseFeatured, "featured", false, "Mark usecase as featured")
	usecaseCmd.Flags().BoolVarP(&usecaseInteractive, "interactive", "i", false, "Prompt for the title when it is not given")
	usecaseCmd.Flags().BoolVar(&usecaseCopy, "copy", false, "Copy the usecase URL to the clipboard")
}

func runUsecase(cmd *cobra.Command, args []string) error {
	title, err := resolveTitle(args, usecaseInteractive, "Usecase title")
	if err != nil {
		return err
	}

	req := services.CreateUsecaseRequest{
		UsecaseOptions: domain.UsecaseOptions{
			Title:           title,
			ID:              usecaseID,
			Prompt:          usecasePrompt,
			Description:     usecaseDescription,
			VideoTitle:      usecaseVideoTitle,
			ReplayURL:       usecaseReplayURL,
			UploadDate:      usecaseUploadDate,
			Keywords:        usecaseKeywords,
			MetaDescription: usecaseMetaDescription,
			Featured:        usecaseFeatured,
		},
		OutputDir: firstNonEmpty(usecaseOutputDir, appConfig.UsecaseOutputDir),
	}

	resp, err := createUsecaseService.Execute(getContext(), req)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatError("Failed to create usecase"))
		return err
	}

	out := cmd.OutOrStdout()
	if resp.Replaced {
		fmt.Fprintln(out, ui.FormatWarning("Overwrote existing "+resp.FilePath))
	}
	printSummary(out, "Usecase JSON created: "+resp.FilePath, [][2]string{
		{iconTitle + " Title", resp.Usecase.Title},
		{iconID + " ID", resp.Usecase.ID},
		{iconURL + " URL", resp.URL},
	}, resp.NextSteps)

	if usecaseCopy {
		copyToClipboard(out, resp.URL)
	}

	return nil
}
