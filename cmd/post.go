package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sitegen/internal/core/domain"
	"github.com/kamal-hamza/sitegen/internal/core/services"
	"github.com/kamal-hamza/sitegen/pkg/ui"
)

var (
	postSlug         string
	postDate         string
	postSubtitle     string
	postAuthor       string
	postCategory     string
	postDescription  string
	postKeywords     string
	postOutputDir    string
	postFeatured     bool
	postPickCategory bool
	postInteractive  bool
	postCopy         bool
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:     "post [title]",
	Aliases: []string{"blog"},
	Short:   "Create a new blog post template",
	Long: `Create a new blog post file with frontmatter and a section skeleton.

The slug defaults to the hyphenated title and the date to today.
The file is written to <output-dir>/<slug>.mdx.

Examples:
  sitegen post "My Great Post"
  sitegen post "Launch Recap" --featured --category "Case Study"
  sitegen post "Deep Dive" --author "Jane Doe" --output-dir view/public/blog/posts`,
	Args: titleArgs,
	RunE: runPost,
}

func init() {
	postCmd.Flags().StringVar(&postSlug, "slug", "", "Custom URL slug (defaults to slugified title)")
	postCmd.Flags().StringVar(&postDate, "date", "", "Publication date YYYY-MM-DD (defaults to today)")
	postCmd.Flags().StringVar(&postSubtitle, "subtitle", "", "Post subtitle")
	postCmd.Flags().StringVar(&postAuthor, "author", "", "Author name")
	postCmd.Flags().StringVar(&postCategory, "category", "", "Post category (e.g., 'Tutorial', 'Case Study')")
	postCmd.Flags().StringVar(&postDescription, "description", "", "SEO description (150-160 characters)")
	postCmd.Flags().StringVar(&postKeywords, "keywords", "", "Comma-separated keywords; empty entries are dropped")
	postCmd.Flags().StringVar(&postOutputDir, "output-dir", "", "Output directory (defaults to current directory)")
	postCmd.Flags().BoolVar(&postFeatured, "featured", false, "Mark post as featured")
	postCmd.Flags().BoolVar(&postPickCategory, "pick-category", false, "Choose the category from the configured list")
	postCmd.Flags().BoolVarP(&postInteractive, "interactive", "i", false, "Prompt for the title when it is not given")
	postCmd.Flags().BoolVar(&postCopy, "copy", false, "Copy the post URL to the clipboard")
}

func runPost(cmd *cobra.Command, args []string) error {
	title, err := resolveTitle(args, postInteractive, "Blog post title")
	if err != nil {
		return err
	}

	category := postCategory
	if category == "" && postPickCategory {
		category, err = ui.PickOne("Category", appConfig.Categories)
		if err != nil {
			return err
		}
	}

	req := services.CreatePostRequest{
		PostOptions: domain.PostOptions{
			Title:       title,
			Slug:        postSlug,
			Date:        postDate,
			Subtitle:    postSubtitle,
			Author:      firstNonEmpty(postAuthor, appConfig.DefaultAuthor),
			Category:    category,
			Description: postDescription,
			Keywords:    postKeywords,
			Featured:    postFeatured,
		},
		OutputDir: firstNonEmpty(postOutputDir, appConfig.PostOutputDir),
	}

	resp, err := createPostService.Execute(getContext(), req)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatError("Failed to create post"))
		return err
	}

	out := cmd.OutOrStdout()
	if resp.Replaced {
		fmt.Fprintln(out, ui.FormatWarning("Overwrote existing "+resp.FilePath))
	}
	printSummary(out, "Blog post template created: "+resp.FilePath, [][2]string{
		{iconTitle + " Title", resp.Post.Title},
		{iconID + " URL slug", resp.Post.Slug},
		{iconURL + " URL", resp.URL},
	}, resp.NextSteps)

	if postCopy {
		copyToClipboard(out, resp.URL)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
