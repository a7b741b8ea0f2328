package main

import (
	"encoding/json"
	"strings"

	"github.com/shubh-37/website-section-generator/internal/agents"
	"github.com/shubh-37/website-section-generator/internal/models"
	"github.com/spf13/cobra"
)

type classifyOutput struct {
	Idea     string                   `json:"idea"`
	Bucket   agents.Bucket            `json:"bucket"`
	Sections []models.SectionTemplate `json:"sections"`
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify <idea...>",
		Short:   "Print the bucket and section templates for an idea",
		Example: `  sitegen classify Landing page for bakery`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idea := strings.Join(args, " ")
			generator := agents.NewContentGeneratorAgent(agents.NewCategorizerAgent())
			bucket, templates := generator.GenerateSections(idea)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(classifyOutput{
				Idea:     idea,
				Bucket:   bucket,
				Sections: templates,
			})
		},
	}
}
