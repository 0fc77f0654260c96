package main

import (
	"os"

	"github.com/kilianc/mdxc/pkg/mdx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Render a tree as static HTML",
	Long:  "Renders the content of a *.hast.json tree as HTML on stdout. Import, export and JSX blocks are omitted.",
	Args:  cobra.ExactArgs(1),
	RunE:  preview,
}

func preview(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	html, err := mdx.RenderHTML(b)
	if err != nil {
		return errors.Wrap(err, args[0])
	}
	_, err = cmd.OutOrStdout().Write(html)
	return err
}
