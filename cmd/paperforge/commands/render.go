package commands

import (
	"git.home.luguber.info/inful/paperforge/internal/pipeline"
)

// RenderCmd implements the 'render' command: the localization catalog and the
// document metadata index.
type RenderCmd struct {
	DocsDir         string `name:"docs-dir" short:"d" default:"./docs" help:"Directory containing paperwork source documents"`
	Output          string `short:"o" default:"./dist/doc-printer.ftl" help:"Destination for the generated localization catalog"`
	DocumentsOutput string `name:"documents-output" default:"./dist/documents.yml" help:"Destination for the generated document metadata"`
}

func (r *RenderCmd) Run(_ *Global) error {
	result, err := pipeline.Run(pipeline.Config{
		DocsDir:      r.DocsDir,
		CatalogPath:  r.Output,
		MetadataPath: r.DocumentsOutput,
	})
	if err != nil {
		return err
	}
	printRunStatus(result)
	return nil
}
