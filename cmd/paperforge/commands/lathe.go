package commands

import (
	"fmt"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/lathe"
	"git.home.luguber.info/inful/paperforge/internal/pipeline"
)

// LatheCmd implements the 'lathe' command: entity prototypes, recipes, the
// recipe pack and category definitions.
type LatheCmd struct {
	DocsDir                       string   `name:"docs-dir" short:"d" default:"./docs" help:"Directory containing paperwork source documents"`
	PrototypesOutput              string   `name:"prototypes-output" default:"./dist/starlight/documents.yml" help:"Destination for generated PrintedDocument prototypes"`
	RecipesOutput                 string   `name:"recipes-output" default:"./dist/starlight/printer.yml" help:"Destination for generated printer lathe recipes"`
	PackOutput                    string   `name:"pack-output" default:"./dist/starlight/pack_docs.yml" help:"Destination for the generated lathe recipe pack"`
	LatheCategoriesOutput         string   `name:"lathe-categories-output" default:"./dist/starlight/lathe-categories.ftl" help:"Destination for generated lathe category localization entries"`
	LatheCategoryPrototypesOutput string   `name:"lathe-category-prototypes-output" default:"./dist/starlight/categories.yml" help:"Destination for generated lathe category prototypes"`
	CategoryConfig                string   `name:"category-config" help:"Optional JSON file mapping primary paperwork categories to output metadata"`
	LatheCategory                 []string `name:"lathe-category" placeholder:"CATEGORY=ID" help:"Override the lathe category id referenced by generated recipes for a paperwork category"`
	Material                      []string `name:"material" placeholder:"NAME=AMOUNT" help:"Add or override a lathe material requirement (defaults to SheetPrinter=100)"`
	RecipeTime                    int      `name:"recipe-time" default:"2" help:"Completion time for generated lathe recipes"`
	PackID                        string   `name:"pack-id" default:"StarlightDocsAuto" help:"Identifier for the generated lathe recipe pack"`
	ShowInSpawnMenu               bool     `name:"show-in-spawn-menu" help:"Do not hide generated prototypes from the spawn menu"`
	ApplyMaterialDiscount         bool     `name:"apply-material-discount" help:"Toggle applyMaterialDiscount for generated recipes"`
}

func (l *LatheCmd) Run(_ *Global) error {
	cfg, err := l.pipelineConfig()
	if err != nil {
		return err
	}
	result, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}
	printRunStatus(result)
	return nil
}

func (l *LatheCmd) pipelineConfig() (pipeline.Config, error) {
	categoryIDs, err := parseCategoryIDs(l.LatheCategory)
	if err != nil {
		return pipeline.Config{}, err
	}
	materials, err := parseMaterials(l.Material)
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		DocsDir:                l.DocsDir,
		PrototypesPath:         l.PrototypesOutput,
		RecipesPath:            l.RecipesOutput,
		PackPath:               l.PackOutput,
		CategoryCatalogPath:    l.LatheCategoriesOutput,
		CategoryPrototypesPath: l.LatheCategoryPrototypesOutput,
		CategoryConfigPath:     l.CategoryConfig,
		RecipeCategoryIDs:      categoryIDs,
		Materials:              materials,
		RecipeTime:             l.RecipeTime,
		PackID:                 l.PackID,
		HideSpawnMenu:          !l.ShowInSpawnMenu,
		ApplyDiscount:          l.ApplyMaterialDiscount,
	}, nil
}

func parseCategoryIDs(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	mapping := make(map[string]string, len(args))
	for _, arg := range args {
		name, id, ok := strings.Cut(arg, "=")
		name, id = strings.TrimSpace(name), strings.TrimSpace(id)
		if !ok || name == "" || id == "" {
			return nil, fmt.Errorf("%w: category override %q must use CATEGORY=ID", ErrInvalidFlag, arg)
		}
		mapping[name] = id
	}
	return mapping, nil
}

// parseMaterials parses NAME=AMOUNT pairs, preserving first-flag order; a
// repeated name keeps its position but takes the last amount.
func parseMaterials(args []string) ([]lathe.Material, error) {
	if len(args) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(args))
	materials := make([]lathe.Material, 0, len(args))
	for _, arg := range args {
		name, amountText, ok := strings.Cut(arg, "=")
		name, amountText = strings.TrimSpace(name), strings.TrimSpace(amountText)
		if !ok || name == "" || amountText == "" {
			return nil, fmt.Errorf("%w: material %q must use NAME=AMOUNT", ErrInvalidFlag, arg)
		}
		amount, err := strconv.Atoi(amountText)
		if err != nil {
			return nil, fmt.Errorf("%w: material amount for %q must be an integer, got %q",
				ErrInvalidFlag, name, amountText)
		}
		if at, seen := index[name]; seen {
			materials[at].Amount = amount
			continue
		}
		index[name] = len(materials)
		materials = append(materials, lathe.Material{Name: name, Amount: amount})
	}
	return materials, nil
}
