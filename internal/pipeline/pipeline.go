// Package pipeline runs one full generation pass: discover documents, resolve
// categories, render every configured artifact and write the changed ones.
package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/paperforge/internal/category"
	"git.home.luguber.info/inful/paperforge/internal/lathe"
	"git.home.luguber.info/inful/paperforge/internal/logfields"
	"git.home.luguber.info/inful/paperforge/internal/output"
	"git.home.luguber.info/inful/paperforge/internal/paper"
	"git.home.luguber.info/inful/paperforge/internal/render"
)

// Config selects the artifacts of one generation run. Artifact paths left
// empty are skipped, so the render and lathe commands share one pipeline.
type Config struct {
	DocsDir string

	CatalogPath            string
	MetadataPath           string
	PrototypesPath         string
	RecipesPath            string
	PackPath               string
	CategoryCatalogPath    string
	CategoryPrototypesPath string

	CategoryConfigPath string
	RecipeCategoryIDs  map[string]string
	Materials          []lathe.Material
	RecipeTime         int
	PackID             string
	HideSpawnMenu      bool
	ApplyDiscount      bool
}

// Result summarizes one generation run.
type Result struct {
	Documents int
	Written   []string // paths whose content changed
	Skipped   []string // paths already up to date
}

// Run executes a single generation pass. Allocator and category state live
// only within this call; re-running on unchanged input writes nothing.
func Run(cfg Config) (*Result, error) {
	runID := uuid.NewString()
	slog.Debug("Starting generation run", logfields.RunID(runID), logfields.DocsDir(cfg.DocsDir))

	documents, err := paper.NewDiscovery(cfg.DocsDir).Discover()
	if err != nil {
		return nil, err
	}

	overrides, err := category.LoadOverrides(cfg.CategoryConfigPath)
	if err != nil {
		return nil, err
	}
	categories := category.BuildInfos(documents, overrides)

	recipeOpts := lathe.RecipeOptions{
		CategoryIDs:           cfg.RecipeCategoryIDs,
		CompleteTime:          cfg.RecipeTime,
		Materials:             cfg.Materials,
		ApplyMaterialDiscount: cfg.ApplyDiscount,
	}
	if recipeOpts.CompleteTime == 0 {
		recipeOpts.CompleteTime = 2
	}
	if recipeOpts.Materials == nil {
		recipeOpts.Materials = lathe.DefaultMaterials()
	}
	packID := cfg.PackID
	if packID == "" {
		packID = "StarlightDocsAuto"
	}

	artifacts := []struct {
		path    string
		content func() string
	}{
		{cfg.CatalogPath, func() string { return render.Catalog(documents) }},
		{cfg.MetadataPath, func() string { return render.DocumentsMetadata(documents) }},
		{cfg.PrototypesPath, func() string { return lathe.Prototypes(documents, categories, cfg.HideSpawnMenu) }},
		{cfg.RecipesPath, func() string { return lathe.Recipes(documents, categories, recipeOpts) }},
		{cfg.PackPath, func() string { return lathe.RecipePack(documents, categories, packID) }},
		{cfg.CategoryCatalogPath, func() string { return lathe.CategoryCatalog(categories) }},
		{cfg.CategoryPrototypesPath, func() string { return lathe.CategoryPrototypes(categories) }},
	}

	result := &Result{Documents: len(documents)}
	for _, artifact := range artifacts {
		if artifact.path == "" {
			continue
		}
		changed, err := output.WriteIfChanged(artifact.path, artifact.content())
		if err != nil {
			return nil, err
		}
		if changed {
			slog.Debug("Artifact updated", logfields.RunID(runID), logfields.Artifact(artifact.path))
			result.Written = append(result.Written, artifact.path)
		} else {
			result.Skipped = append(result.Skipped, artifact.path)
		}
	}

	slog.Info("Generation run finished",
		logfields.RunID(runID),
		logfields.Documents(result.Documents),
		logfields.Written(len(result.Written)))
	return result, nil
}
