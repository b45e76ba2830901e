// Command reclassify re-runs the industry classifier over every brand in the
// emails table and rewrites stale labels. Manual cache entries are respected:
// a brand with a manual override is relabeled to the override, never past it.
//
// Usage:
//
//	reclassify [-config config.yaml] [-dry-run] [-rename-only]
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/brandcache"
	"github.com/mailprism/mailprism/internal/classify"
	"github.com/mailprism/mailprism/internal/config"
	"github.com/mailprism/mailprism/internal/repository/postgres"
	"github.com/mailprism/mailprism/internal/taxonomy"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report changes without writing them")
	renameOnly := flag.Bool("rename-only", false, "only migrate legacy industry names, skip reclassification")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("reclassify requires a configured database (DATABASE_URL)")
	}

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	emails := postgres.NewEmailRepo(db)

	renamed := migrateLegacyNames(ctx, emails, *dryRun)
	log.Printf("Legacy industry renames: %d row(s)", renamed)
	if *renameOnly {
		return
	}

	cache := brandcache.NewPostgresStore(db)
	if err := cache.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create cache schema: %v", err)
	}

	var aic ai.Classifier
	if cfg.Bedrock.Enabled {
		bedrock, err := ai.NewBedrockClassifier(ctx, cfg.Bedrock.Region, cfg.Bedrock.ModelID)
		if err != nil {
			log.Printf("Bedrock unavailable (%v), reclassifying deterministically", err)
		} else {
			aic = bedrock
		}
	}

	classifier := classify.NewIndustryClassifier(nil, cache, aic, classify.IndustryConfig{
		MinKeywordScore:   cfg.Classifier.MinKeywordScore,
		AmbiguityRatio:    cfg.Classifier.AmbiguityRatio,
		FuzzyMinSubstring: cfg.Classifier.FuzzyMinSubstring,
		SharedWordMinLen:  cfg.Classifier.SharedWordMinLen,
	})

	brands, err := emails.DistinctBrands(ctx)
	if err != nil {
		log.Fatalf("Failed to list brands: %v", err)
	}
	log.Printf("Reclassifying %d brand(s), dry_run=%v", len(brands), *dryRun)

	var updated, skipped int64
	for _, brand := range brands {
		label, ok := classifier.Classify(ctx, classify.Content{Brand: brand})
		if !ok {
			skipped++
			continue
		}
		if *dryRun {
			log.Printf("[dry-run] %s -> %s / %s (%.2f via %s)",
				brand, label.Industry, label.Subcategory, label.Confidence, label.Source)
			updated++
			continue
		}
		n, err := emails.RelabelBrand(ctx, brand,
			string(label.Industry), label.Subcategory, string(label.Source), label.Confidence)
		if err != nil {
			log.Printf("Relabel %q failed: %v", brand, err)
			continue
		}
		updated += n
	}

	log.Printf("Done: %d row(s) relabeled, %d brand(s) left unchanged", updated, skipped)
	if *dryRun {
		os.Exit(0)
	}
}

func migrateLegacyNames(ctx context.Context, emails *postgres.EmailRepo, dryRun bool) int64 {
	var total int64
	for oldName, newName := range taxonomy.LegacyIndustryRenames {
		if dryRun {
			log.Printf("[dry-run] would rename industry %q -> %q", oldName, newName)
			continue
		}
		n, err := emails.RenameIndustry(ctx, oldName, string(newName))
		if err != nil {
			log.Printf("Rename %q failed: %v", oldName, err)
			continue
		}
		total += n
	}
	return total
}
