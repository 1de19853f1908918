// Package main provides the export command that dumps a WordPress database
// to static-site markdown files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"wp2md/internal/config"
	"wp2md/internal/export"
	"wp2md/internal/logger"
	"wp2md/internal/store"
)

func main() {
	// 1. Configuration
	// ----------------
	configFile := flag.String("config", "", "Path to YAML configuration file (replaces positional arguments)")
	flag.Parse()

	var cfg *config.Config

	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}
	} else {
		args := flag.Args()

		// Fewer than five arguments prints usage and exits zero, matching
		// the historical behavior of this tool
		if len(args) < 5 {
			fmt.Printf("USAGE: %s db host username password posts_dir pages_dir\n", os.Args[0])

			return
		}

		if len(args) < 6 {
			log.Fatalf("❌ Missing pages_dir argument\n")
		}

		cfg = config.New(args[0], args[1], args[2], args[3], args[4], args[5])
	}

	lg := logger.NewLogger(cfg.Logging.Level)

	lg.Info("🚀 Starting WordPress Export")
	lg.Info(fmt.Sprintf("📍 Source: %s", cfg.String()))

	// 2. Extraction (Database)
	// ------------------------
	lg.Info("Phase 1: Connecting to database...")

	startTime := time.Now()

	st, err := store.Open("mysql", cfg.DSN())
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v\n", err)
	}
	defer st.Close()

	lg.Info(fmt.Sprintf("✅ Connected in %v", time.Since(startTime)))

	// 3. Conversion (Export)
	// ----------------------
	lg.Info("Phase 2: Exporting posts and pages...")

	exportStart := time.Now()

	exporter := export.NewExporter(st, cfg, lg)

	stats, err := exporter.Run()
	if err != nil {
		log.Fatalf("❌ Export failed: %v\n", err)
	}

	lg.Info(fmt.Sprintf("✅ Exported %d posts and %d pages in %v",
		stats.Posts, stats.Pages, time.Since(exportStart)))

	// 4. Final Report
	// ---------------
	lg.Info("✨ Export Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Posts Written: %d (%s)\n", stats.Posts, cfg.Output.PostsDir)
	fmt.Printf("Pages Written: %d (%s)\n", stats.Pages, cfg.Output.PagesDir)
	fmt.Printf("Rows Skipped:  %d\n", stats.Skipped)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))

	if stats.Fallbacks > 0 {
		fmt.Printf("⚠️  Generated fallback names: %d (see warnings above)\n", stats.Fallbacks)
	}

	fmt.Println("------------------------------------------------")
}
