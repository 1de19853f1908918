// Package main provides the validate command-line tool for checking the
// structure of an export tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"wp2md/internal/validator"
	"wp2md/pkg/utils"
)

func main() {
	targetPath := flag.String("path", ".", "Path to file or directory to validate")
	flag.Parse()

	fmt.Printf("📂 Scanning path: %s\n\n", *targetPath)

	v := validator.NewExportValidator()

	count := 0
	invalid := 0
	warnings := 0

	err := filepath.Walk(*targetPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.ToLower(filepath.Ext(path)) != ".md" {
			return nil
		}

		count++

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}

		result := v.Validate(string(content))
		warnings += len(result.Warnings)

		if !result.IsValid {
			invalid++

			fmt.Printf("❌ %s\n", utils.Truncate(path, 100))
			result.PrintErrors()
		} else if len(result.Warnings) > 0 {
			fmt.Printf("⚠️  %s\n", utils.Truncate(path, 100))
			result.PrintWarnings()
		}

		return nil
	})

	if err != nil {
		log.Fatalf("❌ Error walking path: %v\n", err)
	}

	fmt.Println("\n----------------------------------------------------------------")
	fmt.Printf("📈 Summary:\n")
	fmt.Printf("  Scanned:  %d files\n", count)
	fmt.Printf("  Invalid:  %d\n", invalid)
	fmt.Printf("  Warnings: %d\n", warnings)

	if invalid > 0 {
		os.Exit(1)
	}

	fmt.Println("✅ All files valid")
}
