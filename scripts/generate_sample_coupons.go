//go:build ignore

package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSampleCoupons creates sample coupon tables for COUPON_SOURCE=file.
// Load them in order with
//
//	COUPON_FILES=data/coupons/base.txt.gz,data/coupons/seasonal.txt.gz
//
// Codes in seasonal.txt.gz override the same codes in base.txt.gz.
func main() {
	dataDir := "data/coupons"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	files := []struct {
		name  string
		lines []string
	}{
		{
			name: "base.txt.gz",
			lines: []string{
				"# code,discount",
				"SAVE10,0.1",
				"SAVE20,0.2",
				"WELCOME5,0.05",
				"SUMMER2024,0.15",
			},
		},
		{
			name: "seasonal.txt.gz",
			lines: []string{
				"# overrides base.txt.gz",
				"SUMMER2024,0.25",
				"WINTER2024,0.3",
				"",
				"HOLIDAY,0.2",
			},
		},
	}

	for _, f := range files {
		filePath := filepath.Join(dataDir, f.name)

		if err := createCouponFile(filePath, f.lines); err != nil {
			log.Fatalf("Failed to create %s: %v", f.name, err)
		}

		fmt.Printf("Created %s with %d lines\n", filePath, len(f.lines))
	}

	fmt.Println("\nSample coupon files created successfully!")
	fmt.Println("\nEffective table when loaded base then seasonal:")
	fmt.Println("  - SAVE10     0.1")
	fmt.Println("  - SAVE20     0.2")
	fmt.Println("  - WELCOME5   0.05")
	fmt.Println("  - SUMMER2024 0.25 (seasonal overrides base)")
	fmt.Println("  - WINTER2024 0.3")
	fmt.Println("  - HOLIDAY    0.2")
}

func createCouponFile(filePath string, lines []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintf(gzipWriter, "%s\n", line); err != nil {
			return fmt.Errorf("failed to write coupon: %w", err)
		}
	}

	return nil
}
