package main

import (
	"flag"
	"fmt"
	"log"

	"api-template/internal/config"
)

func main() {
	var output string
	flag.StringVar(&output, "output", ".env.template", "Output file path")
	flag.StringVar(&output, "o", ".env.template", "Output file path (shorthand)")
	flag.Parse()

	if err := config.GenerateEnvTemplate(output); err != nil {
		log.Fatalf("Failed to generate env template: %v", err)
	}

	fmt.Printf("ENV template file generated at: %s\n", output)
}
