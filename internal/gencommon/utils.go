package gencommon

import (
	"io"

	"github.com/fatih/color"
)

// ShouldRegenerate checks if the output needs regeneration based on cache
func ShouldRegenerate(cache *GenerationCache, fingerprint, outputPath string, force bool) bool {
	if force || cache == nil {
		return true
	}
	return cache.Changed(fingerprint, outputPath)
}

// PrintSkipMessage prints a skip message for an unchanged output
func PrintSkipMessage(w io.Writer, outputPath string) {
	color.New(color.FgYellow).Fprintf(w, "⏭️  Skipping %s (schema and config unchanged)\n", outputPath)
}

// PrintGenerateMessage prints a generation message
func PrintGenerateMessage(w io.Writer, outputPath string) {
	color.New(color.FgCyan).Fprintf(w, "🔄 Generating %s\n", outputPath)
}
