package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-imsto/imconv/convert"
)

// Status is the one-line text for a status bar once a job has ended.
func Status(sum *convert.Summary, err error) string {
	switch {
	case errors.Is(err, convert.ErrNoImages):
		return "No image files found"
	case convert.KindOf(err) == convert.InputError:
		return "✗ " + err.Error()
	case sum == nil:
		return "Ready to convert images"
	case sum.Canceled:
		return fmt.Sprintf("Batch canceled: %d of %d processed", sum.Done(), sum.Total)
	case sum.Total == 1 && len(sum.Items) == 1:
		return sum.Items[0].String()
	}
	return fmt.Sprintf("✓ Batch complete: %d successful, %d failed", sum.Succeeded, sum.Failed)
}

// Report is the multi-line summary shown when a batch finishes.
// outDir is where the files went, for display only.
func Report(sum *convert.Summary, outDir string) string {
	var sb strings.Builder
	sb.WriteString("Batch Conversion Complete!\n\n")
	fmt.Fprintf(&sb, "✓ Successful: %d/%d\n", sum.Succeeded, sum.Total)
	fmt.Fprintf(&sb, "✗ Failed: %d/%d\n", sum.Failed, sum.Total)
	if sum.Canceled {
		fmt.Fprintf(&sb, "Canceled after %d item(s)\n", sum.Done())
	}
	if outDir != "" {
		fmt.Fprintf(&sb, "\nFiles saved to:\n%s", outDir)
	}
	return sb.String()
}
