package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// RenderPDF converts a Markdown report to PDF with pandoc. templatePath is optional.
func RenderPDF(ctx context.Context, markdownPath, outputPath, templatePath string) (err error) {
	err = checkPandocExists(ctx)
	if err != nil {
		return err
	}

	inputs := []string{markdownPath}
	if templatePath != "" {
		inputs = append(inputs, templatePath)
	}
	err = validateFiles(inputs...)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	args := []string{
		"-f", "markdown",
		"-t", "pdf",
		"-o", outputPath,
		"-V", "geometry:margin=2cm",
	}
	if templatePath != "" {
		args = append(args, "--template", templatePath)
	}
	args = append(args, markdownPath)

	cmd := exec.CommandContext(ctx, "pandoc", args...)

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists(ctx context.Context) (err error) {
	cmd := exec.CommandContext(ctx, "pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to export PDF reports)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteReport writes a rendered report to outputPath, creating parent directories.
func WriteReport(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write report file: %s", outputPath)
		return err
	}

	return err
}

// ExportPDF converts markdown to a PDF at outputPath through a temporary Markdown file.
func ExportPDF(ctx context.Context, markdown, outputPath, templatePath string) (err error) {
	var markdownPath string
	markdownPath, err = writeIntermediate(markdown)
	if err != nil {
		return err
	}
	defer func() {
		cleanupErr := CleanupMarkdown(markdownPath)
		if err == nil {
			err = cleanupErr
		}
	}()

	err = RenderPDF(ctx, markdownPath, outputPath, templatePath)
	return err
}

// writeIntermediate stores the typesettable markdown in a fresh temp file, never at the output path.
func writeIntermediate(markdown string) (path string, err error) {
	var f *os.File
	f, err = os.CreateTemp("", "hwbench-report-*.md")
	if err != nil {
		err = errors.Wrap(err, "failed to create intermediate markdown file")
		return path, err
	}
	path = f.Name()

	_, err = f.WriteString(stripEmoji(markdown))
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		err = errors.Wrapf(err, "failed to write intermediate markdown file: %s", path)
		return path, err
	}

	err = f.Close()
	if err != nil {
		_ = os.Remove(path)
		err = errors.Wrapf(err, "failed to close intermediate markdown file: %s", path)
		return path, err
	}

	return path, err
}

// stripEmoji drops pictographs and variation selectors, which LaTeX can't typeset.
func stripEmoji(text string) (stripped string) {
	result := strings.Builder{}
	for _, r := range text {
		if r >= 0x1F300 && r <= 0x1F9FF { // Miscellaneous Symbols and Pictographs, Emoticons, etc.
			continue
		}
		if r >= 0x2600 && r <= 0x27BF { // Miscellaneous Symbols, Dingbats
			continue
		}
		if r == 0xFE0F {
			continue
		}
		result.WriteRune(r)
	}
	stripped = result.String()

	for strings.Contains(stripped, "  ") {
		stripped = strings.ReplaceAll(stripped, "  ", " ")
	}

	return stripped
}

// CleanupMarkdown removes intermediate markdown files after PDF generation.
func CleanupMarkdown(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove markdown file: %s", path)
			return err
		}
	}
	return err
}
