package renderer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "report.md")
	testContent := "# Ryzen vs Core\n\n| a | b |\n"

	err := WriteReport(testContent, testFile)
	if err != nil {
		t.Fatalf("Failed to write report: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(data))
	}
}

func TestWriteReportCreatesDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "reports", "2026", "report.json")

	err := WriteReport("{}", nestedPath)
	if err != nil {
		t.Fatalf("Failed to write report: %v", err)
	}

	_, err = os.Stat(nestedPath)
	if os.IsNotExist(err) {
		t.Error("Report file was not created in nested directory")
	}
}

func TestCleanupMarkdown(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "report.md")

	err := os.WriteFile(testFile, []byte("test"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = CleanupMarkdown(testFile)
	if err != nil {
		t.Fatalf("Failed to cleanup: %v", err)
	}

	_, err = os.Stat(testFile)
	if !os.IsNotExist(err) {
		t.Error("File was not deleted")
	}
}

func TestCleanupMarkdownNonexistent(t *testing.T) {
	err := CleanupMarkdown("/nonexistent/report.md")
	if err == nil {
		t.Error("Expected error cleaning up nonexistent file, got nil")
	}
}

func TestValidateFiles(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.md")

	err := os.WriteFile(existingFile, []byte("test"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = validateFiles(existingFile)
	if err != nil {
		t.Errorf("Expected no error for existing file, got %v", err)
	}

	err = validateFiles(existingFile, "/nonexistent/template.tex")
	if err == nil {
		t.Error("Expected error when one file doesn't exist, got nil")
	}
}

func TestRenderPDFMissingInput(t *testing.T) {
	ctx := context.Background()
	if checkPandocExists(ctx) != nil {
		t.Skip("Pandoc not installed, skipping test")
	}

	err := RenderPDF(ctx, "/nonexistent/report.md", filepath.Join(t.TempDir(), "report.pdf"), "")
	if err == nil {
		t.Error("Expected error for missing markdown input, got nil")
	}
}

func TestCheckPandocExists(t *testing.T) {
	// Passes when pandoc is installed, skips otherwise.
	err := checkPandocExists(context.Background())
	if err != nil {
		t.Skip("Pandoc not installed, skipping test")
	}
}

func TestStripEmoji(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dingbat in cell", "| ⚡ Bottleneck | 12.5% |", "| Bottleneck | 12.5% |"},
		{"variation selector", "| 🌡️ Temperatura Estimada |", "| Temperatura Estimada |"},
		{"status prefix", "✅ Balanceado", " Balanceado"},
		{"accents survive", "Confiança: 90%", "Confiança: 90%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripEmoji(tt.input)
			if got != tt.expected {
				t.Errorf("stripEmoji(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWriteIntermediate(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	path, err := writeIntermediate("| ⚡ Bottleneck | 12.5% |\n")
	if err != nil {
		t.Fatalf("Failed to write intermediate file: %v", err)
	}
	defer os.Remove(path)

	if filepath.Ext(path) != ".md" {
		t.Errorf("Expected .md intermediate, got %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read intermediate file: %v", err)
	}
	if string(content) != "| Bottleneck | 12.5% |\n" {
		t.Errorf("Expected emoji-free content, got %q", string(content))
	}
}

func TestExportPDFOutputNamedMarkdown(t *testing.T) {
	scratch := t.TempDir()
	t.Setenv("TMPDIR", scratch)

	outputPath := filepath.Join(t.TempDir(), "report.md")
	err := ExportPDF(context.Background(), "# Fortnite (1920x1080)\n", outputPath, "")

	// The intermediate file is removed whether or not pandoc succeeded.
	leftovers, readErr := os.ReadDir(scratch)
	if readErr != nil {
		t.Fatalf("Failed to read temp dir: %v", readErr)
	}
	if len(leftovers) != 0 {
		t.Errorf("Expected no intermediate files left, found %d", len(leftovers))
	}

	if err != nil {
		t.Skipf("PDF toolchain unavailable: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Expected PDF at %s: %v", outputPath, err)
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Error("Expected output file to hold the PDF, not the markdown source")
	}
}
