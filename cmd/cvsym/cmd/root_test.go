package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func skipCmd(skip uint32) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Uint32("skip", skip, "")
	return cmd
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "module.symbols")

	// 4-byte signature followed by a single scope end record
	data := []byte{4, 0, 0, 0, 2, 0, 6, 0}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write stream: %v", err)
	}

	table, err := loadTable(skipCmd(4), path)
	if err != nil {
		t.Fatalf("Failed to load stream: %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("Expected 4 bytes after the header, got %d", table.Len())
	}

	iter := table.Iter()
	if !iter.Next() {
		t.Fatalf("Expected one record, got none: %v", iter.Err())
	}
	if iter.Symbol().Index() != 0 {
		t.Errorf("Expected index 0 relative to the header, got %#x", uint32(iter.Symbol().Index()))
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := loadTable(skipCmd(0), filepath.Join(t.TempDir(), "nope.symbols"))
	if err == nil {
		t.Error("Expected error for missing stream file")
	}
}

func TestLoadTable_SkipPastEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.symbols")
	if err := os.WriteFile(path, []byte{1, 2}, 0600); err != nil {
		t.Fatalf("Failed to write stream: %v", err)
	}

	_, err := loadTable(skipCmd(4), path)
	if err == nil {
		t.Error("Expected error when the header is longer than the stream")
	}
}
