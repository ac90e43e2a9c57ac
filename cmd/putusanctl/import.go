package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/internal/repository"
	"github.com/jengzang/putusan-backend-go/internal/service"
)

func newImportCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import extracted judgments from a JSON file",
		Long: `Reads a JSON array of judgment records and inserts every record whose
nomor_putusan is not stored yet. The whole file is imported in one
transaction; a single invalid record aborts the import.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			records, err := readRecords(f)
			if err != nil {
				return err
			}

			db, dialect, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			svc := service.NewJudgmentService(repository.NewJudgmentRepository(db, dialect), nil, a.logger)
			result, err := svc.Import(cmd.Context(), records)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d, skipped %d\n", result.Inserted, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with an array of judgment records")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readRecords decodes a JSON array of import records, rejecting unknown fields
func readRecords(r io.Reader) ([]models.ImportRecord, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []models.ImportRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}
