package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/adapters/persistence"
	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

// seedFile is the JSON layout accepted by `ladder seed --file`.
type seedFile struct {
	JobLevels []struct {
		ID                 string `json:"id"`
		Name               string `json:"name"`
		PrimaryTitle       string `json:"primary_title"`
		DescriptionSummary string `json:"description_summary"`
		TrajectoryNote     string `json:"trajectory_note,omitempty"`
	} `json:"job_levels"`
	Criteria []struct {
		ID          string `json:"id"`
		Category    string `json:"category"`
		SubCategory string `json:"sub_category"`
	} `json:"criteria"`
	Capabilities []struct {
		JobLevelID  string `json:"job_level_id"`
		CriterionID string `json:"criterion_id"`
		Description string `json:"description"`
	} `json:"capabilities"`
	EditHistory []struct {
		Date        string `json:"date"`
		Description string `json:"description"`
	} `json:"edit_history"`
	Overview struct {
		Goals      []string `json:"goals"`
		Principles []string `json:"principles"`
	} `json:"overview"`
}

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Bulk-load a complete matrix dataset",
		Long: `Load a full career matrix into the database in one pass.

Capability cross-references ("As L3, and ...") are resolved during the
load; the expanded text is what gets stored. Use --file for a JSON
dataset or --demo for the built-in example matrix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			demo, _ := cmd.Flags().GetBool("demo")

			if (file == "" && !demo) || (file != "" && demo) {
				return fmt.Errorf("specify exactly one of --file or --demo")
			}

			var data *primary.MatrixData
			if demo {
				data = persistence.DemoData()
			} else {
				var err error
				data, err = readSeedFile(file)
				if err != nil {
					return err
				}
			}

			if err := wire.SeedService().Seed(cmd.Context(), data); err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			fmt.Printf("✓ Loaded %d levels, %d criteria, %d capabilities\n",
				len(data.JobLevels), len(data.Criteria), len(data.Capabilities))
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "JSON dataset to load")
	cmd.Flags().Bool("demo", false, "Load the built-in example matrix")

	return cmd
}

func readSeedFile(path string) (*primary.MatrixData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	data := &primary.MatrixData{
		Overview: primary.Overview{
			Goals:      f.Overview.Goals,
			Principles: f.Overview.Principles,
		},
	}
	for _, l := range f.JobLevels {
		data.JobLevels = append(data.JobLevels, &primary.JobLevel{
			ID:                 l.ID,
			Name:               l.Name,
			PrimaryTitle:       l.PrimaryTitle,
			DescriptionSummary: l.DescriptionSummary,
			TrajectoryNote:     l.TrajectoryNote,
		})
	}
	for _, c := range f.Criteria {
		data.Criteria = append(data.Criteria, &primary.Criterion{
			ID:          c.ID,
			Category:    c.Category,
			SubCategory: c.SubCategory,
		})
	}
	for _, c := range f.Capabilities {
		data.Capabilities = append(data.Capabilities, &primary.Capability{
			JobLevelID:  c.JobLevelID,
			CriterionID: c.CriterionID,
			Description: c.Description,
		})
	}
	for _, e := range f.EditHistory {
		data.EditHistory = append(data.EditHistory, &primary.EditHistoryEntry{
			Date:        e.Date,
			Description: e.Description,
		})
	}

	return data, nil
}
