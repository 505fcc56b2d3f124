package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/employees-api/internal/database"
	"github.com/deppfellow/employees-api/internal/lib/utils"
	"github.com/deppfellow/employees-api/internal/repository"
	"github.com/deppfellow/employees-api/internal/seed"
)

func newSeedCommand() *cobra.Command {
	var (
		random    int
		printJSON bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if random < 0 {
				return fmt.Errorf("--random must not be negative, got %d", random)
			}

			a, err := setup()
			if err != nil {
				return err
			}
			defer a.loggerService.Shutdown()

			db, err := database.New(a.cfg, &a.log, a.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			created, err := seed.Run(cmd.Context(), repository.NewEmployeeRepository(db.Pool), random)
			if err != nil {
				return err
			}

			a.log.Info().Int("employees", len(created)).Msg("database seeded")

			if printJSON {
				return utils.PrintJSON(cmd.OutOrStdout(), created)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&random, "random", 0, "number of additional employees with generated data")
	cmd.Flags().BoolVar(&printJSON, "print", false, "print the created employees as JSON")

	return cmd
}
