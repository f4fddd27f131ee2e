package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lavepeguesucesso-png/Lave1/internal/api"
	"github.com/lavepeguesucesso-png/Lave1/internal/config"
	"github.com/lavepeguesucesso-png/Lave1/internal/storage"
)

var serveNoHistory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Start the HTTP server backing the dashboard frontend. Uploaded
reports are parsed, summarized and (unless --no-history is set) stored
in the local sqlite database so past uploads can be compared.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoHistory, "no-history", false, "disable parse-run persistence")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	var store *storage.Database
	if !serveNoHistory {
		store, err = storage.NewDatabase(cfg.DatabasePath)
		if err != nil {
			return err
		}
	}

	app := api.NewServer(cfg, store).App()
	fmt.Printf("lave1 listening on :%d\n", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
