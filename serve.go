package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve single-player games over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if p, _ := cmd.Flags().GetString("port"); cmd.Flags().Changed("port") {
				cfg.Port = p
			}
			wl, err := loadWords(cfg)
			if err != nil {
				return err
			}
			a, g := wl.Stats()
			log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

			srv := httpserver.New(store.NewMemoryStore(), wl, httpserver.Options{
				MaxAttempts: cfg.MaxAttempts,
				DailySalt:   cfg.DailySalt,
			})
			return srv.Run(cmd.Context(), ":"+cfg.Port)
		},
	}
	cmd.Flags().String("port", "", "listen port; overrides PORT")
	return cmd
}
