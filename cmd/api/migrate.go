package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mascotas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mascotas-api/pkg/config"
	"github.com/jhoicas/mascotas-api/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Administra el esquema de PostgreSQL",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			return migrateUp(cfg.DB, log)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Revierte migraciones (todas si no se indica steps)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("steps debe ser un entero positivo: %q", args[0])
				}
				steps = n
			}
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			return withMigrator(cfg.DB, func(m *postgres.Migrator) error {
				changed, err := m.Down(steps)
				if err != nil {
					return err
				}
				log.Info().Bool("changed", changed).Int("steps", steps).Msg("migraciones revertidas")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión actual del esquema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			return withMigrator(cfg.DB, func(m *postgres.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version=%d dirty=%t\n", v, dirty)
				return nil
			})
		},
	})
	return cmd
}

func migrateUp(cfg config.DBConfig, log *logger.Logger) error {
	return withMigrator(cfg, func(m *postgres.Migrator) error {
		changed, err := m.Up()
		if err != nil {
			return err
		}
		if changed {
			log.Info().Msg("migraciones aplicadas")
		} else {
			log.Info().Msg("esquema al día")
		}
		return nil
	})
}

func withMigrator(cfg config.DBConfig, fn func(*postgres.Migrator) error) error {
	if cfg.Driver != "postgres" {
		return fmt.Errorf("migraciones no aplican con STORAGE_DRIVER=%s", cfg.Driver)
	}
	m, err := postgres.NewMigrator(cfg.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
