package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/mascotas-api/migrations"
)

// Migrator aplica los scripts embebidos en el paquete migrations.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator abre la fuente iofs y la conexión de golang-migrate (driver postgres, vía lib/pq).
func NewMigrator(dsn string) (*Migrator, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("abrir migraciones embebidas: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, fmt.Errorf("crear migrador: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up aplica todas las migraciones pendientes. Devuelve false si la base ya estaba al día.
func (mg *Migrator) Up() (bool, error) {
	return applied(mg.m.Up())
}

// Down revierte steps migraciones; steps <= 0 revierte todas.
func (mg *Migrator) Down(steps int) (bool, error) {
	if steps <= 0 {
		return applied(mg.m.Down())
	}
	return applied(mg.m.Steps(-steps))
}

// Version devuelve la versión actual y si quedó en estado dirty.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close libera la fuente y la conexión.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func applied(err error) (bool, error) {
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ejecutar migraciones: %w", err)
	}
	return true, nil
}
