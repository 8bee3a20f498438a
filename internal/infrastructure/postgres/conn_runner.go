package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SantosRojas/inventory-api/internal/application/dashboard"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// Asegura que DashboardRunner implementa dashboard.QueryRunner.
var _ dashboard.QueryRunner = (*DashboardRunner)(nil)

// DashboardRunner adquiere una conexión del pool por cada reporte del
// dashboard y la ata a un DashboardRepository para toda la secuencia de
// consultas de esa petición. La conexión se libera siempre, termine fn con
// éxito o con error.
type DashboardRunner struct {
	pool *pgxpool.Pool
}

// NewDashboardRunner construye el runner con el pool.
func NewDashboardRunner(pool *pgxpool.Pool) *DashboardRunner {
	return &DashboardRunner{pool: pool}
}

// Run adquiere la conexión, ejecuta fn y la devuelve al pool.
func (r *DashboardRunner) Run(ctx context.Context, fn func(q repository.DashboardRepository) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("adquirir conexión: %w", err)
	}
	defer conn.Release()

	return fn(NewDashboardRepository(conn))
}
