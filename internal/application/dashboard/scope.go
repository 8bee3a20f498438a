// Package dashboard implementa el motor de agregación del dashboard:
// resolución de alcance por rol, orquestación de las consultas de
// agregación y el armado de las estructuras anidadas de cada reporte.
package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// ResolveScope calcula el conjunto de instituciones visibles para el usuario:
// roles privilegiados ven todas las instituciones; un rol regular solo las
// instituciones donde tiene actividad de inventario. Un resultado vacío es
// válido (el usuario no ha inventariado nada) y corta las agregaciones
// posteriores.
//
// Un fallo de la consulta subyacente se propaga como error interno genérico,
// sin mensaje específico del reporte.
func ResolveScope(ctx context.Context, q repository.DashboardRepository, userID int64, role entity.Role) ([]int64, error) {
	var (
		ids []int64
		err error
	)
	if role.CanSeeAllInstitutions() {
		ids, err = q.AllInstitutionIDs(ctx)
	} else {
		ids, err = q.InstitutionIDsByTaker(ctx, userID)
	}
	if err != nil {
		return nil, domain.NewAppError(
			"Error interno del servidor",
			http.StatusInternalServerError,
			fmt.Errorf("resolver alcance de instituciones: %w", err),
		)
	}
	return ids, nil
}
