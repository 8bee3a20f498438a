package dashboard

import (
	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// Transformaciones puras de filas planas a estructuras anidadas.
// Preservan el orden de llegada de las filas: la clave de grupo se registra
// la primera vez que aparece y nunca se reordena aquí (el orden viene ya
// decidido por la consulta que produjo las filas).

// pivotModelsByInstitution convierte tripletas (institución, modelo, conteo)
// en una fila por institución con una clave dinámica por modelo más un total
// acumulado, y la lista de modelos distintos en orden de aparición.
func pivotModelsByInstitution(rows []repository.InstitutionModelCountRow) (models []string, data []map[string]any) {
	models = []string{}
	data = []map[string]any{}

	modelSeen := make(map[string]bool)
	instIndex := make(map[string]int)

	for _, row := range rows {
		if !modelSeen[row.ModelName] {
			modelSeen[row.ModelName] = true
			models = append(models, row.ModelName)
		}

		idx, ok := instIndex[row.InstitutionName]
		if !ok {
			idx = len(data)
			instIndex[row.InstitutionName] = idx
			data = append(data, map[string]any{
				"institutionName": row.InstitutionName,
				"total":           0,
			})
		}

		entry := data[idx]
		entry[row.ModelName] = row.Count
		entry["total"] = entry["total"].(int) + row.Count
	}
	return models, data
}

// groupProgressByInstitution agrupa filas (institución, servicio) en una
// lista por institución con los servicios anidados en orden de llegada.
func groupProgressByInstitution(rows []repository.ServiceProgressRow) []dto.InstitutionServicesProgressDTO {
	result := []dto.InstitutionServicesProgressDTO{}
	index := make(map[int64]int)

	for _, row := range rows {
		idx, ok := index[row.InstitutionID]
		if !ok {
			idx = len(result)
			index[row.InstitutionID] = idx
			result = append(result, dto.InstitutionServicesProgressDTO{
				InstitutionID:   row.InstitutionID,
				InstitutionName: row.InstitutionName,
				Services:        []dto.ServiceProgressDTO{},
			})
		}
		result[idx].Services = append(result[idx].Services, dto.ServiceProgressDTO{
			ServiceID:                row.ServiceID,
			ServiceName:              row.ServiceName,
			PumpsInventoriedThisYear: row.PumpsInventoriedThisYear,
			TotalPumps:               row.TotalPumps,
		})
	}
	return result
}

// groupStateByInstitution misma agrupación que el progreso, con el conteo de
// bombas inoperativas por servicio.
func groupStateByInstitution(rows []repository.ServiceStateRow) []dto.InstitutionServicesStateDTO {
	result := []dto.InstitutionServicesStateDTO{}
	index := make(map[int64]int)

	for _, row := range rows {
		idx, ok := index[row.InstitutionID]
		if !ok {
			idx = len(result)
			index[row.InstitutionID] = idx
			result = append(result, dto.InstitutionServicesStateDTO{
				InstitutionID:   row.InstitutionID,
				InstitutionName: row.InstitutionName,
				Services:        []dto.ServiceStateDTO{},
			})
		}
		result[idx].Services = append(result[idx].Services, dto.ServiceStateDTO{
			ServiceID:             row.ServiceID,
			ServiceName:           row.ServiceName,
			InoperativePumpsCount: row.InoperativePumpsCount,
			TotalPumps:            row.TotalPumps,
		})
	}
	return result
}
