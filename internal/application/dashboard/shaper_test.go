// Caja blanca: las transformaciones del shaper no se exportan y se
// verifican aquí directamente; el resto de la suite usa package _test.
package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests pivotModelsByInstitution
// ──────────────────────────────────────────────────────────────────────────────

func TestPivotModelsByInstitution_AgrupaYAcumula(t *testing.T) {
	rows := []repository.InstitutionModelCountRow{
		{InstitutionName: "Hospital Central", ModelName: "Infusomat", Count: 10},
		{InstitutionName: "Hospital Central", ModelName: "Perfusor", Count: 4},
		{InstitutionName: "Clínica Norte", ModelName: "Infusomat", Count: 7},
	}

	models, data := pivotModelsByInstitution(rows)

	assert.Equal(t, []string{"Infusomat", "Perfusor"}, models,
		"los modelos deben listarse en orden de aparición, sin duplicados")

	require.Len(t, data, 2, "debe haber una fila por institución")

	central := data[0]
	assert.Equal(t, "Hospital Central", central["institutionName"])
	assert.Equal(t, 10, central["Infusomat"])
	assert.Equal(t, 4, central["Perfusor"])
	assert.Equal(t, 14, central["total"], "el total debe acumular todos los modelos de la institución")

	norte := data[1]
	assert.Equal(t, "Clínica Norte", norte["institutionName"])
	assert.Equal(t, 7, norte["Infusomat"])
	assert.Equal(t, 7, norte["total"])
	_, tienePerfusor := norte["Perfusor"]
	assert.False(t, tienePerfusor, "un modelo sin bombas en la institución no debe aparecer como clave")
}

func TestPivotModelsByInstitution_PreservaOrdenDeLlegada(t *testing.T) {
	// El orden viene decidido por la consulta; el pivot no debe reordenar.
	rows := []repository.InstitutionModelCountRow{
		{InstitutionName: "Zeta", ModelName: "M2", Count: 1},
		{InstitutionName: "Alfa", ModelName: "M1", Count: 2},
	}

	models, data := pivotModelsByInstitution(rows)

	assert.Equal(t, []string{"M2", "M1"}, models)
	require.Len(t, data, 2)
	assert.Equal(t, "Zeta", data[0]["institutionName"])
	assert.Equal(t, "Alfa", data[1]["institutionName"])
}

func TestPivotModelsByInstitution_SinFilas(t *testing.T) {
	models, data := pivotModelsByInstitution(nil)

	assert.NotNil(t, models, "sin filas debe devolver slice vacío, no nil")
	assert.NotNil(t, data)
	assert.Empty(t, models)
	assert.Empty(t, data)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests groupProgressByInstitution / groupStateByInstitution
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupProgressByInstitution_AnidaServicios(t *testing.T) {
	rows := []repository.ServiceProgressRow{
		{InstitutionID: 1, InstitutionName: "Hospital Central", ServiceID: 10, ServiceName: "UCI", PumpsInventoriedThisYear: 5, TotalPumps: 8},
		{InstitutionID: 1, InstitutionName: "Hospital Central", ServiceID: 11, ServiceName: "Emergencia", PumpsInventoriedThisYear: 2, TotalPumps: 3},
		{InstitutionID: 2, InstitutionName: "Clínica Norte", ServiceID: 10, ServiceName: "UCI", PumpsInventoriedThisYear: 1, TotalPumps: 4},
	}

	result := groupProgressByInstitution(rows)

	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].InstitutionID)
	require.Len(t, result[0].Services, 2, "los servicios deben anidarse bajo su institución")
	assert.Equal(t, "UCI", result[0].Services[0].ServiceName)
	assert.Equal(t, "Emergencia", result[0].Services[1].ServiceName)
	assert.Equal(t, 5, result[0].Services[0].PumpsInventoriedThisYear)

	assert.Equal(t, int64(2), result[1].InstitutionID)
	require.Len(t, result[1].Services, 1)
	assert.Equal(t, 4, result[1].Services[0].TotalPumps)
}

func TestGroupProgressByInstitution_SinFilas(t *testing.T) {
	result := groupProgressByInstitution(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGroupStateByInstitution_AnidaServicios(t *testing.T) {
	rows := []repository.ServiceStateRow{
		{InstitutionID: 3, InstitutionName: "Hospital Sur", ServiceID: 20, ServiceName: "Pediatría", InoperativePumpsCount: 2, TotalPumps: 6},
		{InstitutionID: 3, InstitutionName: "Hospital Sur", ServiceID: 21, ServiceName: "Neonatología", InoperativePumpsCount: 0, TotalPumps: 5},
	}

	result := groupStateByInstitution(rows)

	require.Len(t, result, 1)
	assert.Equal(t, "Hospital Sur", result[0].InstitutionName)
	require.Len(t, result[0].Services, 2)
	assert.Equal(t, 2, result[0].Services[0].InoperativePumpsCount)
	assert.Equal(t, 0, result[0].Services[1].InoperativePumpsCount,
		"un servicio sin inoperativas debe aparecer igualmente con conteo cero")
}
