package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SantosRojas/inventory-api/internal/application/dashboard"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: un QueryRunner que entrega siempre el mismo repositorio
// stub, sin pool de por medio.
// ──────────────────────────────────────────────────────────────────────────────

type stubRunner struct {
	repo repository.DashboardRepository
}

func (r stubRunner) Run(ctx context.Context, fn func(q repository.DashboardRepository) error) error {
	return fn(r.repo)
}

// stubDashboardRepo devuelve valores fijados por campo; los métodos no
// configurados devuelven cero. calls registra los métodos invocados en orden.
type stubDashboardRepo struct {
	scopeIDs  []int64
	scopeErr  error
	takerSeen *int64

	summaryRow  repository.SummaryRow
	summaryErr  error
	adminTotals repository.AdminTotalsRow
	adminErr    error

	modelDist        []repository.ModelCountRow
	modelDistByInst  []repository.InstitutionModelCountRow
	totalPumps       int
	progressByInst   []repository.InstitutionProgressRow
	progressBySvc    []repository.ServiceProgressRow
	stateBySvc       []repository.ServiceStateRow
	stateByModel     []repository.ModelStateRow
	topTakers        []repository.TakerRankRow
	takerRank        []repository.TakerRankRow
	overdue          []repository.OverdueInstitutionRow
	overdueTakerSeen **int64
	queryErr         error

	calls []string
}

func (s *stubDashboardRepo) record(name string) { s.calls = append(s.calls, name) }

func (s *stubDashboardRepo) AllInstitutionIDs(ctx context.Context) ([]int64, error) {
	s.record("AllInstitutionIDs")
	return s.scopeIDs, s.scopeErr
}

func (s *stubDashboardRepo) InstitutionIDsByTaker(ctx context.Context, userID int64) ([]int64, error) {
	s.record("InstitutionIDsByTaker")
	s.takerSeen = &userID
	return s.scopeIDs, s.scopeErr
}

func (s *stubDashboardRepo) Summary(ctx context.Context, institutionIDs []int64, year int) (repository.SummaryRow, error) {
	s.record("Summary")
	return s.summaryRow, s.summaryErr
}

func (s *stubDashboardRepo) AdminTotals(ctx context.Context) (repository.AdminTotalsRow, error) {
	s.record("AdminTotals")
	return s.adminTotals, s.adminErr
}

func (s *stubDashboardRepo) ModelDistribution(ctx context.Context, institutionIDs []int64) ([]repository.ModelCountRow, error) {
	s.record("ModelDistribution")
	return s.modelDist, s.queryErr
}

func (s *stubDashboardRepo) ModelDistributionByInstitution(ctx context.Context, institutionIDs []int64) ([]repository.InstitutionModelCountRow, error) {
	s.record("ModelDistributionByInstitution")
	return s.modelDistByInst, s.queryErr
}

func (s *stubDashboardRepo) TotalPumps(ctx context.Context, institutionIDs []int64) (int, error) {
	s.record("TotalPumps")
	return s.totalPumps, s.queryErr
}

func (s *stubDashboardRepo) InventoryProgressByInstitution(ctx context.Context, institutionIDs []int64, year int) ([]repository.InstitutionProgressRow, error) {
	s.record("InventoryProgressByInstitution")
	return s.progressByInst, s.queryErr
}

func (s *stubDashboardRepo) InventoryProgressByService(ctx context.Context, institutionIDs []int64, year int) ([]repository.ServiceProgressRow, error) {
	s.record("InventoryProgressByService")
	return s.progressBySvc, s.queryErr
}

func (s *stubDashboardRepo) StateByService(ctx context.Context, institutionIDs []int64) ([]repository.ServiceStateRow, error) {
	s.record("StateByService")
	return s.stateBySvc, s.queryErr
}

func (s *stubDashboardRepo) StateByModel(ctx context.Context, institutionIDs []int64) ([]repository.ModelStateRow, error) {
	s.record("StateByModel")
	return s.stateByModel, s.queryErr
}

func (s *stubDashboardRepo) TopInventoryTakers(ctx context.Context, year int) ([]repository.TakerRankRow, error) {
	s.record("TopInventoryTakers")
	return s.topTakers, s.queryErr
}

func (s *stubDashboardRepo) InventoryTakerRank(ctx context.Context, year int, userID int64) ([]repository.TakerRankRow, error) {
	s.record("InventoryTakerRank")
	return s.takerRank, s.queryErr
}

func (s *stubDashboardRepo) OverdueMaintenanceByInstitution(ctx context.Context, takerID *int64) ([]repository.OverdueInstitutionRow, error) {
	s.record("OverdueMaintenanceByInstitution")
	s.overdueTakerSeen = &takerID
	return s.overdue, s.queryErr
}

func buildUseCase(repo *stubDashboardRepo) *dashboard.UseCase {
	return dashboard.NewUseCase(stubRunner{repo: repo})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_RolRegular(t *testing.T) {
	repo := &stubDashboardRepo{
		scopeIDs: []int64{1, 2},
		summaryRow: repository.SummaryRow{
			TotalPumps:               40,
			InventoriedPumpsThisYear: 25,
			OperativePumps:           38,
			OverduePumpsMaintenance:  3,
		},
	}
	uc := buildUseCase(repo)

	out, err := uc.GetSummary(context.Background(), 7, entity.Role("inventariador"))
	require.NoError(t, err)

	assert.Equal(t, 40, out.TotalPumps)
	assert.Equal(t, 25, out.InventoriedPumpsThisYear)
	assert.Equal(t, 38, out.OperativePumps)
	assert.Equal(t, 3, out.OverduePumpsMaintenance)
	assert.Nil(t, out.AdminData, "un rol regular no debe recibir métricas administrativas")

	require.NotNil(t, repo.takerSeen, "el alcance de un rol regular se resuelve por inventariador")
	assert.Equal(t, int64(7), *repo.takerSeen)
}

func TestGetSummary_RolPrivilegiadoIncluyeAdminData(t *testing.T) {
	repo := &stubDashboardRepo{
		scopeIDs:    []int64{1},
		summaryRow:  repository.SummaryRow{TotalPumps: 10},
		adminTotals: repository.AdminTotalsRow{TotalInventoryTakers: 5, TotalInstitutions: 3},
	}
	uc := buildUseCase(repo)

	out, err := uc.GetSummary(context.Background(), 1, entity.RoleAdmin)
	require.NoError(t, err)

	require.NotNil(t, out.AdminData)
	assert.Equal(t, 5, out.AdminData.TotalInventoryTakers)
	assert.Equal(t, 3, out.AdminData.TotalInstitutions)
	assert.Contains(t, repo.calls, "AllInstitutionIDs",
		"el alcance de un rol privilegiado son todas las instituciones")
}

func TestGetSummary_AlcanceVacio(t *testing.T) {
	repo := &stubDashboardRepo{scopeIDs: []int64{}}
	uc := buildUseCase(repo)

	out, err := uc.GetSummary(context.Background(), 1, entity.RoleRoot)
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalPumps)
	require.NotNil(t, out.AdminData, "un rol privilegiado recibe AdminData aun con alcance vacío")
	assert.Equal(t, 0, out.AdminData.TotalInstitutions)
	assert.NotContains(t, repo.calls, "Summary", "sin alcance no debe consultarse el resumen")
	assert.NotContains(t, repo.calls, "AdminTotals", "sin alcance no debe consultarse AdminTotals")
}

func TestGetSummary_ErrorDeConsulta(t *testing.T) {
	repo := &stubDashboardRepo{
		scopeIDs:   []int64{1},
		summaryErr: errors.New("conexión perdida"),
	}
	uc := buildUseCase(repo)

	out, err := uc.GetSummary(context.Background(), 1, entity.RoleGuest)
	require.Error(t, err)
	assert.Nil(t, out, "un fallo nunca devuelve un reporte parcial")

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Error al obtener resumen del dashboard", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
}

func TestGetSummary_ErrorDeAlcance_MensajeGenerico(t *testing.T) {
	repo := &stubDashboardRepo{scopeErr: errors.New("timeout")}
	uc := buildUseCase(repo)

	_, err := uc.GetSummary(context.Background(), 1, entity.RoleGuest)
	require.Error(t, err)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Error interno del servidor", appErr.Message,
		"el fallo del resolver de alcance no debe reemplazarse por el mensaje del reporte")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de reportes con alcance vacío: cada forma debe salir en cero, sin
// consultas de agregación de por medio.
// ──────────────────────────────────────────────────────────────────────────────

func TestReportes_AlcanceVacioDevuelveFormasVacias(t *testing.T) {
	repo := &stubDashboardRepo{scopeIDs: nil}
	uc := buildUseCase(repo)
	ctx := context.Background()

	dist, err := uc.GetModelDistribution(ctx, 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.NotNil(t, dist.Models)
	assert.Empty(t, dist.Models)

	pivot, err := uc.GetModelDistributionByInstitution(ctx, 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.Equal(t, 0, pivot.TotalPumps)
	assert.NotNil(t, pivot.Models)
	assert.NotNil(t, pivot.Data)
	assert.Empty(t, pivot.Data)

	progInst, err := uc.GetInventoryProgressByInstitution(ctx, 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.NotNil(t, progInst.Institutions)
	assert.Empty(t, progInst.Institutions)

	progSvc, err := uc.GetInventoryProgressByService(ctx, 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.Empty(t, progSvc.Institutions)

	stateSvc, err := uc.GetStateByService(ctx, 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.Empty(t, stateSvc.Institutions)

	stateModel, err := uc.GetStateByModel(ctx, 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.Empty(t, stateModel.Models)

	assert.NotContains(t, repo.calls, "ModelDistribution")
	assert.NotContains(t, repo.calls, "TotalPumps")
	assert.NotContains(t, repo.calls, "StateByService")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetModelDistributionByInstitution
// ──────────────────────────────────────────────────────────────────────────────

func TestGetModelDistributionByInstitution_ArmaPivot(t *testing.T) {
	repo := &stubDashboardRepo{
		scopeIDs: []int64{1, 2},
		modelDistByInst: []repository.InstitutionModelCountRow{
			{InstitutionName: "Hospital Central", ModelName: "Infusomat", Count: 6},
			{InstitutionName: "Hospital Central", ModelName: "Perfusor", Count: 2},
			{InstitutionName: "Clínica Norte", ModelName: "Infusomat", Count: 3},
		},
		totalPumps: 11,
	}
	uc := buildUseCase(repo)

	out, err := uc.GetModelDistributionByInstitution(context.Background(), 1, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 11, out.TotalPumps)
	assert.Equal(t, []string{"Infusomat", "Perfusor"}, out.Models)
	require.Len(t, out.Data, 2)
	assert.Equal(t, 8, out.Data[0]["total"])
}

func TestGetModelDistributionByInstitution_ErrorDeConsulta(t *testing.T) {
	repo := &stubDashboardRepo{
		scopeIDs: []int64{1},
		queryErr: errors.New("tabla bloqueada"),
	}
	uc := buildUseCase(repo)

	_, err := uc.GetModelDistributionByInstitution(context.Background(), 1, entity.RoleAdmin)
	require.Error(t, err)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Error al obtener distribución de modelos por institución", appErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetTopInventoryTakers — ramificación por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestGetTopInventoryTakers_PrivilegiadoVeRankingCompleto(t *testing.T) {
	repo := &stubDashboardRepo{
		topTakers: []repository.TakerRankRow{
			{UserID: 1, InventoryTakerName: "Ana Quispe", PumpsInventoriedThisYear: 50},
			{UserID: 2, InventoryTakerName: "Luis Mamani", PumpsInventoriedThisYear: 30},
		},
	}
	uc := buildUseCase(repo)

	out, err := uc.GetTopInventoryTakers(context.Background(), 1, entity.RoleRoot)
	require.NoError(t, err)

	assert.Equal(t, time.Now().Year(), out.Year)
	require.Len(t, out.TopInventoryTakers, 2)
	assert.Equal(t, "Ana Quispe", out.TopInventoryTakers[0].InventoryTakerName)
	assert.Contains(t, repo.calls, "TopInventoryTakers")
	assert.NotContains(t, repo.calls, "InventoryTakerRank")
}

func TestGetTopInventoryTakers_RegularSoloSuPropiaFila(t *testing.T) {
	repo := &stubDashboardRepo{
		takerRank: []repository.TakerRankRow{
			{UserID: 9, InventoryTakerName: "Rosa Flores", PumpsInventoriedThisYear: 12},
		},
	}
	uc := buildUseCase(repo)

	out, err := uc.GetTopInventoryTakers(context.Background(), 9, entity.Role("inventariador"))
	require.NoError(t, err)

	require.Len(t, out.TopInventoryTakers, 1)
	assert.Equal(t, int64(9), out.TopInventoryTakers[0].UserID)
	assert.Contains(t, repo.calls, "InventoryTakerRank")
	assert.NotContains(t, repo.calls, "TopInventoryTakers")
}

func TestGetTopInventoryTakers_RegularSinActividad(t *testing.T) {
	repo := &stubDashboardRepo{takerRank: nil}
	uc := buildUseCase(repo)

	out, err := uc.GetTopInventoryTakers(context.Background(), 9, entity.RoleGuest)
	require.NoError(t, err)
	assert.NotNil(t, out.TopInventoryTakers, "sin actividad debe devolver lista vacía, no nil")
	assert.Empty(t, out.TopInventoryTakers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetOverdueMaintenanceSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOverdueMaintenanceSummary_PrivilegiadoSinFiltro(t *testing.T) {
	repo := &stubDashboardRepo{
		overdue: []repository.OverdueInstitutionRow{
			{InstitutionName: "Clínica Norte", OverdueMaintenanceCount: 4},
			{InstitutionName: "Hospital Central", OverdueMaintenanceCount: 6},
		},
	}
	uc := buildUseCase(repo)

	out, err := uc.GetOverdueMaintenanceSummary(context.Background(), 1, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 10, out.TotalOverduePumps, "el total debe sumar los vencidos de todas las instituciones")
	require.Len(t, out.Institutions, 2)

	require.NotNil(t, repo.overdueTakerSeen)
	assert.Nil(t, *repo.overdueTakerSeen, "un rol privilegiado consulta sin filtro de inventariador")
}

func TestGetOverdueMaintenanceSummary_RegularFiltraPorUsuario(t *testing.T) {
	repo := &stubDashboardRepo{
		overdue: []repository.OverdueInstitutionRow{
			{InstitutionName: "Hospital Sur", OverdueMaintenanceCount: 2},
		},
	}
	uc := buildUseCase(repo)

	out, err := uc.GetOverdueMaintenanceSummary(context.Background(), 42, entity.RoleGuest)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalOverduePumps)

	require.NotNil(t, repo.overdueTakerSeen)
	require.NotNil(t, *repo.overdueTakerSeen, "un rol regular debe filtrar por su propio id")
	assert.Equal(t, int64(42), **repo.overdueTakerSeen)
}

func TestGetOverdueMaintenanceSummary_ErrorDeConsulta(t *testing.T) {
	repo := &stubDashboardRepo{queryErr: errors.New("deadlock")}
	uc := buildUseCase(repo)

	_, err := uc.GetOverdueMaintenanceSummary(context.Background(), 1, entity.RoleAdmin)
	require.Error(t, err)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Error al obtener el resumen de mantenimientos vencidos", appErr.Message)
}
