package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SantosRojas/inventory-api/internal/application/dto"
	"github.com/SantosRojas/inventory-api/internal/domain"
	"github.com/SantosRojas/inventory-api/internal/domain/entity"
	"github.com/SantosRojas/inventory-api/internal/domain/repository"
)

// InventoryTimeUseCase sesiones cronometradas de toma de inventario y sus
// estadísticas por usuario.
type InventoryTimeUseCase struct {
	repo repository.InventoryTimeRepository
}

// NewInventoryTimeUseCase construye el caso de uso.
func NewInventoryTimeUseCase(repo repository.InventoryTimeRepository) *InventoryTimeUseCase {
	return &InventoryTimeUseCase{repo: repo}
}

// GetAll lista todas las sesiones.
func (uc *InventoryTimeUseCase) GetAll(ctx context.Context) ([]dto.InventoryTimeResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryTimeResponses(list), nil
}

// GetByID obtiene una sesión por ID.
func (uc *InventoryTimeUseCase) GetByID(ctx context.Context, id int64) (*dto.InventoryTimeResponse, error) {
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryTimeResponse(*it)
	return &resp, nil
}

// GetByUser sesiones de un usuario.
func (uc *InventoryTimeUseCase) GetByUser(ctx context.Context, userID int64) ([]dto.InventoryTimeResponse, error) {
	list, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toInventoryTimeResponses(list), nil
}

// Create registra una sesión. La duración se deriva de los timestamps si
// no viene informada.
func (uc *InventoryTimeUseCase) Create(ctx context.Context, in dto.CreateInventoryTimeRequest) (*dto.InventoryTimeResponse, error) {
	if in.UserID == 0 || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.EndTime.Before(in.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	duration := in.DurationSeconds
	if duration == 0 {
		duration = int(in.EndTime.Sub(in.StartTime).Seconds())
	}
	it := &entity.InventoryTime{
		UserID:          in.UserID,
		InventoryID:     in.InventoryID,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		DurationSeconds: duration,
		Success:         in.Success,
	}
	id, err := uc.repo.Create(ctx, it)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Update aplica un parche parcial.
func (uc *InventoryTimeUseCase) Update(ctx context.Context, id int64, in dto.UpdateInventoryTimeRequest) (*dto.InventoryTimeResponse, error) {
	upd := repository.InventoryTimeUpdate{
		InventoryID:     in.InventoryID,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		DurationSeconds: in.DurationSeconds,
		Success:         in.Success,
	}
	n, err := uc.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina una sesión.
func (uc *InventoryTimeUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetStatsByUser estadísticas del usuario: total de sesiones, exitosas y
// duración promedio. Los conteos y el promedio son consultas independientes
// sobre el pool; se lanzan en paralelo.
func (uc *InventoryTimeUseCase) GetStatsByUser(ctx context.Context, userID int64) (*dto.TakerTimeStatsDTO, error) {
	type countsResult struct {
		sessions   int
		successful int
		err        error
	}
	type avgResult struct {
		avg decimal.Decimal
		err error
	}

	countsChan := make(chan countsResult, 1)
	avgChan := make(chan avgResult, 1)

	go func() {
		sessions, successful, err := uc.repo.CountByUser(ctx, userID)
		countsChan <- countsResult{sessions, successful, err}
	}()
	go func() {
		avg, err := uc.repo.AverageDurationByUser(ctx, userID)
		avgChan <- avgResult{avg, err}
	}()

	counts := <-countsChan
	average := <-avgChan
	if counts.err != nil {
		return nil, counts.err
	}
	if average.err != nil {
		return nil, average.err
	}

	return &dto.TakerTimeStatsDTO{
		UserID:                 userID,
		Sessions:               counts.sessions,
		Successful:             counts.successful,
		AverageDurationSeconds: average.avg,
	}, nil
}

func toInventoryTimeResponse(it entity.InventoryTime) dto.InventoryTimeResponse {
	return dto.InventoryTimeResponse{
		ID:              it.ID,
		UserID:          it.UserID,
		InventoryID:     it.InventoryID,
		StartTime:       it.StartTime,
		EndTime:         it.EndTime,
		DurationSeconds: it.DurationSeconds,
		Success:         it.Success,
		CreatedAt:       it.CreatedAt,
	}
}

func toInventoryTimeResponses(list []entity.InventoryTime) []dto.InventoryTimeResponse {
	result := make([]dto.InventoryTimeResponse, 0, len(list))
	for _, it := range list {
		result = append(result, toInventoryTimeResponse(it))
	}
	return result
}
