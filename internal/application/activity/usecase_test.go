package activity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barra-api/internal/application/activity"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

type fakeLogRepo struct {
	entries    []*entity.ActivityLog
	lastFilter repository.ActivityLogFilter
	failCreate bool
}

func (f *fakeLogRepo) Create(log *entity.ActivityLog) error {
	if f.failCreate {
		return errors.New("db caída")
	}
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeLogRepo) Query(filter repository.ActivityLogFilter) ([]entity.ActivityLogRow, error) {
	f.lastFilter = filter
	out := make([]entity.ActivityLogRow, 0, len(f.entries))
	for _, e := range f.entries {
		if filter.UserID != nil && (e.UserID == nil || *e.UserID != *filter.UserID) {
			continue
		}
		out = append(out, entity.ActivityLogRow{ActivityLog: *e})
	}
	return out, nil
}

type fakeUserLookup struct {
	users map[string]*entity.User
}

func (f *fakeUserLookup) Create(*entity.User) error                 { return nil }
func (f *fakeUserLookup) GetByID(int64) (*entity.User, error)       { return nil, nil }
func (f *fakeUserLookup) GetByMemberNo(memberNo string) (*entity.User, error) {
	return f.users[memberNo], nil
}
func (f *fakeUserLookup) Update(*entity.User) error                          { return nil }
func (f *fakeUserLookup) UpdatePassword(int64, string) error                 { return nil }
func (f *fakeUserLookup) AdjustBalance(int64, decimal.Decimal) error         { return nil }
func (f *fakeUserLookup) List(string, int, int) ([]*entity.User, error)      { return nil, nil }
func (f *fakeUserLookup) Count(string) (int, error)                          { return 0, nil }

func newActivityUC(repo *fakeLogRepo, users *fakeUserLookup) *activity.UseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return activity.New(repo, users, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_GuardaDetallesComoJSON(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := newActivityUC(repo, &fakeUserLookup{})

	actorID := int64(5)
	uc.Record(entity.ActionUserCreated, map[string]any{"member_no": "42"}, &actorID)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, entity.ActionUserCreated, repo.entries[0].Action)
	assert.JSONEq(t, `{"member_no":"42"}`, string(repo.entries[0].Details))
	require.NotNil(t, repo.entries[0].UserID)
	assert.Equal(t, actorID, *repo.entries[0].UserID)
}

// Un fallo al escribir el log nunca interrumpe la acción principal.
func TestRecord_NoPropagaErrores(t *testing.T) {
	repo := &fakeLogRepo{failCreate: true}
	uc := newActivityUC(repo, &fakeUserLookup{})

	assert.NotPanics(t, func() {
		uc.Record(entity.ActionLogin, nil, nil)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Query — filtros de fecha
// ──────────────────────────────────────────────────────────────────────────────

// Una fecha final sin hora cubre el día entero (inclusivo).
func TestQuery_FechaFinalSolaSeExtiendeAlFinDelDia(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := newActivityUC(repo, &fakeUserLookup{})

	_, err := uc.Query(dto.ActivityLogFilters{EndDate: "2026-08-15"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.EndDate)
	end := *repo.lastFilter.EndDate
	assert.Equal(t, 15, end.Day())
	assert.Equal(t, 23, end.Hour(), "debe cubrir hasta el último instante del día")
	assert.Equal(t, 59, end.Minute())
}

// Un timestamp RFC3339 explícito se respeta tal cual, sin extensión.
func TestQuery_TimestampExplicitoNoSeExtiende(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := newActivityUC(repo, &fakeUserLookup{})

	_, err := uc.Query(dto.ActivityLogFilters{EndDate: "2026-08-15T12:30:00Z"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.EndDate)
	expected := time.Date(2026, 8, 15, 12, 30, 0, 0, time.UTC)
	assert.True(t, repo.lastFilter.EndDate.Equal(expected))
}

func TestQuery_FechaInvalida(t *testing.T) {
	uc := newActivityUC(&fakeLogRepo{}, &fakeUserLookup{})

	_, err := uc.Query(dto.ActivityLogFilters{StartDate: "15/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Query — filtro por socio
// ──────────────────────────────────────────────────────────────────────────────

// Un member_no desconocido produce resultado vacío, nunca el log sin filtrar.
func TestQuery_MemberNoDesconocidoDevuelveVacio(t *testing.T) {
	actorID := int64(1)
	repo := &fakeLogRepo{entries: []*entity.ActivityLog{
		{Action: entity.ActionLogin, UserID: &actorID, Details: []byte("null")},
	}}
	uc := newActivityUC(repo, &fakeUserLookup{users: map[string]*entity.User{}})

	out, err := uc.Query(dto.ActivityLogFilters{MemberNo: "fantasma"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestQuery_FiltraPorSocioResuelto(t *testing.T) {
	id1, id2 := int64(1), int64(2)
	repo := &fakeLogRepo{entries: []*entity.ActivityLog{
		{Action: entity.ActionLogin, UserID: &id1, Details: []byte("null")},
		{Action: entity.ActionLogin, UserID: &id2, Details: []byte("null")},
	}}
	users := &fakeUserLookup{users: map[string]*entity.User{
		"42": {ID: id2, MemberNo: "42"},
	}}
	uc := newActivityUC(repo, users)

	out, err := uc.Query(dto.ActivityLogFilters{MemberNo: "42"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].UserID)
	assert.Equal(t, id2, *out[0].UserID)
}
