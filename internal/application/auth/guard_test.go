package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

func adminUser() *entity.User {
	return &entity.User{ID: 1, MemberNo: "1", Name: "Admin", Permission: entity.PermissionAdmin}
}

func memberUser(id int64) *entity.User {
	return &entity.User{ID: id, MemberNo: "42", Name: "Socio", Permission: entity.PermissionDefault}
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize — política central de permisos
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: petición anónima → ErrUnauthenticated, siempre.
func TestAuthorize_AnonimoRechazado(t *testing.T) {
	err := auth.Authorize(nil, auth.Requirement{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated,
		"sin identidad debe fallar incluso sin requisito de admin")

	err = auth.Authorize(nil, auth.Requirement{AdminOnly: true})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// Caso 2: socio normal en operación solo-admin → ErrUnauthorized.
func TestAuthorize_SocioNormalBloqueadoEnAdmin(t *testing.T) {
	err := auth.Authorize(memberUser(7), auth.Requirement{AdminOnly: true})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 3: admin pasa cualquier requisito.
func TestAuthorize_AdminPasa(t *testing.T) {
	assert.NoError(t, auth.Authorize(adminUser(), auth.Requirement{}))
	assert.NoError(t, auth.Authorize(adminUser(), auth.Requirement{AdminOnly: true}))
}

// Caso 4: excepción de autoservicio — un socio normal opera sobre sí mismo.
func TestAuthorize_AllowSelfSoloSobreSiMismo(t *testing.T) {
	req := auth.Requirement{AdminOnly: true, AllowSelf: true, SelfUserID: 7}

	assert.NoError(t, auth.Authorize(memberUser(7), req),
		"el propio socio debe poder operar sobre sí mismo")
	assert.ErrorIs(t, auth.Authorize(memberUser(8), req), domain.ErrUnauthorized,
		"otro socio normal no debe pasar por la excepción de autoservicio")
}

// Caso 5: socio autenticado sin requisito admin → permitido.
func TestAuthorize_SocioNormalEnOperacionAbierta(t *testing.T) {
	assert.NoError(t, auth.Authorize(memberUser(7), auth.Requirement{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// WithAuth — envelope de mutaciones protegidas
// ──────────────────────────────────────────────────────────────────────────────

func TestWithAuth_ExitoEnvuelveData(t *testing.T) {
	res := auth.WithAuth(nil, adminUser(), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (string, error) {
			return "hola " + caller.Name, nil
		})

	require.True(t, res.Success)
	require.Nil(t, res.Error)
	assert.Equal(t, "hola Admin", res.Data)
}

func TestWithAuth_DenegadoNoEjecutaLaAccion(t *testing.T) {
	ejecutada := false
	res := auth.WithAuth(nil, memberUser(7), auth.Requirement{AdminOnly: true},
		func(*entity.User) (string, error) {
			ejecutada = true
			return "", nil
		})

	assert.False(t, ejecutada, "la acción no debe ejecutarse si la política deniega")
	require.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, auth.CodeUnauthorized, res.Error.Code)
}

// Un error de la acción se convierte en ResultError; nunca cruza crudo.
func TestWithAuth_ErrorDeAccionSeEnvuelve(t *testing.T) {
	res := auth.WithAuth(nil, adminUser(), auth.Requirement{},
		func(*entity.User) (string, error) {
			return "", domain.ErrUserNotFound
		})

	require.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, auth.CodeNotFound, res.Error.Code)
	assert.NotEmpty(t, res.Error.Title)
	assert.NotEmpty(t, res.Error.Description)
}

// Errores desconocidos se reportan genéricos, sin filtrar el detalle interno.
func TestWithAuth_ErrorInesperadoEsGenerico(t *testing.T) {
	res := auth.WithAuth(nil, adminUser(), auth.Requirement{},
		func(*entity.User) (string, error) {
			return "", errors.New("pq: deadlock detected")
		})

	require.False(t, res.Success)
	assert.Equal(t, auth.CodeUnexpected, res.Error.Code)
	assert.NotContains(t, res.Error.Description, "deadlock",
		"el detalle interno no debe llegar al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Describe — mapeo de errores de dominio a códigos
// ──────────────────────────────────────────────────────────────────────────────

func TestDescribe_MapeoDeCodigos(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{domain.ErrUnauthenticated, auth.CodeUnauthenticated},
		{domain.ErrUnauthorized, auth.CodeUnauthorized},
		{domain.ErrUserNotFound, auth.CodeNotFound},
		{domain.ErrProductNotFound, auth.CodeNotFound},
		{domain.ErrMemberNoExists, auth.CodeConflict},
		{domain.ErrMeasurementInUse, auth.CodeDependencyInUse},
		{domain.ErrAdminProduct, auth.CodeInvalidInput},
		{domain.ErrOpenPrice, auth.CodeInvalidInput},
		{domain.ErrInvalidInput, auth.CodeInvalidInput},
		{errors.New("otro"), auth.CodeUnexpected},
	}
	for _, c := range cases {
		code, _, _ := auth.Describe(c.err)
		assert.Equal(t, c.code, code, "error %v", c.err)
	}
}
