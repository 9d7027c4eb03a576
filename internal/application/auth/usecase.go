package auth

import (
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
	"github.com/jhoicas/Barra-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de la cookie de sesión.
type JWTConfig struct {
	Secret             string
	ExpMinutes         int
	RememberExpMinutes int
	Issuer             string
}

// Recorder puerto mínimo hacia el log de actividad (lo implementa activity.UseCase).
type Recorder interface {
	Record(action string, details any, actingUserID *int64)
}

// AuthUseCase casos de uso de sesión: login por número de socio y resolución
// de identidad por token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	recorder Recorder
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, recorder Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, recorder: recorder, jwtCfg: jwtCfg}
}

// Login verifica número de socio + password y genera el token de sesión.
// Regla heredada del sistema anterior: un socio con password sin fijar (vacío
// en DB) puede entrar con password vacío; queda obligado a fijarlo después.
// Devuelve también los minutos de vida del token para la cookie.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*entity.User, string, int, error) {
	if in.MemberNo == "" {
		return nil, "", 0, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByMemberNo(in.MemberNo)
	if err != nil {
		return nil, "", 0, err
	}
	if user == nil {
		return nil, "", 0, domain.ErrUnauthenticated
	}
	if !credentialsValid(user.Password, in.Password) {
		return nil, "", 0, domain.ErrUnauthenticated
	}

	expMinutes := uc.jwtCfg.ExpMinutes
	if in.RememberMe {
		expMinutes = uc.jwtCfg.RememberExpMinutes
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.MemberNo, user.Permission, in.RememberMe, uc.jwtCfg.Issuer, expMinutes)
	if err != nil {
		return nil, "", 0, err
	}

	if uc.recorder != nil {
		uc.recorder.Record(entity.ActionLogin, map[string]any{"member_no": user.MemberNo}, &user.ID)
	}
	return user, token, expMinutes, nil
}

// Resolve carga el socio completo (rol y saldo incluidos) a partir del
// member_no del token. Token válido pero socio borrado → identidad anónima.
func (uc *AuthUseCase) Resolve(memberNo string) (*entity.User, error) {
	return uc.userRepo.GetByMemberNo(memberNo)
}

// Remember reemite la sesión a partir de un token "recuérdame" todavía válido,
// extendiendo su vida sin pedir credenciales. Tokens de sesión corta no
// califican: renovar silenciosamente solo lo que el socio pidió recordar.
func (uc *AuthUseCase) Remember(token string) (*entity.User, string, int, error) {
	memberNo, _, rememberMe, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil || !rememberMe {
		return nil, "", 0, domain.ErrUnauthenticated
	}
	user, err := uc.userRepo.GetByMemberNo(memberNo)
	if err != nil {
		return nil, "", 0, err
	}
	if user == nil {
		return nil, "", 0, domain.ErrUnauthenticated
	}

	expMinutes := uc.jwtCfg.RememberExpMinutes
	fresh, err := jwt.Generate(uc.jwtCfg.Secret, user.MemberNo, user.Permission, true, uc.jwtCfg.Issuer, expMinutes)
	if err != nil {
		return nil, "", 0, err
	}
	return user, fresh, expMinutes, nil
}

func credentialsValid(storedHash, password string) bool {
	if storedHash == "" {
		return password == ""
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
