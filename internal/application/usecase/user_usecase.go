package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// UserUseCase administración de socios: listado paginado, altas, edición de
// perfil y manejo de credenciales.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista socios con paginación: offset = (page-1)*limit,
// totalPages = ceil(total/limit), hasMore = page*limit < total.
func (uc *UserUseCase) List(query string, page, limit int) (*dto.UserListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	total, err := uc.repo.Count(query)
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.List(query, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Data: data,
		Pagination: dto.Pagination{
			Total:       total,
			TotalPages:  (total + limit - 1) / limit,
			CurrentPage: page,
			HasMore:     page*limit < total,
		},
	}, nil
}

// GetByID obtiene un socio por id interno.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Create da de alta un socio con password sin fijar. Devuelve ErrMemberNoExists
// si el número de socio ya está tomado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.MemberNo == "" {
		return nil, domain.ErrInvalidInput
	}
	permission := in.Permission
	if permission == "" {
		permission = entity.PermissionDefault
	}
	if permission != entity.PermissionDefault && permission != entity.PermissionAdmin {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByMemberNo(in.MemberNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrMemberNoExists
	}
	now := time.Now()
	user := &entity.User{
		MemberNo:   in.MemberNo,
		Name:       in.Name,
		Password:   "",
		Permission: permission,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update edita el perfil. Un cambio de member_no se rechaza si otro socio ya
// lo tiene (pre-check; el índice único de la DB cubre la ventana de carrera).
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.MemberNo != nil && *in.MemberNo != user.MemberNo {
		other, err := uc.repo.GetByMemberNo(*in.MemberNo)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrMemberNoExists
		}
		user.MemberNo = *in.MemberNo
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ResetPassword borra la credencial: el socio queda obligado a fijarla en su
// próximo login. Idempotente.
func (uc *UserUseCase) ResetPassword(id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.UpdatePassword(id, "")
}

// ChangePassword fija una nueva credencial (bcrypt).
func (uc *UserUseCase) ChangePassword(id int64, password string) error {
	if password == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(id, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		MemberNo:    u.MemberNo,
		Name:        u.Name,
		Permission:  u.Permission,
		Balance:     u.Balance,
		PasswordSet: u.Password != "",
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
