package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
// El protocolo es sin sesión: Login devuelve el hecho de usuario y el cliente
// lo persiste por su cuenta; el servidor no emite ni valida tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login verifica email/password y retorna el usuario autenticado.
// ErrUserNotFound si el email no existe; ErrWrongPassword si el hash no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginUser, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}
	return &dto.LoginUser{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrMissingFields si falta nombre, email o password y
// ErrEmailInUse si el email ya está registrado. Role vacío queda como "user".
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", domain.ErrMissingFields
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailInUse
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}
