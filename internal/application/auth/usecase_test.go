package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria para los tests.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailInUse
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailExcluding(email, excludeID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConHashBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	userID, err := uc.Register(dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secreta",
	})
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	stored, err := repo.GetByID(userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user", stored.Role, "rol vacío debe quedar como user")
	assert.NotEqual(t, "secreta", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))
}

func TestRegister_CamposFaltantes(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	cases := []dto.RegisterRequest{
		{Email: "a@example.com", Password: "x"},
		{Name: "Ana", Password: "x"},
		{Name: "Ana", Email: "a@example.com"},
	}
	for _, in := range cases {
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	}
}

// Dos registros con el mismo email: el segundo se rechaza con EMAIL_IN_USE.
func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otra Ana", Email: "ana@example.com", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
}

func TestRegister_RolExplicitoSeConserva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	userID, err := uc.Register(dto.RegisterRequest{
		Name: "Root", Email: "root@example.com", Password: "x", Role: "admin",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByID(userID)
	assert.Equal(t, "admin", stored.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	userID, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta"})
	require.NoError(t, err)

	user, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "user", user.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta"})
	require.NoError(t, err)

	user, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.Nil(t, user)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	user, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}
