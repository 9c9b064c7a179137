package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
	"github.com/dparada2020225/inventario-server/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y usuarios: registro, login,
// listado (con caché acotada) y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cache    *usersCache
}

// NewAuthUseCase construye el caso de uso de auth. El listado de usuarios pasa
// por una caché con TTL de 60s que se invalida en cada escritura de usuarios.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		cache:    newUsersCache(60 * time.Second),
	}
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// Solo un admin autenticado puede crear otro admin (actingRole viene del token,
// vacío si la petición no trae uno). Devuelve ErrUsernameTaken si el username existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest, actingRole string) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleAdmin && actingRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	// Toda escritura de usuarios invalida el listado cacheado.
	uc.cache.invalidate()
	return toUserResponse(user), nil
}

// Login verifica username/password, genera el JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

// ListUsers devuelve todos los usuarios sin el hash de password. Sirve desde
// la caché si aún es fresca; si no, consulta la BD y repuebla.
func (uc *AuthUseCase) ListUsers() ([]*dto.UserResponse, error) {
	if cached, ok := uc.cache.get(); ok {
		return cached, nil
	}
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	uc.cache.set(out)
	return out, nil
}

// GetCurrentUser devuelve el usuario del token o ErrUserNotFound.
func (uc *AuthUseCase) GetCurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
