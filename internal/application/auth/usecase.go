package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-admin-api/internal/application/dto"
	"github.com/jhoicas/catalogo-admin-api/internal/domain"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-admin-api/pkg/token"
)

// AuthUseCase casos de uso de autenticación: registro, login y refresh.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *token.Service) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// Register crea un usuario: hashea password con bcrypt (cost 10) y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado. No emite tokens:
// el usuario debe hacer login aparte.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) error {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	return uc.userRepo.Create(user)
}

// Login verifica email/password y emite access + refresh token.
// Email desconocido y password incorrecto devuelven el mismo error para no
// filtrar cuál de los dos chequeos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	accessToken, err := uc.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// Refresh valida el refresh token y emite un nuevo access token para el mismo
// usuario. El refresh token no rota. Devuelve ErrForbidden si la verificación falla.
func (uc *AuthUseCase) Refresh(refreshToken string) (string, error) {
	userID, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrForbidden
	}
	return uc.tokens.IssueAccess(userID)
}
