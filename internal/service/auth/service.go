package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/auth"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/user"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/jwt"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/oauth"
)

type Service interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenPairResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error)
	RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error
	Me(ctx context.Context) (auth.SessionResponse, error)

	GoogleRedirectURL(userAgent string) string
	GoogleCallback(ctx context.Context, code string) (auth.TokenPairResponse, error)
}

type ServiceImpl struct {
	userRepo     user.Repository
	employeeRepo employee.Repository
	jwtService   jwt.Service
	google       oauth.GoogleService
}

func NewAuthService(
	userRepo user.Repository,
	employeeRepo employee.Repository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) Service {
	return &ServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		google:       google,
	}
}

// Register creates an employee-role account. When an employee record already
// carries the same email the new account is linked to it.
func (s *ServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return auth.TokenPairResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	if emp, empErr := s.employeeRepo.GetByEmail(ctx, req.Email); empErr == nil && emp.UserID == nil {
		emp.UserID = &created.ID
		if err := s.employeeRepo.Update(ctx, emp); err != nil {
			return auth.TokenPairResponse{}, fmt.Errorf("failed to link employee record: %w", err)
		}
		created.EmployeeID = &emp.ID
	}

	return s.issueTokens(created)
}

func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPairResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if u.PasswordHash == nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *ServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	token, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	typ, ok := token.Get("type")
	if !ok || typ != "refresh" {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}
	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrUserNotFound
	}

	// One-shot refresh tokens: the presented token dies with the rotation.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(u)
}

func (s *ServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *ServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.ErrUserNotFound
	}
	if u.PasswordHash == nil {
		return auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *ServiceImpl) Me(ctx context.Context) (auth.SessionResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return auth.SessionResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.SessionResponse{}, auth.ErrUserNotFound
	}

	return auth.SessionResponse{
		UserID:     u.ID,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       string(u.Role),
	}, nil
}

func (s *ServiceImpl) GoogleRedirectURL(userAgent string) string {
	state := s.google.GenerateState(userAgent)
	return s.google.RedirectURL(state)
}

// GoogleCallback exchanges the OAuth code and signs the Google account in,
// creating a linked employee-role user on first login.
func (s *ServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenPairResponse, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrOAuthExchange
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrOAuthExchange
	}
	if !info.VerifiedEmail {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if u.OAuthProviderID == nil {
			u, err = s.userRepo.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
			if err != nil {
				return auth.TokenPairResponse{}, fmt.Errorf("failed to link google account: %w", err)
			}
		}
	case errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound):
		provider := "google"
		providerID := info.GoogleID
		u, err = s.userRepo.Create(ctx, user.User{
			Email:           info.Email,
			Role:            user.RoleEmployee,
			OAuthProvider:   &provider,
			OAuthProviderID: &providerID,
		})
		if err != nil {
			return auth.TokenPairResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	default:
		return auth.TokenPairResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return s.issueTokens(u)
}

func (s *ServiceImpl) issueTokens(u user.User) (auth.TokenPairResponse, error) {
	access, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return auth.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresAt,
	}, nil
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
