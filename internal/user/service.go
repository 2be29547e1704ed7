package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidCode  = errors.New("invalid authorization code")
)

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Falha ao trocar o código de autorização do Google")
		return nil, ErrInvalidCode
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Falha ao buscar perfil do Google")
		return nil, err
	}

	u, err := s.repo.FindByGoogleID(info.ID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		u = &User{
			ID:        uuid.New(),
			GoogleID:  info.ID,
			Email:     info.Email,
			Name:      info.Name,
			AvatarURL: info.Picture,
			Role:      RoleStudent,
		}
		if token.RefreshToken != "" {
			if encrypted, err := config.Encrypt(token.RefreshToken); err == nil {
				u.RefreshToken = encrypted
			}
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Falha ao criar usuário")
			return nil, err
		}
		log.WithField("user_id", u.ID.String()).Info("Novo usuário criado via Google")
		return u, nil
	}

	u.Email = info.Email
	u.Name = info.Name
	u.AvatarURL = info.Picture
	if token.RefreshToken != "" {
		if encrypted, err := config.Encrypt(token.RefreshToken); err == nil {
			u.RefreshToken = encrypted
		}
	}
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
