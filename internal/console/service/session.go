package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/infra/auth"
	"go.uber.org/zap"
)

var ErrInvalidSession = errors.New("a valid email is required")

// SessionService выдает демо-сессии. Пароля и хранилища пользователей нет.
type SessionService struct {
	signer *auth.SessionSigner
	logger *zap.Logger
}

func NewSessionService(signer *auth.SessionSigner, logger *zap.Logger) *SessionService {
	return &SessionService{signer: signer, logger: logger.Named("session-service")}
}

func (s *SessionService) Issue(ctx context.Context, req domain.SessionRequest) (*domain.TokenResponse, error) {
	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	industry, ok := domain.ParseIndustry(req.Industry)
	if !ok && req.Industry != "" {
		s.logger.Warn("unknown industry in session request, using default",
			zap.String("requested", req.Industry))
	}

	token, _, err := s.signer.Sign(addr.Address, req.Name, industry)
	if err != nil {
		s.logger.Error("failed to sign session", zap.Error(err))
		return nil, err
	}

	s.logger.Info("demo session issued",
		zap.String("email", addr.Address),
		zap.String("industry", string(industry)))

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.signer.TTL().Seconds()),
		Industry:    industry,
	}, nil
}
