package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/jwt"
	"github.com/google/uuid"
)

type SessionServiceImpl struct {
	sessions session.SessionRepository
	resumes  session.PrimaryResumeRepository
	issuer   session.Issuer
	jwt      jwt.Service
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(sessionRepo session.SessionRepository, resumeRepo session.PrimaryResumeRepository, issuer session.Issuer, jwtService jwt.Service, ttl time.Duration) session.SessionService {
	return &SessionServiceImpl{
		sessions: sessionRepo,
		resumes:  resumeRepo,
		issuer:   issuer,
		jwt:      jwtService,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login implements session.SessionService.
func (s *SessionServiceImpl) Login(ctx context.Context, req session.LoginRequest) (session.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return session.TokenResponse{}, err
	}

	grant, err := s.issuer.Login(ctx, req.Role, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return session.TokenResponse{}, err
		}
		return session.TokenResponse{}, fmt.Errorf("failed to log in with issuer: %w", err)
	}
	if grant.SubjectID == "" {
		return session.TokenResponse{}, fmt.Errorf("issuer granted a login without subject id")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	if !grant.ExpiresAt.IsZero() && grant.ExpiresAt.Before(expiresAt) {
		expiresAt = grant.ExpiresAt
	}

	id, err := uuid.NewV7()
	if err != nil {
		return session.TokenResponse{}, fmt.Errorf("failed to generate session id: %w", err)
	}
	created, err := s.sessions.Create(ctx, session.Session{
		ID:            id.String(),
		Role:          req.Role,
		SubjectID:     grant.SubjectID,
		Name:          grant.Name,
		Email:         grant.Email,
		UpstreamToken: grant.Token,
		CreatedAt:     now,
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		return session.TokenResponse{}, fmt.Errorf("failed to store session: %w", err)
	}

	tokenExpiresAt := now.Add(s.jwt.AccessExpiration())
	if tokenExpiresAt.After(created.ExpiresAt) {
		tokenExpiresAt = created.ExpiresAt
	}
	token, err := s.jwt.GenerateAccessToken(jwt.AccessClaims{
		SessionID: created.ID,
		Role:      string(created.Role),
		SubjectID: created.SubjectID,
	}, tokenExpiresAt)
	if err != nil {
		return session.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.InfoContext(ctx, "Session created", "session_id", created.ID, "role", created.Role, "subject_id", created.SubjectID)

	return session.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   tokenExpiresAt.Unix(),
		Role:        created.Role,
		SubjectID:   created.SubjectID,
	}, nil
}

// Logout implements session.SessionService. Logging out twice is not an
// error.
func (s *SessionServiceImpl) Logout(ctx context.Context, sessionID string) error {
	err := s.sessions.Revoke(ctx, sessionID, s.now())
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	slog.InfoContext(ctx, "Session revoked", "session_id", sessionID)
	return nil
}

// Load implements session.SessionService.
func (s *SessionServiceImpl) Load(ctx context.Context, sessionID string) (session.Identity, error) {
	sess, err := s.active(ctx, sessionID)
	if err != nil {
		return session.Identity{}, err
	}
	return session.NewIdentity(sess), nil
}

// Me implements session.SessionService.
func (s *SessionServiceImpl) Me(ctx context.Context) (session.MeResponse, error) {
	id, ok := session.FromContext(ctx)
	if !ok {
		return session.MeResponse{}, session.ErrUnauthorized
	}
	sess, err := s.active(ctx, id.SessionID())
	if err != nil {
		return session.MeResponse{}, err
	}
	return session.MeResponse{
		SessionID: sess.ID,
		Role:      sess.Role,
		SubjectID: sess.SubjectID,
		Name:      sess.Name,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt.Unix(),
	}, nil
}

// GetPrimaryResume implements session.SessionService.
func (s *SessionServiceImpl) GetPrimaryResume(ctx context.Context) (session.PrimaryResumeResponse, error) {
	seekerID, err := seekerFrom(ctx)
	if err != nil {
		return session.PrimaryResumeResponse{}, err
	}
	p, err := s.resumes.Get(ctx, seekerID)
	if err != nil {
		if errors.Is(err, session.ErrResumeNotFound) {
			return session.PrimaryResumeResponse{}, err
		}
		return session.PrimaryResumeResponse{}, fmt.Errorf("failed to get primary resume: %w", err)
	}
	return toPrimaryResumeResponse(p), nil
}

// SetPrimaryResume implements session.SessionService.
func (s *SessionServiceImpl) SetPrimaryResume(ctx context.Context, req session.SetPrimaryResumeRequest) (session.PrimaryResumeResponse, error) {
	if err := req.Validate(); err != nil {
		return session.PrimaryResumeResponse{}, err
	}
	seekerID, err := seekerFrom(ctx)
	if err != nil {
		return session.PrimaryResumeResponse{}, err
	}

	p, err := s.resumes.Upsert(ctx, session.PrimaryResume{
		SeekerID:  seekerID,
		ResumeID:  req.ResumeID,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return session.PrimaryResumeResponse{}, fmt.Errorf("failed to set primary resume: %w", err)
	}
	return toPrimaryResumeResponse(p), nil
}

// PurgeExpired implements session.SessionService.
func (s *SessionServiceImpl) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return n, nil
}

func (s *SessionServiceImpl) active(ctx context.Context, sessionID string) (session.Session, error) {
	if sessionID == "" {
		return session.Session{}, session.ErrSessionNotFound
	}
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.Session{}, err
		}
		return session.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if !sess.ActiveAt(s.now()) {
		return session.Session{}, session.ErrSessionExpired
	}
	return sess, nil
}

func seekerFrom(ctx context.Context) (string, error) {
	id, ok := session.FromContext(ctx)
	if !ok {
		return "", session.ErrUnauthorized
	}
	if id.JobseekerID() == "" {
		return "", session.ErrForbidden
	}
	return id.JobseekerID(), nil
}

func toPrimaryResumeResponse(p session.PrimaryResume) session.PrimaryResumeResponse {
	return session.PrimaryResumeResponse{
		ResumeID:  p.ResumeID,
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
