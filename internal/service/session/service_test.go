package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, s session.Session) (session.Session, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(context.Context, session.Session) session.Session); ok {
		return fn(ctx, s), args.Error(1)
	}
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id string) (session.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockSessionRepo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type mockResumeRepo struct {
	mock.Mock
}

func (m *mockResumeRepo) Get(ctx context.Context, seekerID string) (session.PrimaryResume, error) {
	args := m.Called(ctx, seekerID)
	return args.Get(0).(session.PrimaryResume), args.Error(1)
}

func (m *mockResumeRepo) Upsert(ctx context.Context, p session.PrimaryResume) (session.PrimaryResume, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(session.PrimaryResume), args.Error(1)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Login(ctx context.Context, role session.Role, email, password string) (session.Grant, error) {
	args := m.Called(ctx, role, email, password)
	return args.Get(0).(session.Grant), args.Error(1)
}

var testNow = time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)

type fixture struct {
	sessions *mockSessionRepo
	resumes  *mockResumeRepo
	issuer   *mockIssuer
	jwt      jwt.Service
	svc      *SessionServiceImpl
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	jwtService, err := jwt.NewJWTService("test-secret", "15m")
	require.NoError(t, err)
	f := fixture{
		sessions: &mockSessionRepo{},
		resumes:  &mockResumeRepo{},
		issuer:   &mockIssuer{},
		jwt:      jwtService,
	}
	f.svc = NewSessionService(f.sessions, f.resumes, f.issuer, jwtService, 24*time.Hour).(*SessionServiceImpl)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func seekerContext() context.Context {
	return session.WithIdentity(context.Background(), session.NewIdentity(session.Session{
		ID: "sess-1", Role: session.RoleSeeker, SubjectID: "42",
	}))
}

func TestLogin_StoresSessionAndIssuesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.issuer.On("Login", ctx, session.RoleEmployer, "hr@acme.test", "secret").Return(session.Grant{
		SubjectID: "7", Name: "Acme", Email: "hr@acme.test", Token: "upstream",
		ExpiresAt: testNow.Add(10 * time.Minute),
	}, nil)
	f.sessions.On("Create", ctx, mock.MatchedBy(func(s session.Session) bool {
		return s.ID != "" && s.SubjectID == "7" && s.UpstreamToken == "upstream" && s.ExpiresAt.Equal(testNow.Add(10*time.Minute))
	})).Return(func(_ context.Context, s session.Session) session.Session { return s }, nil)

	resp, err := f.svc.Login(ctx, session.LoginRequest{Role: session.RoleEmployer, Email: "hr@acme.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, session.RoleEmployer, resp.Role)
	// the access token never outlives the upstream grant
	assert.Equal(t, testNow.Add(10*time.Minute).Unix(), resp.ExpiresAt)

	token, err := f.jwt.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(ctx)
	require.NoError(t, err)
	sid, ok := jwt.SessionIDFromClaims(claims)
	assert.True(t, ok)
	assert.NotEmpty(t, sid)
	f.sessions.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.issuer.On("Login", ctx, session.RoleSeeker, "ana@test.dev", "bad").Return(session.Grant{}, session.ErrInvalidCredentials)

	_, err := f.svc.Login(ctx, session.LoginRequest{Role: session.RoleSeeker, Email: "ana@test.dev", Password: "bad"})
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_RejectsAdminRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Login(context.Background(), session.LoginRequest{Role: session.RoleAdmin, Email: "a@b.co", Password: "x"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "role")
}

func TestLoad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	revokedAt := testNow.Add(-time.Minute)

	f.sessions.On("GetByID", ctx, "live").Return(session.Session{ID: "live", Role: session.RoleSeeker, SubjectID: "42", ExpiresAt: testNow.Add(time.Hour)}, nil)
	f.sessions.On("GetByID", ctx, "old").Return(session.Session{ID: "old", ExpiresAt: testNow.Add(-time.Hour)}, nil)
	f.sessions.On("GetByID", ctx, "revoked").Return(session.Session{ID: "revoked", ExpiresAt: testNow.Add(time.Hour), RevokedAt: &revokedAt}, nil)
	f.sessions.On("GetByID", ctx, "gone").Return(session.Session{}, session.ErrSessionNotFound)

	id, err := f.svc.Load(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "42", id.JobseekerID())

	_, err = f.svc.Load(ctx, "old")
	assert.ErrorIs(t, err, session.ErrSessionExpired)
	_, err = f.svc.Load(ctx, "revoked")
	assert.ErrorIs(t, err, session.ErrSessionExpired)
	_, err = f.svc.Load(ctx, "gone")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = f.svc.Load(ctx, "")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestLogout_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sessions.On("Revoke", ctx, "gone", testNow).Return(session.ErrSessionNotFound)
	f.sessions.On("Revoke", ctx, "broken", testNow).Return(errors.New("db down"))

	assert.NoError(t, f.svc.Logout(ctx, "gone"))
	assert.Error(t, f.svc.Logout(ctx, "broken"))
}

func TestPrimaryResume(t *testing.T) {
	f := newFixture(t)
	ctx := seekerContext()

	f.resumes.On("Upsert", ctx, session.PrimaryResume{SeekerID: "42", ResumeID: "r2", UpdatedAt: testNow}).
		Return(session.PrimaryResume{SeekerID: "42", ResumeID: "r2", UpdatedAt: testNow}, nil)
	f.resumes.On("Get", ctx, "42").Return(session.PrimaryResume{}, session.ErrResumeNotFound)

	resp, err := f.svc.SetPrimaryResume(ctx, session.SetPrimaryResumeRequest{ResumeID: "r2"})
	require.NoError(t, err)
	assert.Equal(t, "r2", resp.ResumeID)
	assert.Equal(t, "2024-01-22T10:00:00Z", resp.UpdatedAt)

	_, err = f.svc.GetPrimaryResume(ctx)
	assert.ErrorIs(t, err, session.ErrResumeNotFound)
}

func TestPrimaryResume_RequiresSeeker(t *testing.T) {
	f := newFixture(t)
	employer := session.WithIdentity(context.Background(), session.NewIdentity(session.Session{ID: "s", Role: session.RoleEmployer, SubjectID: "7"}))

	_, err := f.svc.GetPrimaryResume(employer)
	assert.ErrorIs(t, err, session.ErrForbidden)
	_, err = f.svc.GetPrimaryResume(context.Background())
	assert.ErrorIs(t, err, session.ErrUnauthorized)
}

func TestPurgeExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sessions.On("PurgeExpired", ctx, testNow).Return(int64(3), nil)

	n, err := f.svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
