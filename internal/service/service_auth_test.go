package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

const testSignKey = "test-sign-key-with-enough-entropy"

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "go-task-keeper",
		TokenDuration: time.Hour,
		Version:       "test",
	}
}

// newTestAuthSvc builds an authService with mocked dependencies.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc, err := NewAuthService(repo, hasher, testAppConfig(), logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), repo, hasher
}

func TestNewAuthService_MissingSecret(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""

	_, err := NewAuthService(nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, config.ErrConfig)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "bcrypt-hash", u.PasswordHash)
				assert.Empty(t, u.Password, "plaintext password must not reach the store")
				u.UserID = 5
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "ann@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("too long"))

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrPasswordHashing)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 3, Email: "ann@example.com", PasswordHash: "stored-hash"}

	tests := []struct {
		name    string
		setup   func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name: "success",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), stored.Email).Return(stored, nil)
				hasher.EXPECT().Verify("secret1", "stored-hash").Return(true)
			},
		},
		{
			name: "wrong password",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), stored.Email).Return(stored, nil)
				hasher.EXPECT().Verify("secret1", "stored-hash").Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "unknown email still runs a comparison",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), stored.Email).Return(models.User{}, store.ErrNoUserWasFound)
				hasher.EXPECT().VerifyDummy("secret1").Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "store failure",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), stored.Email).Return(models.User{}, errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(repo, hasher)

			user, err := svc.Login(context.Background(), models.User{Email: stored.Email, Password: "secret1"})
			switch {
			case tt.name == "store failure":
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, stored.UserID, user.UserID)
			}
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "go-task-keeper", parsed.Issuer)
}

func TestAuthService_ParseToken_Classification(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	claims := func(sub, iss string, iat, exp time.Time) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    iss,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		}
	}
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{
			name:  "expired",
			token: sign(claims("1", "go-task-keeper", now.Add(-2*time.Hour), now.Add(-time.Hour)), jwt.SigningMethodHS256, []byte(testSignKey)),
			want:  ErrTokenIsExpired,
		},
		{
			name:  "signed with another secret",
			token: sign(claims("1", "go-task-keeper", now, now.Add(time.Hour)), jwt.SigningMethodHS256, []byte("another-secret")),
			want:  ErrTokenSignatureInvalid,
		},
		{
			name:  "other algorithm",
			token: sign(claims("1", "go-task-keeper", now, now.Add(time.Hour)), jwt.SigningMethodHS512, []byte(testSignKey)),
			want:  ErrTokenSignatureInvalid,
		},
		{
			name:  "garbage",
			token: "not.a.token",
			want:  ErrTokenMalformed,
		},
		{
			name:  "wrong issuer",
			token: sign(claims("1", "someone-else", now, now.Add(time.Hour)), jwt.SigningMethodHS256, []byte(testSignKey)),
			want:  ErrTokenMalformed,
		},
		{
			name:  "non numeric subject",
			token: sign(claims("abc", "go-task-keeper", now, now.Add(time.Hour)), jwt.SigningMethodHS256, []byte(testSignKey)),
			want:  ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUserByID(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// The real bcrypt hasher against a mocked store.
func TestAuthService_RegisterThenLogin_WithBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher, err := crypto.NewPasswordHasher()
	require.NoError(t, err)

	svc, err := NewAuthService(repo, hasher, testAppConfig(), logger.Nop())
	require.NoError(t, err)

	var saved models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			saved = u
			return u, nil
		})
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").DoAndReturn(
		func(context.Context, string) (models.User, error) { return saved, nil }).Times(2)

	ctx := context.Background()
	_, err = svc.RegisterUser(ctx, models.User{Email: "ann@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", saved.PasswordHash)

	_, err = svc.Login(ctx, models.User{Email: "ann@example.com", Password: "hunter22"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, models.User{Email: "ann@example.com", Password: "hunter23"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
