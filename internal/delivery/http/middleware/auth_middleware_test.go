package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmailAndPhone(db *gorm.DB, email, phone string) (*entity.User, error) {
	args := m.Called(db, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindDoctors(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *mockUserRepo) FindDoctorsByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error) {
	args := m.Called(db, firstName, lastName, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func newTestSessions() *session.Service {
	return session.NewService(
		config.JWTConfig{Secret: "test-secret-key", Expiry: time.Hour},
		config.CookieConfig{ExpireDays: 7},
	)
}

func newGuard(userRepo *mockUserRepo) *AuthMiddleware {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAuthMiddleware(newTestSessions(), &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}, userRepo, log)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoleMissingCookie(t *testing.T) {
	guard := newGuard(new(mockUserRepo))
	called := false

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	guard.RequireRole(entity.RoleAdmin)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Not Authenticated")
}

func TestRequireRoleInvalidToken(t *testing.T) {
	guard := newGuard(new(mockUserRepo))
	called := false

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.AdminCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	guard.RequireRole(entity.RoleAdmin)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Invalid session token")
}

func TestRequireRoleExpiredToken(t *testing.T) {
	guard := newGuard(new(mockUserRepo))
	expired := session.NewService(
		config.JWTConfig{Secret: "test-secret-key", Expiry: -time.Minute},
		config.CookieConfig{ExpireDays: 7},
	)
	token, err := expired.Issue(uuid.New())
	assert.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.AdminCookie, Value: token})
	rec := httptest.NewRecorder()
	guard.RequireRole(entity.RoleAdmin)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Session expired")
}

// A valid patient session presented against an admin route is authenticated
// but not authorized.
func TestRequireRoleMismatch(t *testing.T) {
	userRepo := new(mockUserRepo)
	guard := newGuard(userRepo)

	userID := uuid.New()
	token, err := newTestSessions().Issue(userID)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RolePatient}, nil)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.AdminCookie, Value: token})
	rec := httptest.NewRecorder()
	guard.RequireRole(entity.RoleAdmin)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleUnknownUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	guard := newGuard(userRepo)

	userID := uuid.New()
	token, err := newTestSessions().Issue(userID)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.PatientCookie, Value: token})
	rec := httptest.NewRecorder()
	guard.RequireRole(entity.RolePatient)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleSuccessAttachesUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	guard := newGuard(userRepo)

	userID := uuid.New()
	token, err := newTestSessions().Issue(userID)
	assert.NoError(t, err)

	stored := &entity.User{ID: userID, FirstName: "Ravi", Role: entity.RolePatient}
	userRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)

	var resolved *entity.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		assert.True(t, ok)
		resolved = user
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.PatientCookie, Value: token})
	rec := httptest.NewRecorder()
	guard.RequireRole(entity.RolePatient)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, resolved.ID)
	assert.Equal(t, "Ravi", resolved.FirstName)
}
