package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/venkateshgajul/SkillmapAI/internal/analysis"
	"github.com/venkateshgajul/SkillmapAI/internal/config"
	"github.com/venkateshgajul/SkillmapAI/internal/db"
	"github.com/venkateshgajul/SkillmapAI/internal/resume"
	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

// fakeDatabase is an in-memory Database for handler tests.
type fakeDatabase struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*db.User
	resumes  map[uuid.UUID]*db.Resume
	results  []db.SkillResult
	progress []db.ProgressLog

	// forcedErr, when set, is returned by every method.
	forcedErr error
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{
		users:   make(map[uuid.UUID]*db.User),
		resumes: make(map[uuid.UUID]*db.Resume),
	}
}

func (f *fakeDatabase) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	id := uuid.New()
	f.users[id] = &db.User{
		ID:               id,
		Name:             name,
		Email:            email,
		PasswordHash:     passwordHash,
		Role:             db.RoleUser,
		CompletedCourses: []string{},
		CreatedAt:        time.Now(),
	}
	return id, nil
}

func (f *fakeDatabase) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.users[userID], nil
}

func (f *fakeDatabase) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDatabase) AddCompletedCourse(_ context.Context, userID uuid.UUID, course string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	u := f.users[userID]
	for _, c := range u.CompletedCourses {
		if c == course {
			return u.CompletedCourses, nil
		}
	}
	u.CompletedCourses = append(u.CompletedCourses, course)
	return u.CompletedCourses, nil
}

func (f *fakeDatabase) RemoveCompletedCourse(_ context.Context, userID uuid.UUID, course string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	u := f.users[userID]
	kept := make([]string, 0, len(u.CompletedCourses))
	for _, c := range u.CompletedCourses {
		if c != course {
			kept = append(kept, c)
		}
	}
	u.CompletedCourses = kept
	return kept, nil
}

func (f *fakeDatabase) SaveResume(_ context.Context, userID uuid.UUID, fileName, extractedText string, extractedSkills []string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	id := uuid.New()
	f.resumes[id] = &db.Resume{
		ID:              id,
		UserID:          userID,
		FileName:        fileName,
		ExtractedText:   extractedText,
		ExtractedSkills: extractedSkills,
		UploadedAt:      time.Now(),
	}
	return id, nil
}

func (f *fakeDatabase) GetResume(_ context.Context, resumeID, userID uuid.UUID) (*db.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	rec, ok := f.resumes[resumeID]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeDatabase) ListResumes(_ context.Context, userID uuid.UUID, limit int) ([]db.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]db.Resume, 0)
	for _, rec := range f.resumes {
		if rec.UserID == userID && len(out) < limit {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeDatabase) SaveSkillResult(_ context.Context, userID uuid.UUID, resumeID *uuid.UUID, result *types.SkillGapResult) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return uuid.Nil, f.forcedErr
	}
	id := uuid.New()
	rec := db.SkillResult{
		ID:                   id,
		UserID:               userID,
		JobTitle:             result.JobTitle,
		CurrentSkills:        result.CurrentSkills,
		MissingSkills:        result.MissingSkills,
		SkillMatchPercentage: result.SkillMatchPercentage,
		RecommendedCourses:   result.RecommendedCourses,
		RecommendedProjects:  result.RecommendedProjects,
		AnalyzedAt:           time.Now(),
	}
	if resumeID != nil {
		rec.ResumeID = *resumeID
	}
	f.results = append(f.results, rec)
	return id, nil
}

func (f *fakeDatabase) ListSkillResults(_ context.Context, userID uuid.UUID, limit int) ([]db.SkillResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]db.SkillResult, 0)
	for _, rec := range f.results {
		if rec.UserID == userID && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDatabase) SaveProgressLog(_ context.Context, userID uuid.UUID, jobTitle string, percentage int, skillResultID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.progress = append(f.progress, db.ProgressLog{
		ID:                   uuid.New(),
		UserID:               userID,
		JobTitle:             jobTitle,
		SkillMatchPercentage: percentage,
		SkillResultID:        skillResultID,
		LoggedAt:             time.Now(),
	})
	return nil
}

func (f *fakeDatabase) ListProgressLogs(_ context.Context, userID uuid.UUID, limit int) ([]db.ProgressLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]db.ProgressLog, 0)
	for _, rec := range f.progress {
		if rec.UserID == userID && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDatabase) CountUsers(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	return len(f.users), nil
}

func (f *fakeDatabase) CountSkillResults(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	return len(f.results), nil
}

func (f *fakeDatabase) TopJobTitles(_ context.Context, limit int) ([]db.JobTitleCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	byTitle := make(map[string]int)
	for _, rec := range f.results {
		byTitle[rec.JobTitle]++
	}
	counts := make([]db.JobTitleCount, 0, len(byTitle))
	for title, count := range byTitle {
		counts = append(counts, db.JobTitleCount{JobTitle: title, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].JobTitle < counts[j].JobTitle
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

// newTestServer wires a Server around the fake database with the remote
// analysis paths disabled.
func newTestServer(t *testing.T, fake *fakeDatabase) *Server {
	t.Helper()

	s := &Server{
		database:  fake,
		store:     resume.NewStore(time.Minute, nil),
		analyzer:  analysis.New(nil),
		validator: validator.New(),
	}
	s.jwtService = NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	s.userService = NewUserService(fake, &config.PasswordConfig{BcryptCost: 10})
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	t.Cleanup(s.store.Stop)
	return s
}

// registerUser creates a user directly against the fake and returns its ID
// with a valid bearer token.
func registerUser(t *testing.T, s *Server, fake *fakeDatabase) (uuid.UUID, string) {
	t.Helper()

	hash, err := (&config.PasswordConfig{BcryptCost: 10}).HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	id, err := fake.CreateUser(context.Background(), "Test User", "test@example.com", hash)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := s.jwtService.GenerateToken(id)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return id, token
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, newFakeDatabase())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, newFakeDatabase())
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodOptions, "/api/analysis/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
