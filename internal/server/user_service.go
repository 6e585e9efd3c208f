package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/venkateshgajul/SkillmapAI/internal/config"
	"github.com/venkateshgajul/SkillmapAI/internal/db"
	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

// Database is the persistence surface the server depends on. *db.DB
// satisfies it; tests substitute a fake.
type Database interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	AddCompletedCourse(ctx context.Context, userID uuid.UUID, course string) ([]string, error)
	RemoveCompletedCourse(ctx context.Context, userID uuid.UUID, course string) ([]string, error)

	SaveResume(ctx context.Context, userID uuid.UUID, fileName, extractedText string, extractedSkills []string) (uuid.UUID, error)
	GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]db.Resume, error)

	SaveSkillResult(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID, result *types.SkillGapResult) (uuid.UUID, error)
	ListSkillResults(ctx context.Context, userID uuid.UUID, limit int) ([]db.SkillResult, error)

	SaveProgressLog(ctx context.Context, userID uuid.UUID, jobTitle string, percentage int, skillResultID uuid.UUID) error
	ListProgressLogs(ctx context.Context, userID uuid.UUID, limit int) ([]db.ProgressLog, error)

	CountUsers(ctx context.Context) (int, error)
	CountSkillResults(ctx context.Context) (int, error)
	TopJobTitles(ctx context.Context, limit int) ([]db.JobTitleCount, error)
}

// UserService provides registration, login and profile lookup.
type UserService struct {
	database Database
	password *config.PasswordConfig
}

// NewUserService creates a new UserService.
func NewUserService(database Database, password *config.PasswordConfig) *UserService {
	return &UserService{database: database, password: password}
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	existing, err := s.database.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.database.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		return nil, err
	}

	user, err := s.database.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: id}
	}
	return toAPIUser(user), nil
}

// Login verifies credentials and returns the user profile.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.database.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.password.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return toAPIUser(user), nil
}

// GetUser returns the profile for a user ID.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := s.database.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toAPIUser(user), nil
}

func toAPIUser(u *db.User) *types.User {
	courses := u.CompletedCourses
	if courses == nil {
		courses = []string{}
	}
	return &types.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		CompletedCourses: courses,
		CreatedAt:        u.CreatedAt,
	}
}
