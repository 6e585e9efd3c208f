package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/venkateshgajul/SkillmapAI/internal/db"
	"github.com/venkateshgajul/SkillmapAI/internal/server/middleware"
	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

const (
	profileRecentResults = 5
	profileProgressLogs  = 10
)

// ProfileResponse bundles the user with their recent activity.
type ProfileResponse struct {
	User          *types.User      `json:"user"`
	RecentResults []db.SkillResult `json:"recent_results"`
	ProgressLogs  []db.ProgressLog `json:"progress_logs"`
}

// handleProfile returns the caller's profile with recent results and
// progress samples, fetched concurrently.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var resp ProfileResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		user, err := s.userService.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		resp.User = user
		return nil
	})
	g.Go(func() error {
		results, err := s.database.ListSkillResults(ctx, userID, profileRecentResults)
		if err != nil {
			return err
		}
		resp.RecentResults = results
		return nil
	})
	g.Go(func() error {
		logs, err := s.database.ListProgressLogs(ctx, userID, profileProgressLogs)
		if err != nil {
			return err
		}
		resp.ProgressLogs = logs
		return nil
	})

	if err := g.Wait(); err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, resp)
}

// handleCompleteCourse marks a recommended course as completed.
func (s *Server) handleCompleteCourse(w http.ResponseWriter, r *http.Request) {
	s.updateCourses(w, r, s.database.AddCompletedCourse)
}

// handleRemoveCourse removes a course from the completed set.
func (s *Server) handleRemoveCourse(w http.ResponseWriter, r *http.Request) {
	s.updateCourses(w, r, s.database.RemoveCompletedCourse)
}

func (s *Server) updateCourses(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, userID uuid.UUID, course string) ([]string, error)) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		verr := &ErrValidation{Field: "course", Message: "Course name required"}
		errorResponse(w, HTTPStatus(verr), verr.Message)
		return
	}

	courses, err := update(r.Context(), userID, req.Course)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to update courses")
		return
	}
	jsonResponse(w, http.StatusOK, map[string][]string{"completed_courses": courses})
}
