package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/venkateshgajul/SkillmapAI/internal/db"
	"github.com/venkateshgajul/SkillmapAI/internal/server/middleware"
)

// topJobTitles bounds the most-analyzed job titles aggregate.
const topJobTitles = 5

// AnalyticsResponse is the admin usage summary.
type AnalyticsResponse struct {
	TotalUsers    int                `json:"total_users"`
	TotalAnalyses int                `json:"total_analyses"`
	TopJobs       []db.JobTitleCount `json:"top_jobs"`
}

// requireAdmin rejects authenticated callers whose stored role is not admin.
// The role lives in the database, not in the token, so a promotion or
// demotion takes effect on the next request.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.userService.GetUser(r.Context(), userID)
		if err != nil {
			errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if user.Role != db.RoleAdmin {
			errorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}

		next(w, r)
	}
}

// handleAnalytics returns usage totals and the most-analyzed job titles,
// aggregated concurrently.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	var resp AnalyticsResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		count, err := s.database.CountUsers(ctx)
		if err != nil {
			return err
		}
		resp.TotalUsers = count
		return nil
	})
	g.Go(func() error {
		count, err := s.database.CountSkillResults(ctx)
		if err != nil {
			return err
		}
		resp.TotalAnalyses = count
		return nil
	})
	g.Go(func() error {
		jobs, err := s.database.TopJobTitles(ctx, topJobTitles)
		if err != nil {
			return err
		}
		resp.TopJobs = jobs
		return nil
	})

	if err := g.Wait(); err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to aggregate analytics")
		return
	}
	jsonResponse(w, http.StatusOK, resp)
}
