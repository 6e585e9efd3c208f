package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/venkateshgajul/SkillmapAI/internal/analysis"
	"github.com/venkateshgajul/SkillmapAI/internal/server/middleware"
	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

const (
	maxHistoryResults = 20
	maxProgressLogs   = 30
)

// handleJobList returns the preset job titles.
func (s *Server) handleJobList(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string][]string{"jobs": analysis.PresetJobTitles()})
}

// handleAnalyze runs a skill-gap analysis for a previously uploaded resume
// against a job title. Authenticated callers get the result and a progress
// sample persisted; anonymous callers get the result only.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		verr := &ErrValidation{Field: "body", Message: "resume_id and job_title are required"}
		errorResponse(w, HTTPStatus(verr), verr.Message)
		return
	}

	userID, authenticated := authenticatedUser(r)

	// Resolve the resume text: DB for identified users, staging store for
	// anonymous sessions.
	var (
		resumeText   string
		storedSkills []string
		resumeRef    *uuid.UUID
	)
	if authenticated {
		resumeID, err := uuid.Parse(req.ResumeID)
		if err != nil {
			errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
			return
		}
		rec, err := s.database.GetResume(r.Context(), resumeID, userID)
		if err != nil {
			errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
			return
		}
		if rec == nil {
			nf := &ErrResumeNotFound{ResumeID: req.ResumeID}
			errorResponse(w, HTTPStatus(nf), nf.Error())
			return
		}
		resumeText = rec.ExtractedText
		storedSkills = rec.ExtractedSkills
		resumeRef = &rec.ID
	} else {
		staged, ok := s.store.Get(req.ResumeID)
		if !ok {
			nf := &ErrResumeNotFound{ResumeID: req.ResumeID}
			errorResponse(w, HTTPStatus(nf), "Resume session expired. Please re-upload.")
			return
		}
		resumeText = staged.Text
		storedSkills = staged.Skills
	}

	result := s.analyzer.Analyze(r.Context(), resumeText, storedSkills, req.JobTitle)

	// Persistence is best effort: the analysis already completed and a
	// write failure must not take the result away from the caller.
	if authenticated {
		resultID, err := s.database.SaveSkillResult(r.Context(), userID, resumeRef, result)
		if err != nil {
			log.Printf("Failed to persist skill result: %v", err)
		} else {
			result.ResultID = resultID
			if err := s.database.SaveProgressLog(r.Context(), userID, result.JobTitle, result.SkillMatchPercentage, resultID); err != nil {
				log.Printf("Failed to persist progress log: %v", err)
			}
		}
	}

	jsonResponse(w, http.StatusOK, result)
}

// handleHistory returns the caller's recent analysis results.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	results, err := s.database.ListSkillResults(r.Context(), userID, maxHistoryResults)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to list results")
		return
	}
	jsonResponse(w, http.StatusOK, results)
}

// handleProgress returns the caller's progress samples in chronological order.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logs, err := s.database.ListProgressLogs(r.Context(), userID, maxProgressLogs)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to list progress")
		return
	}
	jsonResponse(w, http.StatusOK, logs)
}

func authenticatedUser(r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	return userID, err == nil
}
