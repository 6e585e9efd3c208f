package server

import (
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/venkateshgajul/SkillmapAI/internal/analysis"
	"github.com/venkateshgajul/SkillmapAI/internal/resume"
	"github.com/venkateshgajul/SkillmapAI/internal/server/middleware"
)

const (
	textPreviewChars = 500
	maxListedResumes = 10
)

// UploadResponse is returned after a successful resume upload.
type UploadResponse struct {
	Success       bool     `json:"success"`
	ResumeID      string   `json:"resume_id"`
	FileName      string   `json:"file_name"`
	ExtractedText string   `json:"extracted_text"`
	CurrentSkills []string `json:"current_skills"`
	Temporary     bool     `json:"temporary,omitempty"`
}

// handleUploadResume accepts a multipart PDF upload, extracts and normalizes
// its text, extracts skills, and stores the resume: in the database for
// authenticated users, in the expiring staging store for anonymous ones.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, resume.MaxUploadBytes+4096)
	if err := r.ParseMultipartForm(resume.MaxUploadBytes); err != nil {
		errorResponse(w, http.StatusBadRequest, "No file uploaded or file too large")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	if !resume.IsPDF(data) {
		errorResponse(w, http.StatusBadRequest, "Only PDF files allowed")
		return
	}

	rawText, err := resume.ExtractText(data)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	text := analysis.Normalize(rawText)

	skills := s.analyzer.ExtractSkills(r.Context(), text)

	resp := UploadResponse{
		Success:       true,
		FileName:      header.Filename,
		ExtractedText: previewText(text),
		CurrentSkills: skills,
	}

	if userID, err := middleware.GetUserID(r); err == nil {
		id, err := s.database.SaveResume(r.Context(), userID, header.Filename, text, skills)
		if err != nil {
			errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
			return
		}
		resp.ResumeID = id.String()
	} else {
		resp.ResumeID = s.store.Put(resume.Staged{
			FileName: header.Filename,
			Text:     text,
			Skills:   skills,
		})
		resp.Temporary = true
	}

	jsonResponse(w, http.StatusOK, resp)
}

// handleListResumes returns the caller's recent resumes without text bodies.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.database.ListResumes(r.Context(), userID, maxListedResumes)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns one of the caller's resumes, including text.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	rec, err := s.database.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if rec == nil {
		nf := &ErrResumeNotFound{ResumeID: resumeID.String()}
		errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	jsonResponse(w, http.StatusOK, rec)
}

func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= textPreviewChars {
		return text
	}
	return string(runes[:textPreviewChars]) + "..."
}
