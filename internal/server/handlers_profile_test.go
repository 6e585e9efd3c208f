package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venkateshgajul/SkillmapAI/internal/types"
)

func TestProfile_RequiresAuth(t *testing.T) {
	s := newTestServer(t, newFakeDatabase())

	rec := getJSON(t, s, "/api/profile", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile(t *testing.T) {
	fake := newFakeDatabase()
	s := newTestServer(t, fake)
	userID, token := registerUser(t, s, fake)

	result := &types.SkillGapResult{
		JobTitle:             "Backend Developer",
		CurrentSkills:        []string{"Python"},
		MissingSkills:        []string{"Docker"},
		SkillMatchPercentage: 10,
		RecommendedCourses:   []string{"c"},
		RecommendedProjects:  []string{"p"},
	}
	resultID, err := fake.SaveSkillResult(context.Background(), userID, nil, result)
	require.NoError(t, err)
	require.NoError(t, fake.SaveProgressLog(context.Background(), userID, "Backend Developer", 10, resultID))

	rec := getJSON(t, s, "/api/profile", token)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.User.ID)
	require.Len(t, resp.RecentResults, 1)
	assert.Equal(t, "Backend Developer", resp.RecentResults[0].JobTitle)
	require.Len(t, resp.ProgressLogs, 1)
	assert.Equal(t, 10, resp.ProgressLogs[0].SkillMatchPercentage)
}

func TestCompleteAndRemoveCourse(t *testing.T) {
	fake := newFakeDatabase()
	s := newTestServer(t, fake)
	_, token := registerUser(t, s, fake)

	rec := postJSON(t, s, "/api/profile/courses/complete", `{"course": "Docker course"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Docker course"}, resp["completed_courses"])

	// Completing the same course again keeps the set deduplicated.
	rec = postJSON(t, s, "/api/profile/courses/complete", `{"course": "Docker course"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Docker course"}, resp["completed_courses"])

	rec = postJSON(t, s, "/api/profile/courses/remove", `{"course": "Docker course"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp["completed_courses"])
}

func TestCompleteCourse_Validation(t *testing.T) {
	fake := newFakeDatabase()
	s := newTestServer(t, fake)
	_, token := registerUser(t, s, fake)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"missing course", `{}`},
		{"empty course", `{"course": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s, "/api/profile/courses/complete", tt.body, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCourseRoutes_RequireAuth(t *testing.T) {
	s := newTestServer(t, newFakeDatabase())

	rec := postJSON(t, s, "/api/profile/courses/complete", `{"course": "x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
