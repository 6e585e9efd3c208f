package llm

import (
	"fmt"
	"strings"
)

// promptTextLimit bounds how much resume text is sent per request.
const promptTextLimit = 4000

const extractSkillsPrompt = `You are a resume parser. Extract all technical and soft skills from the resume text.
Return ONLY valid JSON with no explanation, no markdown. Format: {"current_skills": ["skill1","skill2"]}

Resume:
%s`

const requiredSkillsPrompt = `Return ONLY valid JSON with no explanation. Format: {"required_skills": ["skill1","skill2"]}. List 8-12 essential skills for the given job title.

Job title: %s`

const analyzeGapPrompt = `Analyze resume text and compare with required skills for job title: %[1]s.
Return ONLY valid JSON with no explanation, no markdown:
{
  "job_title": "%[1]s",
  "current_skills": [],
  "missing_skills": [],
  "skill_match_percentage": 0,
  "recommended_courses": [],
  "recommended_projects": []
}
Rules:
- current_skills: skills found in resume
- missing_skills: required skills NOT in resume (from list: %[2]s)
- skill_match_percentage: integer 0-100
- recommended_courses: 4-6 specific online course names/platforms for missing skills
- recommended_projects: 3-5 project ideas to build missing skills
No extra text. No markdown. Pure JSON only.

Resume:
%[3]s

Required Skills: %[2]s`

func buildExtractSkillsPrompt(resumeText string) string {
	return fmt.Sprintf(extractSkillsPrompt, TruncateRunes(resumeText, promptTextLimit))
}

func buildRequiredSkillsPrompt(jobTitle string) string {
	return fmt.Sprintf(requiredSkillsPrompt, jobTitle)
}

func buildAnalyzeGapPrompt(resumeText, jobTitle string, requiredSkills []string) string {
	required := strings.Join(requiredSkills, ", ")
	if required == "" {
		required = "analyze from context"
	}
	return fmt.Sprintf(analyzeGapPrompt, jobTitle, required, TruncateRunes(resumeText, promptTextLimit))
}
