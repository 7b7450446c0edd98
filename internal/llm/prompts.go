package llm

import "fmt"

// PromptContext carries the user-supplied form fields a prompt builder may
// use. Each builder reads only the fields relevant to its feature.
type PromptContext struct {
	JobRole        string
	CompanyName    string
	JobDescription string
	Location       string
	PriorAnswer    string
	PriorQuestion  string
}

// PromptBuilder maps extracted resume text and request fields to a prompt
// requesting a specific JSON shape.
type PromptBuilder func(resumeText string, pc PromptContext) string

// Truncate caps s at n bytes. Upstream cost and latency grow with prompt
// length, so every builder caps its resume excerpt.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// AnalyzePrompt requests the full ATS analysis shape.
func AnalyzePrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`Resume: """%s"""
Role: "%s"

ANALYZE THIS RESUME FOR %s. RETURN STRICT JSON ONLY.

CRITICAL INSTRUCTIONS:
- Provide 5-7 CONCISE strengths and 5-7 CONCISE areas for improvement
- Each point should be ONE SHORT SENTENCE (max 15 words)
- Be specific and use numbers/metrics when possible
- Focus on most impactful observations only
- Use professional but brief language

{
  "candidateName": "Extract name",
  "location": "Extract preferred or current location",
  "atsScore": 85,
  "jobMatchScore": 75,
  "roleSuitability": "High Match",
  "summary": "Concise 2-sentence summary of candidate's fit for %s.",
  "mobileAnalysis": {
     "superpowers": ["Strength 1", "Strength 2", "Strength 3", "Strength 4", "Strength 5"],
     "demerits": ["Improvement 1", "Improvement 2", "Improvement 3", "Improvement 4", "Improvement 5"]
  },
  "missingSkills": ["Skill 1", "Skill 2", "Tool", "Framework", "Methodology"],
  "sectionAnalysis": {
      "formatting": "Professional",
      "experience": "Strong",
      "skills": "Good",
      "education": "Clear"
  },
  "recommendedCourses": [
     { "title": "Exact real course title on specific skill gap", "platform": "Coursera/Udemy/EdX", "focus": "Fixes [Specific Missing Skill]" },
     { "title": "Another top-rated course for role", "platform": "Coursera/Udemy/EdX", "focus": "Mastering [Key Technology]" },
     { "title": "Advanced certification for %s", "platform": "Coursera/Udemy/EdX", "focus": "Professional Certification" }
  ]
}`, Truncate(resumeText, 1500), pc.JobRole, pc.JobRole, pc.JobRole, pc.JobRole)
}

// RewritePrompt requests an elite rewrite of the whole resume.
func RewritePrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`Rewrite this resume to drastically improve its impact for a %s position.
Use strong action verbs (Achieved, Spearheaded, Engineered).
Quantify impact where possible (e.g., "Improved performance by 30%%").
Fix all grammar and flow issues.
Keep the same structure but upgrade the content to be elite (Top 1%% candidate).

Resume Text:
%s

Return strictly valid JSON:
{
  "rewritten": "Full markdown text of the improved resume..."
}`, pc.JobRole, Truncate(resumeText, 3000))
}

// CoverLetterPrompt requests a cover letter for the target company.
func CoverLetterPrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`Write a compelling cover letter for "%s".
Job Description: %s
Resume: %s

Return JSON:
{
  "coverLetter": "Dear Hiring Manager..."
}`, pc.CompanyName, pc.JobDescription, Truncate(resumeText, 2000))
}

// InterviewPrompt has two modes: STAR feedback when a prior answer was
// supplied, otherwise question generation from the resume and job description.
func InterviewPrompt(resumeText string, pc PromptContext) string {
	if pc.PriorAnswer != "" {
		return fmt.Sprintf(`Analyze this interview answer using the STAR Method (Situation, Task, Action, Result).
Question: "%s"
Candidate Answer: "%s"

Return JSON:
{
  "starAnalysis": {
    "situation": "Strong/Weak/Missing - Feedback",
    "task": "Strong/Weak/Missing - Feedback",
    "action": "Strong/Weak/Missing - Feedback",
    "result": "Strong/Weak/Missing - Feedback"
  },
  "overallFeedback": "One sentence summary.",
  "improvedAnswer": "A rewrite of their answer using the STAR method."
}`, pc.PriorQuestion, pc.PriorAnswer)
	}

	jdSection := ""
	if pc.JobDescription != "" {
		jdSection = fmt.Sprintf("Strictly base questions on this Job Description:\n%s\n", pc.JobDescription)
	}
	return fmt.Sprintf(`Generate 5 highly relevant technical and behavioral interview questions for a "%s" role.
%sResume Context: %s

Return JSON:
{
  "preparation": {
      "commonQuestions": [
          { "question": "Question 1?", "answer": "Suggested answer based on user skills..." },
          { "question": "Question 2?", "answer": "Suggested answer..." },
          { "question": "Question 3?", "answer": "Suggested answer..." },
          { "question": "Question 4?", "answer": "Suggested answer..." },
          { "question": "Question 5?", "answer": "Suggested answer..." }
      ]
  }
}`, pc.JobRole, jdSection, Truncate(resumeText, 2000))
}

// TailorPrompt requests a match analysis against a specific job description.
func TailorPrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`Analyze the match between this resume and the provided Job Description.
JD: %s
Resume: %s

Return strictly valid JSON:
{
  "matchScore": 75,
  "matchAnalysis": "A detailed paragraph explaining how well the resume matches this specific JD.",
  "matchingKeywords": ["Keyword 1", "Keyword 2", "Skill 1"],
  "missingKeywords": ["Missing Skill 1", "Missing Skill 2"],
  "adjustmentsNeeded": ["Specific suggestion 1", "Specific suggestion 2"]
}`, pc.JobDescription, Truncate(resumeText, 3000))
}

// SkillsPrompt requests a skills gap analysis for the target role.
func SkillsPrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`Perform a detailed Skills Gap Analysis for the role of "%s" based on this resume.
Resume: %s

Return strictly valid JSON:
{
  "currentProficiency": "Beginner/Intermediate/Advanced",
  "topSkillsFound": ["Skill 1", "Skill 2"],
  "criticalGaps": ["Critical Skill 1", "Critical Skill 2"],
  "learningPath": ["Step 1: Learn X", "Step 2: Build Y"],
  "certificationSuggestions": ["Cert 1", "Cert 2"]
}`, pc.JobRole, Truncate(resumeText, 3000))
}

// RoastPrompt requests a brutal critique with a burn score.
func RoastPrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`You are a brutal, sarcastic, and highly critical senior recruiter who has seen thousands of bad resumes.
Your task is to ROAST this resume for the role of "%s".
Be mean, be funny, be constructive but ruthless.
Point out cliches, vague statements, bad formatting, and lack of impact.

Resume Text: %s

Return strictly valid JSON with this structure:
{
  "roast": "Your brutal 3-paragraph roast here...",
  "burnScore": 85
}`, pc.JobRole, Truncate(resumeText, 3000))
}

// SalaryPrompt requests a market salary estimate.
func SalaryPrompt(resumeText string, pc PromptContext) string {
	return fmt.Sprintf(`Resume & Role: "%s" (fallback to resume text if generic).
Resume Preview: "%s"

TASK: Estimate the market salary range for this candidate based on their experience level implied in the text and the target role of "%s". Infer the location from the text or assume Global Remote.

RETURN JSON STRICTLY:
{
    "estimation": {
        "salaryRange": { "min": "$Xk", "max": "$Yk", "currency": "USD/INR" },
        "experienceLevel": "Junior/Mid/Senior",
        "locationFactors": { "marketDemand": "High/Med/Low", "location": "Detected Location" },
        "explanation": "Brief explanation of why this range."
    }
}`, pc.JobRole, Truncate(resumeText, 1000), pc.JobRole)
}

// LinkedInPrompt requests optimized LinkedIn profile content.
func LinkedInPrompt(resumeText string, pc PromptContext) string {
	_ = pc
	return fmt.Sprintf(`Resume Content: "%s"

TASK: Act as a LinkedIn Expert. Analyze the resume and generate optimized LinkedIn profile content.

RETURN JSON OBJECT ONLY:
{
    "headline": "Professional Headline (max 220 chars)",
    "about": "Engaging About section (first person, 3-4 paragraphs, storytelling approach)",
    "experiencePoints": [
        { "role": "Latest Role Title", "bullets": ["Optimized bullet 1", "Optimized bullet 2"] }
    ],
    "skillsToPin": ["Skill 1", "Skill 2", "Skill 3"],
    "networkingMessage": "Template message for networking connection requests"
}`, Truncate(resumeText, 3000))
}
