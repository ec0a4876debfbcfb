// Package latex synthesizes a LaTeX article from a résumé record.
//
// The layout is fixed: a constant preamble followed by the Personal Details,
// Experience, Education, Skills, Languages and References sections, always in
// that order. Every user-supplied string is escaped before it reaches the
// document, and absent optional fields are replaced by fixed fallbacks.
// All functions are pure and safe for concurrent use.
package latex

import (
	"strings"

	"resume-latex/resume/model"
)

// MIMEType is the media type of the synthesized document.
const MIMEType = "application/x-tex"

const preamble = `\documentclass[letterpaper,10pt]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[left=1in,right=1in,top=1in,bottom=1in]{geometry}
\usepackage{enumitem}
\usepackage{hyperref}

\begin{document}
`

const terminator = "\\end{document}\n"

// Section titles in document order.
const (
	SectionPersonal   = "Personal Details"
	SectionExperience = "Experience"
	SectionEducation  = "Education"
	SectionSkills     = "Skills"
	SectionLanguages  = "Languages"
	SectionReferences = "References"
)

// Synthesize renders the complete LaTeX document for rec. It is deterministic:
// equal records always produce byte-identical output.
func Synthesize(rec model.ResumeRecord) string {
	var b strings.Builder
	b.WriteString(preamble)
	writeSection(&b, SectionPersonal, PersonalSection(rec.Personal))
	writeSection(&b, SectionExperience, ExperienceSection(rec.Experience))
	writeSection(&b, SectionEducation, EducationSection(rec.Education))
	writeSection(&b, SectionSkills, SkillsSection(rec.Skills))
	writeSection(&b, SectionLanguages, LanguagesSection(rec.Languages))
	writeSection(&b, SectionReferences, ReferencesSection(rec.References))
	b.WriteString("\n")
	b.WriteString(terminator)
	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	b.WriteString("\n\\section*{")
	b.WriteString(title)
	b.WriteString("}\n")
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
}

// PersonalSection renders the contact block. Link slots fall back to the
// placeholder anchor, free-text slots to N/A, and the objective to "".
func PersonalSection(p model.PersonalInfo) string {
	return strings.Join([]string{
		"Name: " + text(p.Name),
		"Email: " + text(p.Email),
		"Phone: " + Field(p.Phone, NotAvailable),
		"Address: " + Field(p.Address, NotAvailable),
		`LinkedIn: \href{` + Link(p.LinkedIn) + `}{LinkedIn}`,
		`GitHub: \href{` + Link(p.GitHub) + `}{GitHub}`,
		`Website: \href{` + Link(p.Website) + `}{Website}`,
		"Objective: " + Field(p.Objective, ""),
	}, lineBreak)
}
