package latex

import (
	"strings"

	"resume-latex/resume/model"
)

const (
	blockSeparator = "\n\n"
	itemSeparator  = "\n"

	// lineBreak ends a line with \\{}. The empty group stops a following "["
	// in user text from being read as the optional spacing argument.
	lineBreak = " \\\\{}\n"
)

// compose formats every entry and joins the fragments in input order.
// An empty slice yields "".
func compose[T any](entries []T, format func(T) string, sep string) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, entry := range entries {
		parts[i] = format(entry)
	}
	return strings.Join(parts, sep)
}

// itemize wraps items in an itemize environment. LaTeX rejects an environment
// without \item, so no items produce no markup at all.
func itemize(items string) string {
	if items == "" {
		return ""
	}
	return "\\begin{itemize}\n" + items + "\n\\end{itemize}"
}

// item emits \item{} so a leading "[" in the entry is not taken as a label.
func item(body string) string {
	return `\item{} ` + body
}

// ExperienceSection renders every position, separated by blank lines.
func ExperienceSection(entries []model.ExperienceEntry) string {
	return compose(entries, formatExperience, blockSeparator)
}

func formatExperience(e model.ExperienceEntry) string {
	var b strings.Builder
	b.WriteString(`\textbf{` + text(e.Title) + `} at \textit{` + text(e.Company) + `}, ` + text(e.Location))
	b.WriteString(lineBreak)
	b.WriteString(text(e.StartDate) + ` -- ` + Field(e.EndDate, Present))
	bullets := itemize(compose(e.Responsibilities, func(r string) string { return item(Escape(r)) }, itemSeparator))
	if bullets != "" {
		b.WriteString(lineBreak)
		b.WriteString(bullets)
	}
	return b.String()
}

// EducationSection renders every education entry, separated by blank lines.
func EducationSection(entries []model.EducationEntry) string {
	return compose(entries, formatEducation, blockSeparator)
}

func formatEducation(e model.EducationEntry) string {
	lines := []string{
		`\textbf{` + text(e.Degree) + `} from \textit{` + text(e.Institution) + `}, ` + text(e.Location),
		text(e.StartDate) + ` -- ` + text(e.EndDate),
	}
	if e.GPA != nil {
		lines = append(lines, "GPA: "+formatGPA(*e.GPA))
	}
	if e.Honors != nil {
		lines = append(lines, "Honors: "+Escape(*e.Honors))
	}
	return strings.Join(lines, lineBreak)
}

// SkillsSection renders one bullet per skill inside an itemize environment.
func SkillsSection(entries []model.SkillEntry) string {
	return itemize(compose(entries, func(s model.SkillEntry) string {
		return namedProficiency(s.Name, s.Proficiency)
	}, itemSeparator))
}

// LanguagesSection renders one bullet per language inside an itemize environment.
func LanguagesSection(entries []model.LanguageEntry) string {
	return itemize(compose(entries, func(l model.LanguageEntry) string {
		return namedProficiency(l.Name, l.Proficiency)
	}, itemSeparator))
}

func namedProficiency(name, proficiency *string) string {
	return item(text(name) + ` (` + Field(proficiency, NotAvailable) + `)`)
}

// ReferencesSection renders every reference, separated by blank lines.
func ReferencesSection(entries []model.ReferenceEntry) string {
	return compose(entries, formatReference, blockSeparator)
}

func formatReference(r model.ReferenceEntry) string {
	return strings.Join([]string{
		`\textbf{` + text(r.Name) + `}`,
		"Relation: " + text(r.Relation),
		"Email: " + text(r.Email),
		"Phone: " + Field(r.Phone, NotAvailable),
	}, lineBreak)
}
