package latex

import (
	"strings"
	"testing"

	"resume-latex/resume/model"
)

func TestSectionsEmptyInputYieldsEmptyString(t *testing.T) {
	tests := []struct {
		name string
		got  string
	}{
		{name: "experience", got: ExperienceSection(nil)},
		{name: "education", got: EducationSection([]model.EducationEntry{})},
		{name: "skills", got: SkillsSection(nil)},
		{name: "languages", got: LanguagesSection([]model.LanguageEntry{})},
		{name: "references", got: ReferencesSection(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != "" {
				t.Fatalf("expected empty body, got %q", tt.got)
			}
		})
	}
}

func experience(title, company, location, start string, end *string, bullets ...string) model.ExperienceEntry {
	if bullets == nil {
		bullets = []string{}
	}
	return model.ExperienceEntry{
		Title:            strPtr(title),
		Company:          strPtr(company),
		Location:         strPtr(location),
		StartDate:        strPtr(start),
		EndDate:          end,
		Responsibilities: bullets,
	}
}

func education(degree, institution, location, start, end string) model.EducationEntry {
	return model.EducationEntry{
		Degree:      strPtr(degree),
		Institution: strPtr(institution),
		Location:    strPtr(location),
		StartDate:   strPtr(start),
		EndDate:     strPtr(end),
	}
}

func reference(name, relation, email string, phone *string) model.ReferenceEntry {
	return model.ReferenceEntry{Name: strPtr(name), Relation: strPtr(relation), Email: strPtr(email), Phone: phone}
}

func TestExperienceSection(t *testing.T) {
	got := ExperienceSection([]model.ExperienceEntry{
		experience("Engineer", "Acme", "Berlin", "2019", strPtr("2021"), "B", "A", "B"),
		experience("Lead", "Beta", "Paris", "2021", nil),
	})
	want := `\textbf{Engineer} at \textit{Acme}, Berlin \\{}` + "\n" +
		`2019 -- 2021 \\{}` + "\n" +
		`\begin{itemize}` + "\n" +
		`\item{} B` + "\n" + `\item{} A` + "\n" + `\item{} B` + "\n" +
		`\end{itemize}` + "\n\n" +
		`\textbf{Lead} at \textit{Beta}, Paris \\{}` + "\n" +
		`2021 -- Present`
	if got != want {
		t.Fatalf("ExperienceSection mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestExperienceSectionAcceptsEmptyRequiredText(t *testing.T) {
	got := ExperienceSection([]model.ExperienceEntry{experience("Engineer", "Acme", "", "2019", nil)})
	want := `\textbf{Engineer} at \textit{Acme},  \\{}` + "\n" + `2019 -- Present`
	if got != want {
		t.Fatalf("ExperienceSection = %q, want %q", got, want)
	}
}

func TestEducationSection(t *testing.T) {
	got := EducationSection([]model.EducationEntry{education("MSc", "ETH", "Zurich", "2015", "2017")})
	want := `\textbf{MSc} from \textit{ETH}, Zurich \\{}` + "\n" + `2015 -- 2017`
	if got != want {
		t.Fatalf("EducationSection mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestSkillsAndLanguagesSection(t *testing.T) {
	skills := SkillsSection([]model.SkillEntry{
		{Name: strPtr("Go"), Proficiency: strPtr("Advanced")},
		{Name: strPtr("C++")},
	})
	wantSkills := "\\begin{itemize}\n\\item{} Go (Advanced)\n\\item{} C++ (N/A)\n\\end{itemize}"
	if skills != wantSkills {
		t.Fatalf("SkillsSection = %q, want %q", skills, wantSkills)
	}

	langs := LanguagesSection([]model.LanguageEntry{{Name: strPtr("French"), Proficiency: strPtr("")}})
	wantLangs := "\\begin{itemize}\n\\item{} French ()\n\\end{itemize}"
	if langs != wantLangs {
		t.Fatalf("LanguagesSection = %q, want %q", langs, wantLangs)
	}
}

func TestReferencesSection(t *testing.T) {
	got := ReferencesSection([]model.ReferenceEntry{
		reference("Alan", "Colleague", "alan@example.com", strPtr("123")),
		reference("Joan", "Manager", "joan@example.com", nil),
	})
	want := "\\textbf{Alan} \\\\{}\nRelation: Colleague \\\\{}\nEmail: alan@example.com \\\\{}\nPhone: 123" +
		"\n\n" +
		"\\textbf{Joan} \\\\{}\nRelation: Manager \\\\{}\nEmail: joan@example.com \\\\{}\nPhone: N/A"
	if got != want {
		t.Fatalf("ReferencesSection mismatch\n got: %q\nwant: %q", got, want)
	}
}

// Text that starts with "[" must never directly follow \item or \\, where TeX
// would read it as an optional argument.
func TestSectionsGuardLeadingBracket(t *testing.T) {
	gpa := 3.5
	edu := education("BSc", "MIT", "Cambridge", "[2016]", "2020")
	edu.GPA = &gpa
	edu.Honors = strPtr("[cum laude]")

	tests := []struct {
		name string
		got  string
		want []string
	}{
		{
			name: "experience start date after line break",
			got:  ExperienceSection([]model.ExperienceEntry{experience("Eng", "Acme", "Remote", "[2020]", nil)}),
			want: []string{`Remote \\{}` + "\n" + `[2020] -- Present`},
		},
		{
			name: "responsibility after item",
			got:  ExperienceSection([]model.ExperienceEntry{experience("Eng", "Acme", "Remote", "2020", nil, "[Lead] shipped X")}),
			want: []string{`\item{} [Lead] shipped X`},
		},
		{
			name: "education start date after line break",
			got:  EducationSection([]model.EducationEntry{edu}),
			want: []string{`Cambridge \\{}` + "\n" + `[2016] -- 2020`, `Honors: [cum laude]`},
		},
		{
			name: "skill name after item",
			got:  SkillsSection([]model.SkillEntry{{Name: strPtr("[C++")}}),
			want: []string{`\item{} [C++ (N/A)`},
		},
		{
			name: "language name after item",
			got:  LanguagesSection([]model.LanguageEntry{{Name: strPtr("[Latin]"), Proficiency: strPtr("[basic]")}}),
			want: []string{`\item{} [Latin] ([basic])`},
		},
		{
			name: "reference name after line break",
			got:  ReferencesSection([]model.ReferenceEntry{reference("[Dr] Joan", "Manager", "j@example.com", strPtr("[ext] 12"))}),
			want: []string{`\textbf{[Dr] Joan} \\{}`, `Phone: [ext] 12`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.got, w) {
					t.Fatalf("expected %q in\n%s", w, tt.got)
				}
			}
			for _, bad := range []string{"\\item [", "\\\\\n[", "\\\\ ["} {
				if strings.Contains(tt.got, bad) {
					t.Fatalf("unguarded %q in\n%s", bad, tt.got)
				}
			}
		})
	}
}

func TestSectionsFoldBlankLinesInArguments(t *testing.T) {
	got := ExperienceSection([]model.ExperienceEntry{experience("Eng\n\nLead", "Acme\r\nCorp", "Remote", "2020", nil, "Line one\n\nLine two")})

	if strings.Contains(got, "\n\n") {
		t.Fatalf("blank line survived in %q", got)
	}
	for _, want := range []string{`\textbf{Eng Lead}`, `\textit{Acme Corp}`, `\item{} Line one Line two`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}
