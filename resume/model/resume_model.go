package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the structured résumé accepted by POST /generate.
//
// Every text field is a pointer so that a missing key and an empty value stay
// distinct. Required text carries `binding:"required"`, which on a pointer only
// rejects nil: the key must be present (and not null) but may hold "".
// Optional text has no rule; nil means absent, "" means present but empty.
type ResumeRecord struct {
	Personal   PersonalInfo      `json:"personal_info" yaml:"personal_info"`
	Experience []ExperienceEntry `json:"experience" yaml:"experience" binding:"required,dive"`
	Education  []EducationEntry  `json:"education" yaml:"education" binding:"required,dive"`
	Skills     []SkillEntry      `json:"skills" yaml:"skills" binding:"required,dive"`
	Languages  []LanguageEntry   `json:"languages" yaml:"languages" binding:"required,dive"`
	References []ReferenceEntry  `json:"references" yaml:"references" binding:"required,dive"`
}

// PersonalInfo holds contact details and the optional objective statement.
type PersonalInfo struct {
	Name      *string `json:"name" yaml:"name" binding:"required"`
	Email     *string `json:"email" yaml:"email" binding:"required"`
	Phone     *string `json:"phone" yaml:"phone"`
	Address   *string `json:"address" yaml:"address"`
	LinkedIn  *string `json:"linkedin" yaml:"linkedin"`
	GitHub    *string `json:"github" yaml:"github"`
	Website   *string `json:"personal_website" yaml:"personal_website"`
	Objective *string `json:"objective" yaml:"objective"`
}

// ExperienceEntry is one position. A nil EndDate means the role is ongoing.
type ExperienceEntry struct {
	Title            *string  `json:"job_title" yaml:"job_title" binding:"required"`
	Company          *string  `json:"company" yaml:"company" binding:"required"`
	Location         *string  `json:"location" yaml:"location" binding:"required"`
	StartDate        *string  `json:"start_date" yaml:"start_date" binding:"required"`
	EndDate          *string  `json:"end_date" yaml:"end_date"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities" binding:"required"`
}

// EducationEntry is one degree or programme.
type EducationEntry struct {
	Degree      *string  `json:"degree" yaml:"degree" binding:"required"`
	Institution *string  `json:"institution" yaml:"institution" binding:"required"`
	Location    *string  `json:"location" yaml:"location" binding:"required"`
	StartDate   *string  `json:"start_date" yaml:"start_date" binding:"required"`
	EndDate     *string  `json:"end_date" yaml:"end_date" binding:"required"`
	GPA         *float64 `json:"gpa" yaml:"gpa"`
	Honors      *string  `json:"honors" yaml:"honors"`
}

// SkillEntry is a named skill with an optional proficiency.
type SkillEntry struct {
	Name        *string `json:"name" yaml:"name" binding:"required"`
	Proficiency *string `json:"proficiency" yaml:"proficiency"`
}

// LanguageEntry is a spoken language with an optional proficiency.
type LanguageEntry struct {
	Name        *string `json:"name" yaml:"name" binding:"required"`
	Proficiency *string `json:"proficiency" yaml:"proficiency"`
}

// ReferenceEntry is a professional reference.
type ReferenceEntry struct {
	Name     *string `json:"name" yaml:"name" binding:"required"`
	Relation *string `json:"relation" yaml:"relation" binding:"required"`
	Email    *string `json:"email" yaml:"email" binding:"required"`
	Phone    *string `json:"phone" yaml:"phone"`
}

// Counts summarises how many entries each section holds.
type Counts struct {
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
	Languages  int `json:"languages"`
	References int `json:"references"`
}

// Counts returns the number of entries per section.
func (r ResumeRecord) Counts() Counts {
	return Counts{
		Experience: len(r.Experience),
		Education:  len(r.Education),
		Skills:     len(r.Skills),
		Languages:  len(r.Languages),
		References: len(r.References),
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator configured with the same "binding"
// tag and JSON field names that gin uses for request binding.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.SetTagName("binding")
		v.RegisterTagNameFunc(jsonFieldName)
		validate = v
	})
	return validate
}

// Validate enforces required fields using the binding rules.
func (r ResumeRecord) Validate() error {
	err := Validator().Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("invalid resume: %s", strings.Join(FieldErrors(verrs), "; "))
	}
	return err
}

// FieldErrors renders validation failures as "path.to.field: tag" strings using
// JSON key names, e.g. "personal_info.name: required".
func FieldErrors(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s: %s", fieldPath(fe), fe.Tag()))
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
