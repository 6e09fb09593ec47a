package completeness

import (
	"strings"

	"talent-match/internal/domain/company"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/level"
	"talent-match/internal/domain/seeker"

	"github.com/google/uuid"
)

var seekerTable = MustTable("seeker_profile",
	Rule[seeker.Aggregate]{Field: "full_name", Weight: 10, Satisfied: func(a seeker.Aggregate) bool {
		return filled(a.Profile.FirstName) && filled(a.Profile.LastName)
	}},
	Rule[seeker.Aggregate]{Field: "phone", Weight: 5, Satisfied: func(a seeker.Aggregate) bool { return filled(a.Profile.Phone) }},
	Rule[seeker.Aggregate]{Field: "region", Weight: 10, Satisfied: func(a seeker.Aggregate) bool { return hasID(a.Profile.RegionID) }},
	Rule[seeker.Aggregate]{Field: "headline", Weight: 10, Satisfied: func(a seeker.Aggregate) bool { return filled(a.Profile.Headline) }},
	Rule[seeker.Aggregate]{Field: "bio", Weight: 10, Satisfied: func(a seeker.Aggregate) bool { return filled(a.Profile.Bio) }},
	Rule[seeker.Aggregate]{Field: "education", Weight: 15, Satisfied: func(a seeker.Aggregate) bool { return len(a.Profile.Education) > 0 }},
	Rule[seeker.Aggregate]{Field: "skills", Weight: 15, Satisfied: func(a seeker.Aggregate) bool { return len(a.Skills) >= 3 }},
	Rule[seeker.Aggregate]{Field: "languages", Weight: 10, Satisfied: func(a seeker.Aggregate) bool { return len(a.Languages) > 0 }},
	Rule[seeker.Aggregate]{Field: "experience", Weight: 10, Satisfied: func(a seeker.Aggregate) bool { return a.Profile.YearsOfExperience > 0 }},
	Rule[seeker.Aggregate]{Field: "cv", Weight: 5, Satisfied: func(a seeker.Aggregate) bool { return a.Profile.HasCV }},
)

var companyTable = MustTable("company_profile",
	Rule[company.Company]{Field: "name", Weight: 15, Satisfied: func(c company.Company) bool { return filled(c.Name) }},
	Rule[company.Company]{Field: "tax_id", Weight: 10, Satisfied: func(c company.Company) bool { return filled(c.TaxID) }},
	Rule[company.Company]{Field: "description", Weight: 15, Satisfied: func(c company.Company) bool { return filled(c.Description) }},
	Rule[company.Company]{Field: "website", Weight: 10, Satisfied: func(c company.Company) bool { return filled(c.Website) }},
	Rule[company.Company]{Field: "logo", Weight: 10, Satisfied: func(c company.Company) bool { return filled(c.LogoURL) }},
	Rule[company.Company]{Field: "region", Weight: 10, Satisfied: func(c company.Company) bool { return hasID(c.RegionID) }},
	Rule[company.Company]{Field: "address", Weight: 10, Satisfied: func(c company.Company) bool { return filled(c.Address) }},
	Rule[company.Company]{Field: "phone", Weight: 10, Satisfied: func(c company.Company) bool { return filled(c.Phone) }},
	Rule[company.Company]{Field: "email", Weight: 10, Satisfied: func(c company.Company) bool { return filled(c.Email) }},
)

var jobTable = MustTable("job_posting",
	Rule[job.Aggregate]{Field: "title", Weight: 15, Satisfied: func(a job.Aggregate) bool { return filled(a.Job.Title) }},
	Rule[job.Aggregate]{Field: "description", Weight: 15, Satisfied: func(a job.Aggregate) bool { return filled(a.Job.Description) }},
	Rule[job.Aggregate]{Field: "region", Weight: 10, Satisfied: func(a job.Aggregate) bool { return hasID(a.Job.RegionID) }},
	Rule[job.Aggregate]{Field: "salary_range", Weight: 10, Satisfied: func(a job.Aggregate) bool {
		return a.Job.SalaryMin != nil && a.Job.SalaryMax != nil
	}},
	Rule[job.Aggregate]{Field: "required_skills", Weight: 15, Satisfied: func(a job.Aggregate) bool { return len(a.RequiredSkills) > 0 }},
	Rule[job.Aggregate]{Field: "required_languages", Weight: 5, Satisfied: func(a job.Aggregate) bool { return len(a.RequiredLanguages) > 0 }},
	Rule[job.Aggregate]{Field: "experience_range", Weight: 10, Satisfied: func(a job.Aggregate) bool {
		return a.Job.YearsExperienceMin != nil || a.Job.YearsExperienceMax != nil
	}},
	Rule[job.Aggregate]{Field: "education_level", Weight: 5, Satisfied: func(a job.Aggregate) bool { return a.Job.EducationLevel > level.EducationNone }},
	Rule[job.Aggregate]{Field: "application_deadline", Weight: 10, Satisfied: func(a job.Aggregate) bool { return a.Job.ApplicationDeadline != nil }},
	Rule[job.Aggregate]{Field: "accommodations", Weight: 5, Satisfied: func(a job.Aggregate) bool { return len(a.Job.Accommodations) > 0 }},
)

func SeekerTable() Table[seeker.Aggregate] { return seekerTable }

func CompanyTable() Table[company.Company] { return companyTable }

func JobTable() Table[job.Aggregate] { return jobTable }

func Seeker(a seeker.Aggregate) int { return seekerTable.Compute(a) }

func Company(c company.Company) int { return companyTable.Compute(c) }

func Job(a job.Aggregate) int { return jobTable.Compute(a) }

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func hasID(id *uuid.UUID) bool {
	return id != nil && *id != uuid.Nil
}
