package matching

import (
	"math"
	"strings"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/level"
	"talent-match/internal/domain/seeker"

	"github.com/google/uuid"
)

// Scorer computes match breakdowns. It holds a private copy of its weight
// table and no other state, so one instance is safe for concurrent use.
type Scorer struct {
	w Weights
}

func NewScorer(w *Weights) (*Scorer, error) {
	if w == nil {
		d := DefaultWeights()
		w = &d
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{w: *w}, nil
}

func (s *Scorer) Weights() Weights {
	return s.w
}

// Score validates both aggregates and returns the breakdown for the pair.
func (s *Scorer) Score(sk seeker.Aggregate, jb job.Aggregate) (ScoreBreakdown, error) {
	if err := sk.Validate(); err != nil {
		return ScoreBreakdown{}, err
	}
	if err := jb.Validate(); err != nil {
		return ScoreBreakdown{}, err
	}

	b := ScoreBreakdown{
		WeightsVersion: s.w.Version,
		Skills:         s.scoreSkills(sk, jb),
		Languages:      s.scoreLanguages(sk, jb),
		Location:       s.scoreLocation(sk, jb),
		Experience:     s.scoreExperience(sk, jb),
		Education:      s.scoreEducation(sk, jb),
		Accommodations: s.scoreAccommodations(sk, jb),
	}
	b.Total = b.Sum()
	return b, nil
}

func (s *Scorer) scoreSkills(sk seeker.Aggregate, jb job.Aggregate) SkillsBreakdown {
	maxScore := s.w.Skills
	out := SkillsBreakdown{
		CategoryScore:    CategoryScore{MaxScore: maxScore},
		MatchedRequired:  make([]SkillRef, 0),
		MissingRequired:  make([]SkillRef, 0),
		MatchedPreferred: make([]SkillRef, 0),
	}

	have := make(map[uuid.UUID]int, len(sk.Skills))
	for _, us := range sk.Skills {
		if us.SkillID == uuid.Nil {
			continue
		}
		if us.Proficiency > have[us.SkillID] {
			have[us.SkillID] = us.Proficiency
		}
	}

	required := uniqueSkills(jb.RequiredSkills)
	for _, r := range required {
		ref := SkillRef{SkillID: r.SkillID, SkillName: r.SkillName}
		if have[r.SkillID] >= r.MinimumProficiency {
			out.MatchedRequired = append(out.MatchedRequired, ref)
		} else {
			out.MissingRequired = append(out.MissingRequired, ref)
		}
	}

	preferred := uniqueSkills(jb.PreferredSkills)
	for _, r := range preferred {
		if have[r.SkillID] >= r.MinimumProficiency {
			out.MatchedPreferred = append(out.MatchedPreferred, SkillRef{SkillID: r.SkillID, SkillName: r.SkillName})
		}
	}

	requiredRatio := ratio(len(out.MatchedRequired), len(required), 1)
	preferredRatio := ratio(len(out.MatchedPreferred), len(preferred), 0)

	raw := requiredRatio*float64(maxScore) + preferredRatio*float64(s.w.PreferredSkillBonus)
	out.Score = clampInt(roundPoints(raw), 0, maxScore)
	return out
}

func (s *Scorer) scoreLanguages(sk seeker.Aggregate, jb job.Aggregate) LanguagesBreakdown {
	maxScore := s.w.Languages
	out := LanguagesBreakdown{
		CategoryScore:   CategoryScore{MaxScore: maxScore},
		MatchedRequired: make([]LanguageRef, 0),
		MissingRequired: make([]LanguageRef, 0),
	}

	have := make(map[uuid.UUID]level.Language, len(sk.Languages))
	for _, ul := range sk.Languages {
		if ul.LanguageID == uuid.Nil {
			continue
		}
		if ul.Level > have[ul.LanguageID] {
			have[ul.LanguageID] = ul.Level
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(jb.RequiredLanguages))
	required := 0
	for _, r := range jb.RequiredLanguages {
		if r.LanguageID == uuid.Nil {
			continue
		}
		if _, dup := seen[r.LanguageID]; dup {
			continue
		}
		seen[r.LanguageID] = struct{}{}
		required++

		ref := LanguageRef{LanguageID: r.LanguageID, LanguageName: r.LanguageName}
		if have[r.LanguageID] >= r.MinimumLevel {
			out.MatchedRequired = append(out.MatchedRequired, ref)
		} else {
			out.MissingRequired = append(out.MissingRequired, ref)
		}
	}

	out.Score = clampInt(roundPoints(ratio(len(out.MatchedRequired), required, 1)*float64(maxScore)), 0, maxScore)
	return out
}

func (s *Scorer) scoreLocation(sk seeker.Aggregate, jb job.Aggregate) LocationBreakdown {
	out := LocationBreakdown{CategoryScore: CategoryScore{MaxScore: s.w.Location}}

	sr, jr := sk.Profile.RegionID, jb.Job.RegionID
	out.IsSameRegion = sr != nil && jr != nil && *sr != uuid.Nil && *sr == *jr

	switch jb.Job.WorkModality {
	case job.ModalityRemote, job.ModalityHybrid:
		out.IsRemoteCompatible = jb.Job.IsRemoteAllowed
	case job.ModalityOnSite:
		out.IsRemoteCompatible = false
	}

	if out.IsSameRegion || out.IsRemoteCompatible {
		out.Score = s.w.Location
	}
	return out
}

func (s *Scorer) scoreExperience(sk seeker.Aggregate, jb job.Aggregate) ExperienceBreakdown {
	maxScore := s.w.Experience
	years := sk.Profile.YearsOfExperience
	out := ExperienceBreakdown{
		CategoryScore: CategoryScore{MaxScore: maxScore},
		SeekerYears:   years,
		RequiredMin:   jb.Job.YearsExperienceMin,
		RequiredMax:   jb.Job.YearsExperienceMax,
	}

	minYears := 0
	if jb.Job.YearsExperienceMin != nil {
		minYears = *jb.Job.YearsExperienceMin
	}
	hasMax := jb.Job.YearsExperienceMax != nil

	switch {
	case minYears <= 0 && !hasMax:
		out.Score = maxScore
	case years < minYears:
		out.Score = 0
	case !hasMax || years >= *jb.Job.YearsExperienceMax || *jb.Job.YearsExperienceMax <= minYears:
		out.Score = maxScore
	default:
		// meeting the minimum earns half, reaching the maximum earns full marks
		span := float64(*jb.Job.YearsExperienceMax - minYears)
		pos := float64(years-minYears) / span
		out.Score = clampInt(roundPoints(float64(maxScore)*(0.5+0.5*pos)), 0, maxScore)
	}
	return out
}

func (s *Scorer) scoreEducation(sk seeker.Aggregate, jb job.Aggregate) EducationBreakdown {
	maxScore := s.w.Education
	have := sk.HighestEducation()
	want := jb.Job.EducationLevel
	out := EducationBreakdown{
		CategoryScore: CategoryScore{MaxScore: maxScore},
		SeekerLevel:   have,
		RequiredLevel: want,
	}

	switch {
	case want <= level.EducationNone || have >= want:
		out.Score = maxScore
	case have == want-1:
		out.Score = clampInt(roundPoints(float64(maxScore)*float64(s.w.AdjacentEducationCredit)/100), 0, maxScore)
	default:
		out.Score = 0
	}
	return out
}

// scoreAccommodations credits the share of offered accommodations the seeker
// needs. It is only evaluated for a seeker who discloses needs; everyone else,
// and every job offering none, gets full marks. The category is therefore not
// monotone in disclosure: a disclosed need the job does not list scores 0
// where the same seeker undisclosed would score the maximum. Callers that rank
// by total should expect disclosure to lower a score at most by this weight.
func (s *Scorer) scoreAccommodations(sk seeker.Aggregate, jb job.Aggregate) AccommodationsBreakdown {
	maxScore := s.w.Accommodations
	out := AccommodationsBreakdown{CategoryScore: CategoryScore{MaxScore: maxScore}}

	d := sk.Disability
	if !sk.Preferences.ShowDisabilityInfo || d == nil || !d.RequiresAccommodations {
		out.Score = maxScore
		return out
	}
	out.Evaluated = true
	out.MatchedTags = make([]string, 0)

	offered := normalizeTags(jb.Job.Accommodations)
	if len(offered) == 0 {
		out.Score = maxScore
		return out
	}

	needs := make(map[string]struct{}, len(d.Accommodations))
	for _, t := range normalizeTags(d.Accommodations) {
		needs[t] = struct{}{}
	}
	for _, t := range offered {
		if _, ok := needs[t]; ok {
			out.MatchedTags = append(out.MatchedTags, t)
		}
	}

	out.Score = clampInt(roundPoints(ratio(len(out.MatchedTags), len(offered), 1)*float64(maxScore)), 0, maxScore)
	return out
}

func uniqueSkills(in []job.SkillRequirement) []job.SkillRequirement {
	seen := make(map[uuid.UUID]struct{}, len(in))
	out := make([]job.SkillRequirement, 0, len(in))
	for _, r := range in {
		if r.SkillID == uuid.Nil {
			continue
		}
		if _, ok := seen[r.SkillID]; ok {
			continue
		}
		seen[r.SkillID] = struct{}{}
		out = append(out, r)
	}
	return out
}

func normalizeTags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ratio returns matched/total, or empty when there is nothing to match against.
func ratio(matched, total int, empty float64) float64 {
	if total <= 0 {
		return empty
	}
	return float64(matched) / float64(total)
}

func roundPoints(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
