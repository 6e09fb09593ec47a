package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/domain/matching"
)

func toBreakdownResponse(b matching.ScoreBreakdown) dto.ScoreBreakdownResponse {
	out := dto.ScoreBreakdownResponse{
		Total:          b.Total,
		WeightsVersion: b.WeightsVersion,
		Skills: dto.SkillsBreakdownResponse{
			Score:            b.Skills.Score,
			MaxScore:         b.Skills.MaxScore,
			MatchedRequired:  toSkillRefs(b.Skills.MatchedRequired),
			MissingRequired:  toSkillRefs(b.Skills.MissingRequired),
			MatchedPreferred: toSkillRefs(b.Skills.MatchedPreferred),
		},
		Languages: dto.LanguagesBreakdownResponse{
			Score:           b.Languages.Score,
			MaxScore:        b.Languages.MaxScore,
			MatchedRequired: toLanguageRefs(b.Languages.MatchedRequired),
			MissingRequired: toLanguageRefs(b.Languages.MissingRequired),
		},
		Location: dto.LocationBreakdownResponse{
			Score:              b.Location.Score,
			MaxScore:           b.Location.MaxScore,
			IsSameRegion:       b.Location.IsSameRegion,
			IsRemoteCompatible: b.Location.IsRemoteCompatible,
		},
		Experience: dto.ExperienceBreakdownResponse{
			Score:       b.Experience.Score,
			MaxScore:    b.Experience.MaxScore,
			SeekerYears: b.Experience.SeekerYears,
			RequiredMin: b.Experience.RequiredMin,
			RequiredMax: b.Experience.RequiredMax,
		},
		Education: dto.EducationBreakdownResponse{
			Score:         b.Education.Score,
			MaxScore:      b.Education.MaxScore,
			SeekerLevel:   b.Education.SeekerLevel.String(),
			RequiredLevel: b.Education.RequiredLevel.String(),
		},
		Accommodations: dto.AccommodationsBreakdownResponse{
			Score:     b.Accommodations.Score,
			MaxScore:  b.Accommodations.MaxScore,
			Evaluated: b.Accommodations.Evaluated,
		},
	}
	if b.Accommodations.Evaluated {
		out.Accommodations.MatchedTags = append([]string{}, b.Accommodations.MatchedTags...)
	}
	return out
}

func toSkillRefs(in []matching.SkillRef) []dto.SkillRefResponse {
	out := make([]dto.SkillRefResponse, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SkillRefResponse{SkillID: s.SkillID, SkillName: s.SkillName})
	}
	return out
}

func toLanguageRefs(in []matching.LanguageRef) []dto.LanguageRefResponse {
	out := make([]dto.LanguageRefResponse, 0, len(in))
	for _, l := range in {
		out = append(out, dto.LanguageRefResponse{LanguageID: l.LanguageID, LanguageName: l.LanguageName})
	}
	return out
}
