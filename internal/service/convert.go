package service

import (
	"time"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/model"
)

// Shared model → DTO conversions.

func toGameResponse(g *model.Game) *dto.GameResponse {
	resp := &dto.GameResponse{
		ID:              g.GameID,
		Name:            g.Name,
		Description:     g.Description,
		PlayerCount:     g.PlayerCount,
		Duration:        g.Duration,
		DurationMinutes: g.BaseMinutes(),
		Variants:        g.Variants,
		Focuses:         make([]dto.TagResponse, 0, len(g.Focuses)),
		Materials:       make([]dto.TagResponse, 0, len(g.Materials)),
		Labels:          make([]dto.LabelResponse, 0, len(g.Labels)),
		Languages:       make([]dto.LanguageResponse, 0, len(g.Languages)),
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
	}
	for _, f := range g.Focuses {
		resp.Focuses = append(resp.Focuses, dto.TagResponse{ID: f.FocusID, Name: f.Name, Description: f.Description})
	}
	for _, m := range g.Materials {
		resp.Materials = append(resp.Materials, dto.TagResponse{ID: m.MaterialID, Name: m.Name, Description: m.Description})
	}
	for _, l := range g.Labels {
		resp.Labels = append(resp.Labels, dto.LabelResponse{ID: l.LabelID, Name: l.Name, Color: l.Color})
	}
	for _, l := range g.Languages {
		resp.Languages = append(resp.Languages, dto.LanguageResponse{ID: l.LanguageID, Code: l.Code, Name: l.Name})
	}
	return resp
}

func toSessionResponse(s *model.TrainingSession) *dto.SessionResponse {
	entries := make([]dto.SessionEntryResponse, 0, len(s.Entries))
	for i := range s.Entries {
		e := &s.Entries[i]
		entry := dto.SessionEntryResponse{
			ID:         e.EntryID,
			Position:   e.Position,
			Multiplier: e.Multiplier,
			Notes:      e.Notes,
		}
		if e.Game != nil {
			entry.Game = toGameResponse(e.Game)
		}
		entries = append(entries, entry)
	}

	return &dto.SessionResponse{
		ID:           s.SessionID,
		Name:         s.Name,
		Description:  s.Description,
		TotalMinutes: model.PlanTotalMinutes(model.PlanFromEntries(s.Entries)),
		Entries:      entries,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

func toSessionSummary(s *model.TrainingSession) dto.SessionSummaryResponse {
	return dto.SessionSummaryResponse{
		ID:           s.SessionID,
		Name:         s.Name,
		Description:  s.Description,
		GameCount:    len(s.Entries),
		TotalMinutes: model.PlanTotalMinutes(model.PlanFromEntries(s.Entries)),
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}

func toSuggestionResponse(s *model.Suggestion) *dto.SuggestionResponse {
	resp := &dto.SuggestionResponse{
		ID:             s.SuggestionID,
		Status:         s.Status,
		SubmittedBy:    s.SubmittedBy,
		SubmittedAt:    s.SubmittedAt.Format(time.RFC3339),
		ModeratorNotes: s.ModeratorNotes,
	}
	if s.Game != nil {
		resp.Game = toGameResponse(s.Game)
	}
	return resp
}
