// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides iron://profile, iron://today, and iron://streak resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JaumCarvalho/iron-tracker/internal/analytics"
	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/progression"
	"github.com/JaumCarvalho/iron-tracker/internal/streak"
)

func (s *Server) registerResources() {
	// iron://profile - Profile dashboard: level, XP, streak, totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "iron://profile",
		Name:        "User Profile",
		Description: "Profile with level, XP progress, streak, and lifetime totals",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	// iron://today - Today's workouts and rest status
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "iron://today",
		Name:        "Today's Activity",
		Description: "Workouts logged today and whether today is a rest day",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// iron://streak - Streak with tier ladder context
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "iron://streak",
		Name:        "Workout Streak",
		Description: "Current streak, its tier, and the next tier threshold",
		MIMEType:    "application/json",
	}, s.handleStreakResource)
}

func marshalResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	user := s.store.User()
	history := s.store.History()
	current, needed := progression.LevelProgress(user.TotalXP)

	result := map[string]interface{}{
		"name":          user.Name,
		"level":         user.Level,
		"total_xp":      user.TotalXP,
		"level_xp":      current,
		"level_xp_goal": current + needed,
		"streak":        user.Streak,
		"tier":          streak.TierFor(user.Streak).Label,
		"totals": map[string]int{
			"workouts": len(history),
			"sets":     analytics.TotalSets(history),
		},
	}
	return marshalResource("iron://profile", result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.DayKey(s.store.Now())
	sessions := analytics.SessionsOn(s.store.History(), today)

	result := map[string]interface{}{
		"date":     today,
		"rest_day": s.store.RestDays().Has(today),
		"workouts": sessions,
		"counts": map[string]int{
			"workouts": len(sessions),
		},
	}
	return marshalResource("iron://today", result)
}

func (s *Server) handleStreakResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	user := s.store.User()
	tier := streak.TierFor(user.Streak)

	var next *streak.Tier
	for i := len(streak.Tiers) - 1; i >= 0; i-- {
		if streak.Tiers[i].Days > user.Streak {
			t := streak.Tiers[i]
			next = &t
			break
		}
	}

	result := map[string]interface{}{
		"streak": user.Streak,
		"tier":   tier.Label,
	}
	if next != nil {
		result["next_tier"] = next.Label
		result["days_to_next"] = next.Days - user.Streak
	}
	return marshalResource("iron://streak", result)
}
