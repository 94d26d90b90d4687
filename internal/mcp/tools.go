// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Exposes logging, streak, analytics, and template operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JaumCarvalho/iron-tracker/internal/analytics"
	"github.com/JaumCarvalho/iron-tracker/internal/exercises"
	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/progression"
	"github.com/JaumCarvalho/iron-tracker/internal/streak"
)

func (s *Server) registerTools() {
	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current workout streak and its tier",
	}, s.handleGetStreak)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user profile (name, level, XP, streak)",
	}, s.handleGetProfile)

	// toggle_rest_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_rest_day",
		Description: "Mark or unmark a calendar day as intentional rest",
	}, s.handleToggleRestDay)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a completed workout with exercises and sets",
	}, s.handleLogWorkout)

	// list_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List recent workout sessions",
	}, s.handleListHistory)

	// exercise_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_series",
		Description: "Get the historical series and stats for one exercise",
	}, s.handleExerciseSeries)

	// muscle_distribution
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "muscle_distribution",
		Description: "Get completed-set distribution across muscle groups",
	}, s.handleMuscleDistribution)

	// cardio_breakdown
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cardio_breakdown",
		Description: "Get cardio distance and time totals per activity",
	}, s.handleCardioBreakdown)

	// list_templates
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List saved workout templates",
	}, s.handleListTemplates)

	// save_template
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_template",
		Description: "Create or update a workout template",
	}, s.handleSaveTemplate)

	// delete_template
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_template",
		Description: "Delete a workout template by ID",
	}, s.handleDeleteTemplate)
}

// Tool input/output types

type streakOutput struct {
	Streak int    `json:"streak"`
	Tier   string `json:"tier"`
}

type toggleRestDayInput struct {
	Day string `json:"day" jsonschema:"Calendar day (YYYY-MM-DD)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type setInput struct {
	Weight   float64 `json:"weight,omitempty" jsonschema:"Weight in kg (strength sets)"`
	Reps     int     `json:"reps,omitempty" jsonschema:"Repetitions (strength sets)"`
	Distance float64 `json:"distance,omitempty" jsonschema:"Distance in km (cardio sets)"`
	Minutes  float64 `json:"minutes,omitempty" jsonschema:"Duration in minutes (cardio sets)"`
}

type exerciseInput struct {
	Name  string     `json:"name" jsonschema:"Exercise name"`
	Group string     `json:"group,omitempty" jsonschema:"Muscle group (Peito, Costas, Pernas, Ombros, Braços, Abdômen, Cardio, Outros); looked up from the catalog when omitted"`
	Sets  []setInput `json:"sets" jsonschema:"Performed sets"`
}

type logWorkoutInput struct {
	Date            string          `json:"date,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	DurationMinutes int             `json:"duration_minutes,omitempty" jsonschema:"Workout duration in minutes"`
	Exercises       []exerciseInput `json:"exercises" jsonschema:"Exercises performed"`
}

type logWorkoutOutput struct {
	ID       string `json:"id"`
	XPEarned int    `json:"xp_earned"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
	Message  string `json:"message"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type rangeInput struct {
	Range  string `json:"range,omitempty" jsonschema:"Time range: 7d, 30d, 1y, or all (default 30d)"`
	Anchor string `json:"anchor,omitempty" jsonschema:"Anchor day (YYYY-MM-DD), defaults to today"`
}

type exerciseSeriesInput struct {
	Name   string `json:"name" jsonschema:"Exercise name"`
	Range  string `json:"range,omitempty" jsonschema:"Time range: 7d, 30d, 1y, or all (default 30d)"`
	Anchor string `json:"anchor,omitempty" jsonschema:"Anchor day (YYYY-MM-DD), defaults to today"`
}

type templateExerciseInput struct {
	Name  string `json:"name" jsonschema:"Exercise name"`
	Group string `json:"group,omitempty" jsonschema:"Muscle group; looked up from the catalog when omitted"`
	Sets  int    `json:"sets" jsonschema:"Target set count"`
	Reps  string `json:"reps,omitempty" jsonschema:"Target rep range, e.g. 8-12"`
}

type saveTemplateInput struct {
	ID        string                  `json:"id,omitempty" jsonschema:"Template ID; omit to create"`
	Name      string                  `json:"name" jsonschema:"Template name"`
	Color     string                  `json:"color,omitempty" jsonschema:"Display color"`
	Exercises []templateExerciseInput `json:"exercises" jsonschema:"Planned exercises"`
}

type deleteTemplateInput struct {
	ID string `json:"id" jsonschema:"Template ID"`
}

// Tool handlers

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, streakOutput, error) {
	user := s.store.User()
	return nil, streakOutput{
		Streak: user.Streak,
		Tier:   streak.TierFor(user.Streak).Label,
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	user := s.store.User()
	current, needed := progression.LevelProgress(user.TotalXP)
	return nil, map[string]interface{}{
		"name":          user.Name,
		"level":         user.Level,
		"total_xp":      user.TotalXP,
		"level_xp":      current,
		"level_xp_goal": current + needed,
		"streak":        user.Streak,
		"tier":          streak.TierFor(user.Streak).Label,
	}, nil
}

func (s *Server) handleToggleRestDay(ctx context.Context, req *mcp.CallToolRequest, input toggleRestDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	if _, err := time.Parse("2006-01-02", input.Day); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid day %q: use YYYY-MM-DD", input.Day)
	}

	marked, err := s.store.ToggleRestDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle rest day: %w", err)
	}

	verb := "unmarked"
	if marked {
		verb = "marked"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Rest day %s: %s (streak: %d)", verb, input.Day, s.store.User().Streak),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	date := s.store.Now()
	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		}
		if err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("invalid date %q", input.Date)
		}
		date = t
	}

	logs := make([]models.ExerciseLog, 0, len(input.Exercises))
	for _, ex := range input.Exercises {
		group := models.MuscleGroup(ex.Group)
		if ex.Group == "" {
			group = exercises.GroupOf(ex.Name)
		} else if !models.IsValidGroup(group) {
			return nil, logWorkoutOutput{}, fmt.Errorf("unknown muscle group: %s", ex.Group)
		}

		sets := make([]models.Set, 0, len(ex.Sets))
		for i, st := range ex.Sets {
			if group.IsCardio() {
				if st.Distance < 0 || st.Minutes < 0 {
					return nil, logWorkoutOutput{}, fmt.Errorf("%s set %d: values must not be negative", ex.Name, i+1)
				}
				if st.Distance == 0 && st.Minutes == 0 {
					return nil, logWorkoutOutput{}, fmt.Errorf("%s set %d: distance or duration required", ex.Name, i+1)
				}
				sets = append(sets, models.NewCardioSet(st.Distance, st.Minutes))
			} else {
				if st.Weight <= 0 {
					return nil, logWorkoutOutput{}, fmt.Errorf("%s set %d: weight must be positive", ex.Name, i+1)
				}
				if st.Reps <= 0 {
					return nil, logWorkoutOutput{}, fmt.Errorf("%s set %d: reps must be positive", ex.Name, i+1)
				}
				sets = append(sets, models.NewStrengthSet(st.Weight, st.Reps))
			}
		}
		logs = append(logs, models.ExerciseLog{Name: ex.Name, Group: group, Sets: sets})
	}

	xp := progression.XPForSession(logs)
	w := models.NewWorkoutSession(date, input.DurationMinutes*60, logs, xp)
	if err := s.store.AddWorkout(w); err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	user := s.store.User()
	return nil, logWorkoutOutput{
		ID:       w.ID,
		XPEarned: xp,
		Level:    user.Level,
		Streak:   user.Streak,
		Message:  fmt.Sprintf("Logged workout: %d exercises, +%d XP (level %d, streak %d)", len(logs), xp, user.Level, user.Streak),
	}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	history := s.store.History()
	if len(history) > input.Limit {
		history = history[:input.Limit]
	}
	if len(history) == 0 {
		return nil, map[string]interface{}{"message": "No workouts recorded."}, nil
	}
	return nil, history, nil
}

func (s *Server) parseRangeInput(rngStr, anchorStr string) (analytics.TimeRange, time.Time, error) {
	if rngStr == "" {
		rngStr = "30d"
	}
	rng, err := analytics.ParseRange(rngStr)
	if err != nil {
		return rng, time.Time{}, err
	}

	anchor := s.store.Now()
	if anchorStr != "" {
		anchor, err = time.ParseInLocation("2006-01-02", anchorStr, time.Local)
		if err != nil {
			return rng, time.Time{}, fmt.Errorf("invalid anchor %q: use YYYY-MM-DD", anchorStr)
		}
	}
	return rng, anchor, nil
}

func (s *Server) handleExerciseSeries(ctx context.Context, req *mcp.CallToolRequest, input exerciseSeriesInput) (*mcp.CallToolResult, any, error) {
	rng, anchor, err := s.parseRangeInput(input.Range, input.Anchor)
	if err != nil {
		return nil, nil, err
	}
	return nil, analytics.ExerciseSeries(s.store.History(), input.Name, rng, anchor), nil
}

func (s *Server) handleMuscleDistribution(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	rng, anchor, err := s.parseRangeInput(input.Range, input.Anchor)
	if err != nil {
		return nil, nil, err
	}
	return nil, analytics.MuscleDistribution(s.store.History(), rng, anchor), nil
}

func (s *Server) handleCardioBreakdown(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	rng, anchor, err := s.parseRangeInput(input.Range, input.Anchor)
	if err != nil {
		return nil, nil, err
	}
	return nil, analytics.CardioBreakdown(s.store.History(), rng, anchor), nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	templates := s.store.Templates()
	if len(templates) == 0 {
		return nil, map[string]interface{}{"message": "No templates saved."}, nil
	}
	return nil, templates, nil
}

func (s *Server) handleSaveTemplate(ctx context.Context, req *mcp.CallToolRequest, input saveTemplateInput) (*mcp.CallToolResult, any, error) {
	if input.Name == "" {
		return nil, nil, fmt.Errorf("template name is required")
	}

	t := models.WorkoutTemplate{
		ID:    input.ID,
		Name:  input.Name,
		Color: input.Color,
	}
	for _, ex := range input.Exercises {
		group := models.MuscleGroup(ex.Group)
		if ex.Group == "" {
			group = exercises.GroupOf(ex.Name)
		} else if !models.IsValidGroup(group) {
			return nil, nil, fmt.Errorf("unknown muscle group: %s", ex.Group)
		}
		t.Exercises = append(t.Exercises, models.TemplateExercise{
			Name:  ex.Name,
			Group: group,
			Sets:  ex.Sets,
			Reps:  ex.Reps,
		})
	}

	saved, err := s.store.SaveTemplate(t)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save template: %w", err)
	}
	return nil, saved, nil
}

func (s *Server) handleDeleteTemplate(ctx context.Context, req *mcp.CallToolRequest, input deleteTemplateInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteTemplate(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete template: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted template: %s", input.ID),
	}, nil
}
