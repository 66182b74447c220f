package models

import (
	"github.com/tinysprout/garbha/backend/internal/search"
)

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type SearchResponse struct {
	Results      []search.Result `json:"results"`
	Total        int             `json:"total"`
	ResponseTime int             `json:"response_time_ms"`
}

type JournalEntryRequest struct {
	ID    string `json:"id"`
	Date  string `json:"date" binding:"required"`
	Title string `json:"title"`
	Body  string `json:"body" binding:"required"`
	Mood  string `json:"mood"`
}

type KickRequest struct {
	StoryID     string `json:"story_id" binding:"required"`
	SectionName string `json:"section_name" binding:"required"`
	Timestamp   int64  `json:"timestamp"`
	SessionID   string `json:"session_id" binding:"required"`
}

type StreakResponse struct {
	Current    int    `json:"current"`
	Longest    int    `json:"longest"`
	LastActive string `json:"last_active,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
