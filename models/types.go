// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type FormatRequest struct {
	Time string `json:"time"`
}

type ConvertRequest struct {
	TimeStr      string `json:"time_str"`
	FromTimezone string `json:"from_timezone"`
	ToTimezone   string `json:"to_timezone"`
	DateStr      string `json:"date_str,omitempty"`
}

type SetPreferenceRequest struct {
	Timezone string `json:"timezone"`
}

// Response types

type FormatResponse struct {
	OriginalTime  string `json:"original_time"`
	FormattedTime string `json:"formatted_time"`
	Format        string `json:"format"`
}

type ConvertResponse struct {
	OriginalTime      string `json:"original_time"`
	OriginalTimezone  string `json:"original_timezone"`
	ConvertedTime     string `json:"converted_time"`
	ConvertedTimezone string `json:"converted_timezone"`
	IsDST             bool   `json:"is_dst"`
}

type TimezoneListResponse struct {
	Timezones  []string `json:"timezones"`
	TotalCount int      `json:"total_count"`
}

type CurrentTimeResponse struct {
	CurrentTime    string `json:"current_time"`
	Timezone       string `json:"timezone"`
	IsDST          bool   `json:"is_dst"`
	TimezoneOffset string `json:"timezone_offset"`
}

type PreferenceResponse struct {
	UserID    string    `json:"user_id"`
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
