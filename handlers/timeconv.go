// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/simply-time/clock"
	"github.com/danielhkuo/simply-time/middleware"
	"github.com/danielhkuo/simply-time/models"
	"github.com/danielhkuo/simply-time/zone"
)

type TimeHandler struct {
	conv *zone.Converter
	reg  *zone.Registry
}

func NewTimeHandler(conv *zone.Converter, reg *zone.Registry) *TimeHandler {
	return &TimeHandler{conv: conv, reg: reg}
}

// Convert handles POST /time/convert
// Converts a 24-hour civil time between the supported zones
func (h *TimeHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req models.ConvertRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.conv.Convert(req.TimeStr, req.DateStr, req.FromTimezone, req.ToTimezone)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ConvertResponse{
		OriginalTime:      req.TimeStr,
		OriginalTimezone:  string(res.FromZone),
		ConvertedTime:     clock.FormatTime24(res.Target.Time),
		ConvertedTimezone: string(res.ToZone),
		IsDST:             res.TargetDST,
	})
}

// Timezones handles GET /time/timezones
// Lists the supported zone abbreviations
func (h *TimeHandler) Timezones(w http.ResponseWriter, r *http.Request) {
	abbrs := h.reg.Abbreviations()
	middleware.JSONResponse(w, http.StatusOK, models.TimezoneListResponse{
		Timezones:  abbrs,
		TotalCount: len(abbrs),
	})
}

// Current handles GET /time/current?timezone=EST
// Reports the current civil time in one of the supported zones
func (h *TimeHandler) Current(w http.ResponseWriter, r *http.Request) {
	tz := r.URL.Query().Get("timezone")
	if tz == "" {
		tz = "UTC"
	}

	cur, err := h.conv.CurrentTime(tz)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentTimeResponse{
		CurrentTime:    clock.FormatDate(cur.Moment.Date) + " " + clock.FormatTime24(cur.Moment.Time),
		Timezone:       string(cur.Zone),
		IsDST:          cur.DST,
		TimezoneOffset: formatOffset(cur.Offset),
	})
}

// formatOffset renders a UTC offset in RFC 822 numeric form, "-0500".
func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d%02d", sign, seconds/3600, (seconds%3600)/60)
}
