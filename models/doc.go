// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types for the API.

All times cross the wire as strings in the formats the clock package
produces: 24-hour "HH:MM:SS" and 12-hour "h:MM AM". The only non-string
payload field is the is_dst flag on conversion and current-time
responses.
*/
package models
