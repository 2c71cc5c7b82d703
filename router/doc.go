// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ ServeMux patterns.

Conversion routes are wrapped with request logging and Prometheus
request counters; /health, /metrics and the root banner stay unwrapped.
*/
package router
