// Package api implements the fraudwatch REST surface.
//
// Routes (all JSON unless noted):
//
//	POST /api/v1/runs      — execute a scheduling run; the body carries either
//	                         explicit alerts or count/seed for generated ones
//	GET  /api/v1/runs      — list retained runs, newest first
//	GET  /api/v1/runs/{id} — one run by ID
//	GET  /api/v1/teams     — the configured roster
//	GET  /api/v1/health    — service liveness and store stats
//	GET  /metrics          — latest run in Prometheus text exposition format
//
// Every POST builds fresh Team values from the current roster: the greedy
// scheduler is single-use and teams must never be reused across runs.
package api
