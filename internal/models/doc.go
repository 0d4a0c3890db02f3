// Package models defines the typed records CampTrack keeps in storage.
//
// # Stored Models
//
//   - User: an account with a role (admin, coordinator, leader, parent)
//   - Camp: a scheduled camp with its food planning baseline
//   - Camper: a child that can be enrolled in camps
//   - Enrollment: a camper's place in a camp with a per-day food allocation
//   - Activity: a dated activity inside a camp's date range
//   - StockTopUp: a signed change to a camp's daily planned food units
//   - LeaderAssignment: a leader working a camp
//
// Settings are plain key/value strings; see SettingDailyPayRate.
//
// # Dates
//
// Calendar dates are kept as the strings found in storage ("YYYY-MM-DD" for
// anything written by this service). Parsing happens in the calculator
// package so that legacy rows with malformed dates can be skipped and
// counted instead of failing a whole report.
//
// # Identifiers
//
// All records use UUID strings. Relationships are expressed by ID, never by
// pointer.
package models
