// Package profile manages creator profiles and their saved rate history.
//
// The profile is the audience snapshot (platform, niche, followers,
// engagement rate) that the estimation engine consumes. Rate history rows
// are append-only so creators can watch their sponsorship range move as
// their audience grows.
package profile
