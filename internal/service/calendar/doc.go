// Package calendar implements the content calendar: scheduled posts,
// posting-slot suggestions backed by the estimation engine, and content
// inspiration pulled from niche feeds.
package calendar
