// Package content holds the static copy of the site: brand details, page
// copy, services, testimonials and session tiers.
//
// A Site is loaded once, from the embedded default document or from a
// directory, validated, and then treated as read-only. Reloading produces a
// new Site value rather than mutating the current one.
package content
