// Package schema declares the input model shared by every calculator: field
// specifications, lenient type coercion of raw form submissions, and ordered
// validation producing human-readable error lists. Sanitize never fails and
// Validate never panics; rejection only ever happens through the structured
// Validation outcome.
package schema
