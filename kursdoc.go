// Package kursdoc provides a crawler and local assistant for course and
// program plans published by Mälardalens universitet. It scans numeric
// page IDs, extracts semi-structured plan pages into flat records, tracks
// the most recently valid revision per course or program code, indexes
// the results for semantic search, and answers natural language questions
// about them.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, gemini/).
package kursdoc
