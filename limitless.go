// Package limitless provides a CLI tool that searches recent Limitless TCG
// tournament results for decks playing a given card. It crawls the completed
// tournaments listing, follows standings pages to individual decklists, and
// reports every matching deck grouped by archetype.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package limitless
