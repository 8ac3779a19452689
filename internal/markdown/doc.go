// Package markdown renders parsed chat archives as Markdown documents.
//
// The package is a set of pure formatting functions layered bottom-up:
//
//   - Timestamp: export date string → "YYYY-MM-DD HH:MM:SS" display form
//   - Text: rich text payload → inline-formatted string
//   - MediaTag: media/attachment fields → one bracketed tag
//   - ServiceSentence: service action code → italic sentence
//   - Block: one message record → one Markdown block
//   - Document: whole archive → header plus all message blocks
//
// Every function degrades on missing or malformed data instead of
// failing: an unparseable date echoes back, an unknown annotation or
// action falls through to literal text, an unresolvable reply reference
// drops the quote. Nothing here touches the filesystem.
//
// Example document output:
//
//	# Team Chat
//
//	## Chat Details
//
//	| Property | Value |
//	|----------|-------|
//	| **Name** | Team Chat |
//	| **Type** | Private Supergroup |
//	...
//
//	### Alice
//	*2024-01-01 10:00:00* | Message #1
//
//	Hello
//
//	---
package markdown
