// Package io provides JSON import and export of a single game document.
//
// # Overview
//
// A game document is the on-disk and in-database form of a [game.Game]. The
// same [Document] type carries both json and bson tags so the file repository
// and the MongoDB repository share one schema.
//
// # JSON Format
//
//	{
//	  "id": "2021_07_04_chnmlb_slnmlb_1",
//	  "away": {
//	    "name": "Chicago Cubs",
//	    "abbreviation": "CHC",
//	    "lineup": [
//	      [{"id": "519203", "name": "Anthony Rizzo", "bat_side": "L",
//	        "obp": 0.368, "slg": 0.489, "start_inning": 1, "position": "1B"}]
//	    ],
//	    "pitchers": [{"id": "543294", "name": "Kyle Hendricks", "pitch_hand": "R",
//	      "era": 3.1, "start_inning": 1}]
//	  },
//	  "home": {...},
//	  "innings": [{"top": {"runs": 1, "hits": 2}, "bottom": {}}],
//	  "start": "2021-07-04T18:15:00Z",
//	  "end": "2021-07-04T21:02:00Z",
//	  "timezone": "America/Chicago",
//	  "location": "Busch Stadium, St. Louis, MO",
//	  "weather": "Partly Cloudy",
//	  "temperature": 88,
//	  "attendance": 41520
//	}
//
// Timestamps are RFC 3339. A missing timestamp decodes to the zero time and a
// zero time is omitted on export. Rates (obp, slg, era) are optional.
//
// # Validation
//
// Decoding checks syntax and timestamps only. Structural checks belong to
// [game.Game.Validate], which the renderer runs before drawing.
package io
