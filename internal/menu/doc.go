// Package menu holds the restaurant-menu data model and the pure helpers
// around it.
//
// # Cleaning
//
// Clean turns raw OCR output into menu lines. Blank lines are dropped, and so
// are lines made only of digits, which on a menu are almost always prices:
//
//	Clean("SALADS\n\nCaesar salad\n300\n") // ["SALADS", "Caesar salad"]
//
// Lines are otherwise kept verbatim. There is no trimming, no case folding and
// no deduplication, so the result follows the layout of the printed menu.
//
// # Records
//
// A Record is the unit persisted per restaurant. WriteRecord stores it as
// indented JSON with sorted keys and unescaped non-ASCII text. The file
// only ever appears complete, because a restaurant whose record file exists
// is never processed again.
//
// # Paths
//
// Images live at <imagesDir>/<restaurant>/<file> and records at
// <outputDir>/<restaurant>.txt. ListImages and OutputPath build those paths
// without touching the filesystem.
package menu
