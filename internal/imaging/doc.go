// Package imaging loads menu images and prepares them for OCR.
//
// Menu photos arrive in whatever format the source site served, so Load
// decodes PNG, JPEG, GIF, BMP, TIFF and WebP through a single entry point and
// EncodePNG hands the pixels on in a format every Tesseract build can read.
// No pixels are altered beyond applying the EXIF orientation.
//
// # Blank Images
//
// IsBlank is a cheap pre-check run before OCR. It samples a thumbnail and
// compares each pixel with the mean color in CIE-Lab space; an image with
// (almost) no pixels standing out from the background has no text to read.
//
// # Error Handling
//
// Functions return errors for:
//   - Missing or unreadable image files
//   - Unsupported or corrupt image data
//   - Encoding errors during PNG output
package imaging
