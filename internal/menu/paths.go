package menu

import "path/filepath"

// RecordExt is the extension of a restaurant's record file.
const RecordExt = ".txt"

// ListImages returns the path of every file in filenames under
// imagesDir/restaurantID, in the order the names were supplied.
//
// Only the paths are built; the files are not checked for existence.
func ListImages(imagesDir, restaurantID string, filenames []string) []string {
	paths := make([]string, 0, len(filenames))
	for _, name := range filenames {
		paths = append(paths, filepath.Join(imagesDir, restaurantID, name))
	}
	return paths
}

// OutputPath returns where the record for restaurantID is stored.
func OutputPath(outputDir, restaurantID string) string {
	return filepath.Join(outputDir, restaurantID+RecordExt)
}
