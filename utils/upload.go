// utils/upload.go
package utils

import "strings"

// FileKeyFromURL derives the upload provider's file key from a stored
// image URL: the substring after the last "/". The dashboard relies on
// this convention, so URLs with query strings are not supported.
func FileKeyFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return url
	}
	return url[idx+1:]
}
