// Package magick binds the Magick.Native library.
//
// The *_gen.go files are generated by magickgen from the class catalog and
// hold the raw entry points. The remaining files wrap them in Go types.
package magick

//go:generate go run ../cmd/magickgen generate --config ..
