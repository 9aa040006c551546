// Package sza implements a reader for simple zipped animations.
//
// A simple zipped animation is a zip archive carrying a text descriptor
// named animation.txt plus one image entry per animation frame. Each
// descriptor line names an image entry and how long it stays on screen,
// using the format NAME (TIMEms).
//
// The decoder validates the descriptor against the image entries and
// produces an immutable Animation: an ordered frame sequence plus the
// bounding width and height over all frames. A decoded Animation can be
// rescaled into a new, independent Animation.
package sza
