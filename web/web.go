// Package web embeds the browser client served at the site root.
package web

import (
	_ "embed"
)

//go:embed static/index.html
var indexHTML []byte

//go:embed static/app.js
var appJS []byte

//go:embed static/style.css
var styleCSS []byte

// Index returns the chat page.
func Index() []byte { return indexHTML }

// AppJS returns the client script.
func AppJS() []byte { return appJS }

// StyleCSS returns the client stylesheet.
func StyleCSS() []byte { return styleCSS }
