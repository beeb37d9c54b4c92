// Package gamedata provides the compiled-in setup data for the casino: the
// floor layout, the actor roster and the pickup catalogue.
package gamedata

import "embed"

// dataFS embeds all data files from this directory at build time.
//
//go:embed *.json *.txt
var dataFS embed.FS
