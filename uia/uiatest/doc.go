// Package uiatest provides an in-memory fake of the uia host interfaces.
// A Doc holds a linear text model, an element tree with character spans,
// attribute runs, and optional quirk switches that reproduce known host
// bugs (silent line-expansion failure, duplicated ancestors). Tests across
// the module build documents with it instead of a live host.
package uiatest
