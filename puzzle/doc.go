// Package puzzle drives one play-through of a template: the player's
// assembly, a selected cell, and the moves it allows.
//
// A Session owns its assembly. Every mutation goes through the session so
// the selection stays consistent with the tree: removing the selected cell
// (or an ancestor) clears the selection, and a selection whose path no
// longer matches the template is cleared the next time moves are asked for.
//
// Place attaches a unit next to the selected cell. When several types are
// legal in that direction, Cycle picks which one the next Place uses.
package puzzle
