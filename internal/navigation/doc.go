// Package navigation holds the screen model of the application: a tagged
// union of the three screens and a back stack that the UI renders from.
package navigation
