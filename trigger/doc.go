// Package trigger runs the scaffolder in response to model creation.
//
// A Listener turns an Event into one generation run and never lets a
// generator failure reach the caller; problems are logged instead.
// Watcher feeds a Listener from file creations in the models directory
// and the HTTP handler feeds it from POST requests.
package trigger
