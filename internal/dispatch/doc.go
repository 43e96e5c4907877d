// Package dispatch runs a query end to end: classify the free text into a
// format, ask the completion service for a record of that format, attach an
// optional context hint, render it and remember it in history.
//
// The completion service, context source and history store are collaborators
// behind small interfaces so tests and alternate front ends can swap them.
package dispatch
