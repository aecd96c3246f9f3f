// Package oulipo hosts a small toolkit for validating French-language
// text against constrained-writing rules, in the spirit of the Oulipo
// workshop: lipograms, monovocalisms, tautograms and systematic
// alliterations.
//
// The validation logic lives in pkg/constraint, text helpers in
// pkg/frtext, and a command-line front end in cmd/oulipo. Everything is
// pure and stateless: a caller picks a constraint from the registry,
// supplies a letter parameter from its offered options, and gets back a
// result value carrying a French violation message when the text does
// not conform.
package oulipo
