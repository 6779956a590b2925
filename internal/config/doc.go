// Package config provides configuration loading, merging, and validation
// facilities for the edge traffic agent.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources override later ones):
//  1. Environment variables, one per scalar field; a .env file in the
//     working directory supplies values for variables not already set
//  2. JSON config file (optional; supplies the signal phase plan)
//  3. Compiled-in defaults
//
// The main entry point is [GetConfig]. Construction stores values exactly
// as given; invariants are checked separately by [Config.Validate], and the
// caller decides whether a violation is fatal. Once built, the aggregate is
// read-only and may be written back to disk with [Config.SaveToFile].
package config
