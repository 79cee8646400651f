package config

// Base application details
const AppName = "primer"
const Version = "0.3.0"
const DefaultConfigFileName = "config.toml" // Main config file

// Demo defaults
const DefaultSeparator = "*"
const DefaultRandomMin = 0
const DefaultRandomMax = 10
const DefaultSetSamples = 100

// DefaultWords is the word list the join demo uses without arguments.
var DefaultWords = []string{"a", "b", "c", "d", "e"}

// DefaultNames are the record names the sort demo builds, in insertion order.
var DefaultNames = []string{"Tom", "Joan", "Sean"}
