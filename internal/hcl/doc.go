// Package hcl provides the HCL implementation of config.Loader.
//
// A script file is a sequence of `op` blocks, each labelled with the
// operation name:
//
//	op "insert" { value = 10 }
//	op "get" {
//	  index  = 0
//	  expect = 10
//	}
//
// Attribute expressions are evaluated without variables or functions, so a
// script is pure data.
package hcl
